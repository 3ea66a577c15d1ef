package service

import (
	"context"
	"errors"
	"testing"

	"foodmenu/internal/apierror"
	"foodmenu/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryAssignsDistinctIDs(t *testing.T) {
	catRepo, _ := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	seen := make(map[uint]bool)
	for _, name := range []string{"Drinks", "Mains", "Desserts"} {
		resp, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
		assert.False(t, seen[resp.ID], "id %d assigned twice", resp.ID)
		seen[resp.ID] = true
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	catRepo, _ := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: "Drinks"})
	require.NoError(t, err)

	// Duplicate fails regardless of description.
	_, err = svc.Create(ctx, dto.CreateCategoryRequest{
		Name:        "Drinks",
		Description: strPtr("something else entirely"),
	})
	assert.ErrorIs(t, err, apierror.ErrDuplicateName)
}

func TestListCategoriesWindow(t *testing.T) {
	catRepo, _ := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	for _, name := range []string{"A01", "B02", "C03", "D04"} {
		_, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, dto.PageWindow{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Insertion order.
	assert.Equal(t, "B02", list[0].Name)
	assert.Equal(t, "C03", list[1].Name)
}

func TestGetCategoryIncludesItems(t *testing.T) {
	catRepo, itemRepo := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	drinks := seedCategory(catRepo, "Drinks")
	seedItem(itemRepo, drinks.ID, "Cola", "1.50")
	seedItem(itemRepo, drinks.ID, "Espresso", "2.20")

	resp, err := svc.Get(ctx, drinks.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", resp.Name)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Cola", resp.Items[0].Name)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, apierror.ErrCategoryNotFound)
}

func TestUpdateCategoryPatchSemantics(t *testing.T) {
	catRepo, _ := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateCategoryRequest{
		Name:        "Drinks",
		Description: strPtr("cold and hot"),
	})
	require.NoError(t, err)

	// Patch only the name: description must survive.
	resp, err := svc.Update(ctx, created.ID, dto.UpdateCategoryRequest{Name: strPtr("Beverages")})
	require.NoError(t, err)
	assert.Equal(t, "Beverages", resp.Name)
	require.NotNil(t, resp.Description)
	assert.Equal(t, "cold and hot", *resp.Description)
}

func TestUpdateCategoryRenameCollisionIsAllOrNothing(t *testing.T) {
	catRepo, _ := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: "Drinks"})
	require.NoError(t, err)
	mains, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: "Mains", Description: strPtr("original")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, mains.ID, dto.UpdateCategoryRequest{
		Name:        strPtr("Drinks"),
		Description: strPtr("should not be applied"),
	})
	assert.ErrorIs(t, err, apierror.ErrDuplicateName)

	// Nothing was applied, not even the description.
	current, err := svc.Get(ctx, mains.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mains", current.Name)
	require.NotNil(t, current.Description)
	assert.Equal(t, "original", *current.Description)
}

func TestUpdateCategoryKeepingOwnName(t *testing.T) {
	catRepo, _ := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: "Drinks"})
	require.NoError(t, err)

	// Re-sending the current name is not a collision.
	resp, err := svc.Update(ctx, created.ID, dto.UpdateCategoryRequest{
		Name:        strPtr("Drinks"),
		Description: strPtr("updated"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", resp.Name)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	catRepo, _ := newStubRepos()
	svc := NewCategoryService(catRepo)

	_, err := svc.Update(context.Background(), 42, dto.UpdateCategoryRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, apierror.ErrCategoryNotFound)
}

func TestDeleteCategoryBlockedByDependents(t *testing.T) {
	catRepo, itemRepo := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	drinks := seedCategory(catRepo, "Drinks")
	seedItem(itemRepo, drinks.ID, "Cola", "1.50")
	seedItem(itemRepo, drinks.ID, "Espresso", "2.20")

	err := svc.Delete(ctx, drinks.ID)
	var dep *apierror.HasDependentsError
	require.True(t, errors.As(err, &dep))
	assert.Equal(t, int64(2), dep.Count)

	// Category is still there.
	_, err = svc.Get(ctx, drinks.ID)
	assert.NoError(t, err)
}

func TestDeleteCategorySucceedsWhenEmpty(t *testing.T) {
	catRepo, _ := newStubRepos()
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	drinks := seedCategory(catRepo, "Drinks")

	require.NoError(t, svc.Delete(ctx, drinks.ID))

	_, err := svc.Get(ctx, drinks.ID)
	assert.ErrorIs(t, err, apierror.ErrCategoryNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, svc.Delete(ctx, drinks.ID), apierror.ErrCategoryNotFound)
}
