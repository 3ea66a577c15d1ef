package service

import (
	"context"
	"sort"
	"time"

	"foodmenu/internal/dto"
	"foodmenu/internal/model"
	"foodmenu/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
// Both stubs share one backing store so the category side can count item
// dependents, mirroring the real schema.

type stubStore struct {
	categories     map[uint]*model.Category
	items          map[uint]*model.Item
	nextCategoryID uint
	nextItemID     uint
}

func newStubStore() *stubStore {
	return &stubStore{
		categories: make(map[uint]*model.Category),
		items:      make(map[uint]*model.Item),
	}
}

func (s *stubStore) sortedCategoryIDs() []uint {
	ids := make([]uint, 0, len(s.categories))
	for id := range s.categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *stubStore) sortedItemIDs() []uint {
	ids := make([]uint, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ── CategoryRepository stub ──────────────────────────────────────────────────

type stubCategoryRepo struct{ s *stubStore }

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.s.nextCategoryID++
	c.ID = r.s.nextCategoryID
	stored := *c
	r.s.categories[c.ID] = &stored
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context, skip, limit int) ([]model.Category, error) {
	result := make([]model.Category, 0)
	for i, id := range r.s.sortedCategoryIDs() {
		if i < skip {
			continue
		}
		if len(result) >= limit {
			break
		}
		result = append(result, *r.s.categories[id])
	}
	return result, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uint) (*model.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) FindByIDWithItems(_ context.Context, id uint) (*model.Category, error) {
	c, err := r.FindByID(nil, id)
	if err != nil {
		return nil, err
	}
	for _, itemID := range r.s.sortedItemIDs() {
		if it := r.s.items[itemID]; it.CategoryID == id {
			c.Items = append(c.Items, *it)
		}
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	stored := *c
	r.s.categories[c.ID] = &stored
	return nil
}

func (r *stubCategoryRepo) DeleteIfEmpty(_ context.Context, id uint) (int64, error) {
	var dependents int64
	for _, it := range r.s.items {
		if it.CategoryID == id {
			dependents++
		}
	}
	if dependents == 0 {
		delete(r.s.categories, id)
	}
	return dependents, nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── ItemRepository stub ──────────────────────────────────────────────────────

type stubItemRepo struct{ s *stubStore }

func (r *stubItemRepo) Create(_ context.Context, it *model.Item) error {
	r.s.nextItemID++
	it.ID = r.s.nextItemID
	now := time.Now()
	it.CreatedAt = now
	it.UpdatedAt = now
	stored := *it
	r.s.items[it.ID] = &stored
	return nil
}

func (r *stubItemRepo) List(_ context.Context, f dto.ItemFilter) ([]model.Item, error) {
	result := make([]model.Item, 0)
	matched := 0
	for _, id := range r.s.sortedItemIDs() {
		it := r.s.items[id]
		if f.CategoryID != nil && it.CategoryID != *f.CategoryID {
			continue
		}
		if f.IsActive != nil && it.IsActive != *f.IsActive {
			continue
		}
		if f.MinPrice != nil && it.Price.LessThan(decimal.NewFromFloat(*f.MinPrice)) {
			continue
		}
		if f.MaxPrice != nil && it.Price.GreaterThan(decimal.NewFromFloat(*f.MaxPrice)) {
			continue
		}
		if f.MinRating != nil && it.Rating < *f.MinRating {
			continue
		}
		matched++
		if matched <= f.Skip {
			continue
		}
		if len(result) >= f.Limit {
			break
		}
		result = append(result, *it)
	}
	return result, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uint) (*model.Item, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *it
	if c, ok := r.s.categories[cp.CategoryID]; ok {
		cc := *c
		cp.Category = &cc
	}
	return &cp, nil
}

func (r *stubItemRepo) Update(_ context.Context, it *model.Item) error {
	it.UpdatedAt = time.Now() // mirrors GORM's autoupdate on Save
	stored := *it
	stored.Category = nil
	r.s.items[it.ID] = &stored
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uint) error {
	delete(r.s.items, id)
	return nil
}

var _ repository.ItemRepository = (*stubItemRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newStubRepos() (*stubCategoryRepo, *stubItemRepo) {
	s := newStubStore()
	return &stubCategoryRepo{s: s}, &stubItemRepo{s: s}
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }

func seedCategory(repo *stubCategoryRepo, name string) *model.Category {
	c := &model.Category{Name: name}
	_ = repo.Create(context.Background(), c)
	return c
}

func seedItem(repo *stubItemRepo, categoryID uint, name string, price string) *model.Item {
	it := &model.Item{
		CategoryID: categoryID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		IsActive:   true,
	}
	_ = repo.Create(context.Background(), it)
	return it
}
