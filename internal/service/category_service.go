package service

import (
	"context"
	"errors"

	"foodmenu/internal/apierror"
	"foodmenu/internal/dto"
	"foodmenu/internal/model"
	"foodmenu/internal/repository"

	"gorm.io/gorm"
)

// CategoryService defines business operations for menu categories.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	List(ctx context.Context, window dto.PageWindow) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id uint) (dto.CategoryWithItemsResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// mapCategory converts a model to a DTO response.
func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoryResponse{}, err
	}
	if existing != nil {
		return dto.CategoryResponse{}, apierror.ErrDuplicateName
	}

	c := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) List(ctx context.Context, window dto.PageWindow) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx, window.Skip, window.Limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) Get(ctx context.Context, id uint) (dto.CategoryWithItemsResponse, error) {
	c, err := s.repo.FindByIDWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryWithItemsResponse{}, apierror.ErrCategoryNotFound
		}
		return dto.CategoryWithItemsResponse{}, err
	}

	resp := dto.CategoryWithItemsResponse{
		CategoryResponse: mapCategory(*c),
		Items:            make([]dto.ItemResponse, 0, len(c.Items)),
	}
	for _, it := range c.Items {
		resp.Items = append(resp.Items, mapItem(it))
	}
	return resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, apierror.ErrCategoryNotFound
		}
		return dto.CategoryResponse{}, err
	}

	// All checks run before any field is applied (all-or-nothing).
	if req.Name != nil && *req.Name != c.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, err
		}
		if existing != nil && existing.ID != id {
			return dto.CategoryResponse{}, apierror.ErrDuplicateName
		}
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.ErrCategoryNotFound
		}
		return err
	}

	dependents, err := s.repo.DeleteIfEmpty(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return &apierror.HasDependentsError{Count: dependents}
	}
	return nil
}
