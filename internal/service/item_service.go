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

// ItemService defines business operations for menu items.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (dto.ItemResponse, error)
	List(ctx context.Context, f dto.ItemFilter) ([]dto.ItemResponse, error)
	Get(ctx context.Context, id uint) (dto.ItemWithCategoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateItemRequest) (dto.ItemResponse, error)
	Delete(ctx context.Context, id uint) error
	ToggleActive(ctx context.Context, id uint) (dto.ItemResponse, error)
}

type itemService struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

func NewItemService(repo repository.ItemRepository, categoryRepo repository.CategoryRepository) ItemService {
	return &itemService{repo: repo, categoryRepo: categoryRepo}
}

// mapItem converts a model to a DTO response.
func mapItem(it model.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		CategoryID:  it.CategoryID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Rating:      it.Rating,
		IsActive:    it.IsActive,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// categoryExists validates the referential check shared by Create and Update.
func (s *itemService) categoryExists(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (dto.ItemResponse, error) {
	if err := s.categoryExists(ctx, req.CategoryID); err != nil {
		return dto.ItemResponse{}, err
	}

	it := &model.Item{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	}
	if req.Rating != nil {
		it.Rating = *req.Rating
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return dto.ItemResponse{}, err
	}
	return mapItem(*it), nil
}

func (s *itemService) List(ctx context.Context, f dto.ItemFilter) ([]dto.ItemResponse, error) {
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		result = append(result, mapItem(it))
	}
	return result, nil
}

func (s *itemService) Get(ctx context.Context, id uint) (dto.ItemWithCategoryResponse, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ItemWithCategoryResponse{}, apierror.ErrItemNotFound
		}
		return dto.ItemWithCategoryResponse{}, err
	}

	resp := dto.ItemWithCategoryResponse{ItemResponse: mapItem(*it)}
	if it.Category != nil {
		resp.Category = mapCategory(*it.Category)
	}
	return resp, nil
}

func (s *itemService) Update(ctx context.Context, id uint, req dto.UpdateItemRequest) (dto.ItemResponse, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ItemResponse{}, apierror.ErrItemNotFound
		}
		return dto.ItemResponse{}, err
	}

	// Referential check runs before any field is applied (all-or-nothing).
	if req.CategoryID != nil {
		if err := s.categoryExists(ctx, *req.CategoryID); err != nil {
			return dto.ItemResponse{}, err
		}
	}

	if req.CategoryID != nil {
		it.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = req.Description
	}
	if req.Price != nil {
		it.Price = *req.Price
	}
	if req.Rating != nil {
		it.Rating = *req.Rating
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return dto.ItemResponse{}, err
	}
	return mapItem(*it), nil
}

func (s *itemService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.ErrItemNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *itemService) ToggleActive(ctx context.Context, id uint) (dto.ItemResponse, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ItemResponse{}, apierror.ErrItemNotFound
		}
		return dto.ItemResponse{}, err
	}

	it.IsActive = !it.IsActive
	if err := s.repo.Update(ctx, it); err != nil {
		return dto.ItemResponse{}, err
	}
	return mapItem(*it), nil
}
