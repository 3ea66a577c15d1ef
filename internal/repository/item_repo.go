package repository

import (
	"context"

	"foodmenu/internal/dto"
	"foodmenu/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository defines CRUD operations for Item.
type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	List(ctx context.Context, f dto.ItemFilter) ([]model.Item, error)
	FindByID(ctx context.Context, id uint) (*model.Item, error)
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id uint) error
}

type itemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepository) List(ctx context.Context, f dto.ItemFilter) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{})

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}

	var items []model.Item
	err := q.Order("id asc").Offset(f.Skip).Limit(f.Limit).Find(&items).Error
	return items, err
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Preload("Category").First(&it, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *model.Item) error {
	// Omit associations so a preloaded Category is never written back.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(it).Error
}

func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Item{}, id).Error
}
