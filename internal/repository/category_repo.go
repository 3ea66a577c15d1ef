package repository

import (
	"context"

	"foodmenu/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository defines CRUD operations for Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context, skip, limit int) ([]model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindByIDWithItems(ctx context.Context, id uint) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	// DeleteIfEmpty removes the category only when no items reference it.
	// It returns the number of blocking items (0 means the delete happened).
	// Count and delete run in one transaction so a concurrent item insert
	// cannot slip between the check and the removal.
	DeleteIfEmpty(ctx context.Context, id uint) (int64, error)
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepository) List(ctx context.Context, skip, limit int) ([]model.Category, error) {
	var list []model.Category
	// Insertion order — ids are monotonically assigned.
	err := r.db.WithContext(ctx).Order("id asc").Offset(skip).Limit(limit).Find(&list).Error
	return list, err
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) FindByIDWithItems(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("items.id asc") }).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	// Exact, case-sensitive match.
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepository) DeleteIfEmpty(ctx context.Context, id uint) (int64, error) {
	var dependents int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Item{}).Where("category_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return nil
		}
		return tx.Delete(&model.Category{}, id).Error
	})
	return dependents, err
}
