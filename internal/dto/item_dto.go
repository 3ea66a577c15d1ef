package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	CategoryID  uint            `json:"category_id" validate:"required,gt=0"`
	Name        string          `json:"name"        validate:"required,min=1,max=100"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	Rating      *float64        `json:"rating"      validate:"omitempty,gte=0,lte=5"`
	IsActive    *bool           `json:"is_active"`
}

// UpdateItemRequest carries a partial update: only non-nil fields are applied.
// Price and rating bounds are re-checked at the handler boundary when present.
type UpdateItemRequest struct {
	CategoryID  *uint            `json:"category_id" validate:"omitempty,gt=0"`
	Name        *string          `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	Rating      *float64         `json:"rating"      validate:"omitempty,gte=0,lte=5"`
	IsActive    *bool            `json:"is_active"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ItemFilter holds the optional, conjunctive list filters. Absent filters
// impose no constraint; price/rating bounds are inclusive.
type ItemFilter struct {
	Skip       int      `form:"skip,default=0"    validate:"min=0"`
	Limit      int      `form:"limit,default=100" validate:"min=0"`
	CategoryID *uint    `form:"category_id"       validate:"omitempty,gt=0"`
	IsActive   *bool    `form:"is_active"`
	MinPrice   *float64 `form:"min_price"         validate:"omitempty,gte=0"`
	MaxPrice   *float64 `form:"max_price"         validate:"omitempty,gte=0"`
	MinRating  *float64 `form:"min_rating"        validate:"omitempty,gte=0,lte=5"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID          uint            `json:"id"`
	CategoryID  uint            `json:"category_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemWithCategoryResponse embeds the owning category (GET /items/:id).
type ItemWithCategoryResponse struct {
	ItemResponse
	Category CategoryResponse `json:"category"`
}
