package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=80"`
	Description *string `json:"description" validate:"omitempty,max=400"`
}

// UpdateCategoryRequest carries a partial update: only non-nil fields are
// applied, absent fields never overwrite stored values.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=3,max=80"`
	Description *string `json:"description" validate:"omitempty,max=400"`
}

// ── Pagination ────────────────────────────────────────────────────────────────

// PageWindow is the skip/limit window shared by the list endpoints.
// No upper bound on limit; callers may request unbounded windows.
type PageWindow struct {
	Skip  int `form:"skip,default=0"    validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=0"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryWithItemsResponse embeds the category's items (GET /categories/:id).
type CategoryWithItemsResponse struct {
	CategoryResponse
	Items []ItemResponse `json:"items"`
}
