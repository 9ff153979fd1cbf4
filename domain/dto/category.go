package dto

import (
	"time"

	"rules-directory/domain/models"
)

// === Requests ===

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Slug string `json:"slug" validate:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
	Slug *string `json:"slug" validate:"omitempty,min=1,max=255"`
}

// ApplyTo overwrites only the fields present in the patch. Absent (nil) fields
// leave the current value untouched.
func (r *UpdateCategoryRequest) ApplyTo(category *models.Category) {
	if r.Name != nil {
		category.Name = *r.Name
	}
	if r.Slug != nil {
		category.Slug = *r.Slug
	}
}

// === Responses ===

type CategoryResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// === Mappers ===

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func CategoriesToCategoryResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToCategoryResponse(category)
	}
	return responses
}
