package services

import (
	"context"

	"rules-directory/domain/dto"
	"rules-directory/domain/models"
)

type CategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)

	FindOne(ctx context.Context, id int) (*models.Category, error)

	// FindAll returns every category, newest first.
	FindAll(ctx context.Context) ([]*models.Category, error)

	// FindAllPaginated returns one page plus the total count.
	FindAllPaginated(ctx context.Context, page, limit int) ([]*models.Category, int64, error)

	// Search is a case-insensitive substring match over name and slug.
	Search(ctx context.Context, term string) ([]*models.Category, error)

	Update(ctx context.Context, id int, req *dto.UpdateCategoryRequest) (*models.Category, error)

	Remove(ctx context.Context, id int) error
}
