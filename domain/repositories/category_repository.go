package repositories

import (
	"context"

	"rules-directory/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int) error
	// List returns all categories, newest first.
	List(ctx context.Context) ([]*models.Category, error)
	// ListPaginated returns one page plus the total row count.
	ListPaginated(ctx context.Context, page, limit int) ([]*models.Category, int64, error)
	// Search matches the term as a case-insensitive substring of name or slug.
	Search(ctx context.Context, term string) ([]*models.Category, error)
}
