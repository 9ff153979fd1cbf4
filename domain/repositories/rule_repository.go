package repositories

import (
	"context"

	"rules-directory/domain/models"
)

type RuleRepository interface {
	Create(ctx context.Context, rule *models.Rule) error
	// GetByID loads the rule with its parent category hydrated.
	GetByID(ctx context.Context, id int) (*models.Rule, error)
	GetBySlug(ctx context.Context, slug string) (*models.Rule, error)
	// GetByCategory returns all rules of one category, newest first, category hydrated.
	GetByCategory(ctx context.Context, categoryID int) ([]*models.Rule, error)
	Update(ctx context.Context, rule *models.Rule) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*models.Rule, error)
	// Search matches title, slug, content or content_preview. Unpaginated.
	Search(ctx context.Context, term string) ([]*models.Rule, error)
	// CountByCategory reports how many rules still reference a category.
	CountByCategory(ctx context.Context, categoryID int) (int64, error)
}
