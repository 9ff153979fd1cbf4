package services

import (
	"context"

	"rules-directory/domain/dto"
	"rules-directory/domain/models"
)

type RuleService interface {
	Create(ctx context.Context, req *dto.CreateRuleRequest) (*models.Rule, error)

	// FindOne loads a rule with its parent category hydrated.
	FindOne(ctx context.Context, id int) (*models.Rule, error)

	FindBySlug(ctx context.Context, slug string) (*models.Rule, error)

	// FindByCategory returns all rules of one category, newest first.
	FindByCategory(ctx context.Context, categoryID int) ([]*models.Rule, error)

	FindAll(ctx context.Context) ([]*models.Rule, error)

	// Search matches title, slug, content and contentPreview.
	Search(ctx context.Context, term string) ([]*models.Rule, error)

	Update(ctx context.Context, id int, req *dto.UpdateRuleRequest) (*models.Rule, error)

	Remove(ctx context.Context, id int) error
}
