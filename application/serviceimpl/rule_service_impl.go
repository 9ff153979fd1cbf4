package serviceimpl

import (
	"context"

	"rules-directory/domain/apperrors"
	"rules-directory/domain/dto"
	"rules-directory/domain/models"
	"rules-directory/domain/repositories"
	"rules-directory/domain/services"
	"rules-directory/pkg/logger"
)

type RuleServiceImpl struct {
	ruleRepo repositories.RuleRepository
}

func NewRuleService(ruleRepo repositories.RuleRepository) services.RuleService {
	return &RuleServiceImpl{
		ruleRepo: ruleRepo,
	}
}

func (s *RuleServiceImpl) Create(ctx context.Context, req *dto.CreateRuleRequest) (*models.Rule, error) {
	rule := &models.Rule{
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Slug:           req.Slug,
		URL:            req.URL,
		Content:        req.Content,
		ContentPreview: req.ContentPreview,
	}

	// No existence check on the category: an unknown categoryId comes back from
	// the store as a foreign-key conflict.
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		logger.ErrorContext(ctx, "Failed to create rule", "title", req.Title, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Rule created", "rule_id", rule.ID, "category_id", rule.CategoryID)
	return rule, nil
}

func (s *RuleServiceImpl) FindOne(ctx context.Context, id int) (*models.Rule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Rule not found", "rule_id", id)
		return nil, apperrors.NewNotFound("Rule", "ID", id)
	}
	return rule, nil
}

func (s *RuleServiceImpl) FindBySlug(ctx context.Context, slugStr string) (*models.Rule, error) {
	rule, err := s.ruleRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		logger.WarnContext(ctx, "Rule not found", "slug", slugStr)
		return nil, apperrors.NewNotFound("Rule", "slug", slugStr)
	}
	return rule, nil
}

func (s *RuleServiceImpl) FindByCategory(ctx context.Context, categoryID int) ([]*models.Rule, error) {
	return s.ruleRepo.GetByCategory(ctx, categoryID)
}

func (s *RuleServiceImpl) FindAll(ctx context.Context) ([]*models.Rule, error) {
	return s.ruleRepo.List(ctx)
}

func (s *RuleServiceImpl) Search(ctx context.Context, term string) ([]*models.Rule, error) {
	return s.ruleRepo.Search(ctx, term)
}

func (s *RuleServiceImpl) Update(ctx context.Context, id int, req *dto.UpdateRuleRequest) (*models.Rule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Rule not found for update", "rule_id", id)
		return nil, apperrors.NewNotFound("Rule", "ID", id)
	}

	req.ApplyTo(rule)

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		logger.ErrorContext(ctx, "Failed to update rule", "rule_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Rule updated", "rule_id", id)
	return rule, nil
}

func (s *RuleServiceImpl) Remove(ctx context.Context, id int) error {
	_, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Rule not found for deletion", "rule_id", id)
		return apperrors.NewNotFound("Rule", "ID", id)
	}

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete rule", "rule_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Rule deleted", "rule_id", id)
	return nil
}
