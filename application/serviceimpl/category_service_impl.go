package serviceimpl

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	"rules-directory/domain/apperrors"
	"rules-directory/domain/dto"
	"rules-directory/domain/models"
	"rules-directory/domain/repositories"
	"rules-directory/domain/services"
	"rules-directory/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	ruleRepo     repositories.RuleRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, ruleRepo repositories.RuleRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		ruleRepo:     ruleRepo,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name: req.Name,
		Slug: slug.Make(req.Slug),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "name", req.Name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) FindOne(ctx context.Context, id int) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found", "category_id", id)
		return nil, apperrors.NewNotFound("Category", "ID", id)
	}
	return category, nil
}

func (s *CategoryServiceImpl) FindAll(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryServiceImpl) FindAllPaginated(ctx context.Context, page, limit int) ([]*models.Category, int64, error) {
	return s.categoryRepo.ListPaginated(ctx, page, limit)
}

func (s *CategoryServiceImpl) Search(ctx context.Context, term string) ([]*models.Category, error) {
	return s.categoryRepo.Search(ctx, term)
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id int, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found for update", "category_id", id)
		return nil, apperrors.NewNotFound("Category", "ID", id)
	}

	req.ApplyTo(category)
	if req.Slug != nil {
		category.Slug = slug.Make(*req.Slug)
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category updated", "category_id", id)
	return category, nil
}

func (s *CategoryServiceImpl) Remove(ctx context.Context, id int) error {
	_, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found for deletion", "category_id", id)
		return apperrors.NewNotFound("Category", "ID", id)
	}

	// The FK on rules.category_id has no cascade; fail with a readable conflict
	// before the database does.
	ruleCount, err := s.ruleRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if ruleCount > 0 {
		logger.WarnContext(ctx, "Category still owns rules", "category_id", id, "rule_count", ruleCount)
		return apperrors.NewConflict(fmt.Sprintf("Category with ID %d still owns %d rules", id, ruleCount))
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return nil
}
