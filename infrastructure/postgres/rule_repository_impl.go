package postgres

import (
	"context"

	"gorm.io/gorm"

	"rules-directory/domain/models"
	"rules-directory/domain/repositories"
)

type RuleRepositoryImpl struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) repositories.RuleRepository {
	return &RuleRepositoryImpl{db: db}
}

func (r *RuleRepositoryImpl) Create(ctx context.Context, rule *models.Rule) error {
	// An unknown categoryId surfaces here as a foreign-key violation, not as a
	// domain error. There is no existence pre-check on the category.
	if err := r.db.WithContext(ctx).Create(rule).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *RuleRepositoryImpl) GetByID(ctx context.Context, id int) (*models.Rule, error) {
	var rule models.Rule
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *RuleRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Rule, error) {
	var rule models.Rule
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *RuleRepositoryImpl) GetByCategory(ctx context.Context, categoryID int) ([]*models.Rule, error) {
	var rules []*models.Rule
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&rules).Error
	return rules, err
}

func (r *RuleRepositoryImpl) Update(ctx context.Context, rule *models.Rule) error {
	if err := r.db.WithContext(ctx).Omit("Category").Save(rule).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *RuleRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Rule{}).Error
}

func (r *RuleRepositoryImpl) List(ctx context.Context) ([]*models.Rule, error) {
	var rules []*models.Rule
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&rules).Error
	return rules, err
}

func (r *RuleRepositoryImpl) Search(ctx context.Context, term string) ([]*models.Rule, error) {
	var rules []*models.Rule
	searchTerm := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("title ILIKE ? OR slug ILIKE ? OR content ILIKE ? OR content_preview ILIKE ?",
			searchTerm, searchTerm, searchTerm, searchTerm).
		Order("created_at DESC").
		Find(&rules).Error
	return rules, err
}

func (r *RuleRepositoryImpl) CountByCategory(ctx context.Context, categoryID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Rule{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
