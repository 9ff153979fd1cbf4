package postgres

import (
	"context"

	"gorm.io/gorm"

	"rules-directory/domain/models"
	"rules-directory/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id int) error {
	// No cascade: the rules FK blocks deleting a category that still owns rules.
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) ListPaginated(ctx context.Context, page, limit int) ([]*models.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []*models.Category
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *CategoryRepositoryImpl) Search(ctx context.Context, term string) ([]*models.Category, error) {
	var categories []*models.Category
	searchTerm := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR slug ILIKE ?", searchTerm, searchTerm).
		Order("created_at DESC").
		Find(&categories).Error
	return categories, err
}
