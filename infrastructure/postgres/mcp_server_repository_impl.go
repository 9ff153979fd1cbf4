package postgres

import (
	"context"

	"gorm.io/gorm"

	"rules-directory/domain/models"
	"rules-directory/domain/repositories"
)

type McpServerRepositoryImpl struct {
	db *gorm.DB
}

func NewMcpServerRepository(db *gorm.DB) repositories.McpServerRepository {
	return &McpServerRepositoryImpl{db: db}
}

func (r *McpServerRepositoryImpl) Create(ctx context.Context, server *models.McpServer) error {
	if err := r.db.WithContext(ctx).Create(server).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *McpServerRepositoryImpl) GetByID(ctx context.Context, id int) (*models.McpServer, error) {
	var server models.McpServer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&server).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

func (r *McpServerRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.McpServer, error) {
	var server models.McpServer
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&server).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

func (r *McpServerRepositoryImpl) Update(ctx context.Context, server *models.McpServer) error {
	if err := r.db.WithContext(ctx).Save(server).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *McpServerRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.McpServer{}).Error
}

func (r *McpServerRepositoryImpl) ListPaginated(ctx context.Context, page, limit int) ([]*models.McpServer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.McpServer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var servers []*models.McpServer
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&servers).Error
	if err != nil {
		return nil, 0, err
	}
	return servers, total, nil
}

func (r *McpServerRepositoryImpl) Search(ctx context.Context, term string) ([]*models.McpServer, error) {
	var servers []*models.McpServer
	searchTerm := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR slug ILIKE ? OR description ILIKE ? OR provider ILIKE ? OR classification ILIKE ?",
			searchTerm, searchTerm, searchTerm, searchTerm, searchTerm).
		Order("created_at DESC").
		Find(&servers).Error
	return servers, err
}
