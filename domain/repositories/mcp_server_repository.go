package repositories

import (
	"context"

	"rules-directory/domain/models"
)

type McpServerRepository interface {
	Create(ctx context.Context, server *models.McpServer) error
	GetByID(ctx context.Context, id int) (*models.McpServer, error)
	GetBySlug(ctx context.Context, slug string) (*models.McpServer, error)
	Update(ctx context.Context, server *models.McpServer) error
	Delete(ctx context.Context, id int) error
	ListPaginated(ctx context.Context, page, limit int) ([]*models.McpServer, int64, error)
	// Search matches name, slug, description, provider or classification. Unpaginated.
	Search(ctx context.Context, term string) ([]*models.McpServer, error)
}
