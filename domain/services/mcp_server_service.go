package services

import (
	"context"

	"rules-directory/domain/dto"
	"rules-directory/domain/models"
)

type McpServerService interface {
	Create(ctx context.Context, req *dto.CreateMcpServerRequest) (*models.McpServer, error)

	FindOne(ctx context.Context, id int) (*models.McpServer, error)

	FindBySlug(ctx context.Context, slug string) (*models.McpServer, error)

	// FindAllPaginated returns one page plus the total count. The directory
	// listing is always paginated.
	FindAllPaginated(ctx context.Context, page, limit int) ([]*models.McpServer, int64, error)

	// Search matches name, slug, description, provider and classification.
	Search(ctx context.Context, term string) ([]*models.McpServer, error)

	Update(ctx context.Context, id int, req *dto.UpdateMcpServerRequest) (*models.McpServer, error)

	Remove(ctx context.Context, id int) error
}
