package serviceimpl

import (
	"context"

	"github.com/gosimple/slug"

	"rules-directory/domain/apperrors"
	"rules-directory/domain/dto"
	"rules-directory/domain/models"
	"rules-directory/domain/repositories"
	"rules-directory/domain/services"
	"rules-directory/pkg/logger"
)

type McpServerServiceImpl struct {
	mcpServerRepo repositories.McpServerRepository
}

func NewMcpServerService(mcpServerRepo repositories.McpServerRepository) services.McpServerService {
	return &McpServerServiceImpl{
		mcpServerRepo: mcpServerRepo,
	}
}

func (s *McpServerServiceImpl) Create(ctx context.Context, req *dto.CreateMcpServerRequest) (*models.McpServer, error) {
	server := &models.McpServer{
		Name:           req.Name,
		Slug:           slug.Make(req.Slug),
		Classification: req.Classification,
		ReleaseDate:    req.ReleaseDate,
		Provider:       req.Provider,
		GithubRepo:     req.GithubRepo,
		Description:    req.Description,
		URL:            req.URL,
	}

	if err := s.mcpServerRepo.Create(ctx, server); err != nil {
		logger.ErrorContext(ctx, "Failed to create MCP server", "name", req.Name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "MCP server created", "mcp_server_id", server.ID, "name", server.Name)
	return server, nil
}

func (s *McpServerServiceImpl) FindOne(ctx context.Context, id int) (*models.McpServer, error) {
	server, err := s.mcpServerRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "MCP server not found", "mcp_server_id", id)
		return nil, apperrors.NewNotFound("MCP Server", "ID", id)
	}
	return server, nil
}

func (s *McpServerServiceImpl) FindBySlug(ctx context.Context, slugStr string) (*models.McpServer, error) {
	server, err := s.mcpServerRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		logger.WarnContext(ctx, "MCP server not found", "slug", slugStr)
		return nil, apperrors.NewNotFound("MCP Server", "slug", slugStr)
	}
	return server, nil
}

func (s *McpServerServiceImpl) FindAllPaginated(ctx context.Context, page, limit int) ([]*models.McpServer, int64, error) {
	return s.mcpServerRepo.ListPaginated(ctx, page, limit)
}

func (s *McpServerServiceImpl) Search(ctx context.Context, term string) ([]*models.McpServer, error) {
	return s.mcpServerRepo.Search(ctx, term)
}

func (s *McpServerServiceImpl) Update(ctx context.Context, id int, req *dto.UpdateMcpServerRequest) (*models.McpServer, error) {
	server, err := s.mcpServerRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "MCP server not found for update", "mcp_server_id", id)
		return nil, apperrors.NewNotFound("MCP Server", "ID", id)
	}

	req.ApplyTo(server)
	if req.Slug != nil {
		server.Slug = slug.Make(*req.Slug)
	}

	if err := s.mcpServerRepo.Update(ctx, server); err != nil {
		logger.ErrorContext(ctx, "Failed to update MCP server", "mcp_server_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "MCP server updated", "mcp_server_id", id)
	return server, nil
}

func (s *McpServerServiceImpl) Remove(ctx context.Context, id int) error {
	_, err := s.mcpServerRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "MCP server not found for deletion", "mcp_server_id", id)
		return apperrors.NewNotFound("MCP Server", "ID", id)
	}

	if err := s.mcpServerRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete MCP server", "mcp_server_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "MCP server deleted", "mcp_server_id", id)
	return nil
}
