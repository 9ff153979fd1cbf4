package dto

import (
	"time"

	"rules-directory/domain/models"
)

// === Requests ===

type CreateMcpServerRequest struct {
	Name           string  `json:"name" validate:"required,max=50"`
	Slug           string  `json:"slug" validate:"required,max=50"`
	Classification *string `json:"classification" validate:"omitempty,max=100"`
	ReleaseDate    *string `json:"releaseDate" validate:"omitempty,max=100"`
	Provider       *string `json:"provider" validate:"omitempty,max=255"`
	GithubRepo     *string `json:"githubRepo" validate:"omitempty,url,max=100"`
	Description    *string `json:"description" validate:"omitempty,max=255"`
	URL            string  `json:"url" validate:"required,url,max=100"`
}

type UpdateMcpServerRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=50"`
	Slug           *string `json:"slug" validate:"omitempty,min=1,max=50"`
	Classification *string `json:"classification" validate:"omitempty,max=100"`
	ReleaseDate    *string `json:"releaseDate" validate:"omitempty,max=100"`
	Provider       *string `json:"provider" validate:"omitempty,max=255"`
	GithubRepo     *string `json:"githubRepo" validate:"omitempty,url,max=100"`
	Description    *string `json:"description" validate:"omitempty,max=255"`
	URL            *string `json:"url" validate:"omitempty,url,max=100"`
}

func (r *UpdateMcpServerRequest) ApplyTo(server *models.McpServer) {
	if r.Name != nil {
		server.Name = *r.Name
	}
	if r.Slug != nil {
		server.Slug = *r.Slug
	}
	if r.Classification != nil {
		server.Classification = r.Classification
	}
	if r.ReleaseDate != nil {
		server.ReleaseDate = r.ReleaseDate
	}
	if r.Provider != nil {
		server.Provider = r.Provider
	}
	if r.GithubRepo != nil {
		server.GithubRepo = r.GithubRepo
	}
	if r.Description != nil {
		server.Description = r.Description
	}
	if r.URL != nil {
		server.URL = *r.URL
	}
}

// === Responses ===

type McpServerResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Classification *string   `json:"classification"`
	ReleaseDate    *string   `json:"releaseDate"`
	Provider       *string   `json:"provider"`
	GithubRepo     *string   `json:"githubRepo"`
	Description    *string   `json:"description"`
	URL            string    `json:"url"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// === Mappers ===

func McpServerToMcpServerResponse(server *models.McpServer) *McpServerResponse {
	if server == nil {
		return nil
	}
	return &McpServerResponse{
		ID:             server.ID,
		Name:           server.Name,
		Slug:           server.Slug,
		Classification: server.Classification,
		ReleaseDate:    server.ReleaseDate,
		Provider:       server.Provider,
		GithubRepo:     server.GithubRepo,
		Description:    server.Description,
		URL:            server.URL,
		CreatedAt:      server.CreatedAt,
		UpdatedAt:      server.UpdatedAt,
	}
}

func McpServersToMcpServerResponses(servers []*models.McpServer) []McpServerResponse {
	responses := make([]McpServerResponse, len(servers))
	for i, server := range servers {
		responses[i] = *McpServerToMcpServerResponse(server)
	}
	return responses
}
