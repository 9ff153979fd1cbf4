package models

import (
	"time"
)

// McpServer is an independent directory entry, no relation to Category/Rule.
// Column names keep the legacy camelCase for releaseDate/githubRepo, the
// table predates this service.
type McpServer struct {
	ID             int       `gorm:"primaryKey"`
	Name           string    `gorm:"size:50;not null"`
	Slug           string    `gorm:"size:50;uniqueIndex:mcp_servers_unique_slug;not null"`
	Classification *string   `gorm:"size:100"`
	ReleaseDate    *string   `gorm:"column:releaseDate;size:100"`
	Provider       *string   `gorm:"size:255"`
	GithubRepo     *string   `gorm:"column:githubRepo;size:100"`
	Description    *string   `gorm:"size:255"`
	URL            string    `gorm:"column:url;size:100;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (McpServer) TableName() string {
	return "mcp_servers"
}
