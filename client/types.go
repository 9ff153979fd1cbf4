package client

import "time"

// Wire types as the API serves them. These mirror the server responses but are
// owned by the consumer side, the client has no compile-time dependency on the
// server's internals.

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Rule struct {
	ID             int       `json:"id"`
	CategoryID     int       `json:"categoryId"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	URL            string    `json:"url"`
	Content        string    `json:"content"`
	ContentPreview *string   `json:"contentPreview"`
	Category       *Category `json:"category,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type McpServer struct {
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

// PaginatedResponse is the page envelope: {data, total, page, limit, totalPages}.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}
