package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rules-directory/domain/apperrors"
)

const (
	DefaultCategoryPageSize  = 5
	DefaultMcpServerPageSize = 12
)

// Client is a typed read-side API client. Every request goes to the origin
// uncached (Cache-Control: no-store), matching the server-rendered pages that
// always want fresh data.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError carries a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Message)
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var result T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return result, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}

// errorMessage pulls the message out of a {statusCode, message, error} body,
// falling back to the raw body.
func errorMessage(body []byte) string {
	var parsed struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != nil {
		return fmt.Sprintf("%v", parsed.Message)
	}
	return string(body)
}

func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	return getJSON[[]Category](ctx, c, "/categories")
}

func (c *Client) GetCategoriesPaginated(ctx context.Context, page, limit int) (*PaginatedResponse[Category], error) {
	path := fmt.Sprintf("/categories?page=%d&limit=%d", page, limit)
	result, err := getJSON[PaginatedResponse[Category]](ctx, c, path)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCategoryBySlug lists all categories and scans for the slug. There is no
// dedicated slug endpoint for categories; the full fetch is cheap at catalog
// scale.
func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	categories, err := c.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i], nil
		}
	}
	return nil, apperrors.NewNotFound("Category", "slug", slug)
}

func (c *Client) GetRulesByCategory(ctx context.Context, categoryID int) ([]Rule, error) {
	return getJSON[[]Rule](ctx, c, fmt.Sprintf("/categories/%d/rules", categoryID))
}

func (c *Client) GetRuleBySlug(ctx context.Context, slug string) (*Rule, error) {
	result, err := getJSON[Rule](ctx, c, "/rules/slug/"+url.PathEscape(slug))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SearchRules(ctx context.Context, query string) ([]Rule, error) {
	return getJSON[[]Rule](ctx, c, "/rules/search?q="+url.QueryEscape(query))
}

func (c *Client) SearchCategories(ctx context.Context, query string) ([]Category, error) {
	return getJSON[[]Category](ctx, c, "/categories/search?q="+url.QueryEscape(query))
}

func (c *Client) GetMcpServers(ctx context.Context, page, limit int) (*PaginatedResponse[McpServer], error) {
	path := fmt.Sprintf("/mcp-servers?page=%d&limit=%d", page, limit)
	result, err := getJSON[PaginatedResponse[McpServer]](ctx, c, path)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetMcpServerBySlug(ctx context.Context, slug string) (*McpServer, error) {
	result, err := getJSON[McpServer](ctx, c, "/mcp-servers/slug/"+url.PathEscape(slug))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SearchMcpServers(ctx context.Context, query string) ([]McpServer, error) {
	return getJSON[[]McpServer](ctx, c, "/mcp-servers/search?q="+url.QueryEscape(query))
}

// CategoryWithRules pairs a category with its rules for the grouped list view.
type CategoryWithRules struct {
	Category Category
	Rules    []Rule
}

// FetchRulesForCategories hydrates each category with its rules. A failed
// fetch for one category leaves it with an empty rule list so the rest of the
// page still renders.
func (c *Client) FetchRulesForCategories(ctx context.Context, categories []Category) []CategoryWithRules {
	result := make([]CategoryWithRules, 0, len(categories))
	for _, category := range categories {
		rules, err := c.GetRulesByCategory(ctx, category.ID)
		if err != nil {
			rules = []Rule{}
		}
		result = append(result, CategoryWithRules{Category: category, Rules: rules})
	}
	return result
}
