package handlers_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"rules-directory/domain/apperrors"
	"rules-directory/domain/dto"
	"rules-directory/domain/models"
	"rules-directory/interfaces/api/handlers"
	"rules-directory/interfaces/api/middleware"
	"rules-directory/interfaces/api/routes"
)

// Handler tests exercise routing, dispatch and status mapping against fake
// services, no database involved.

func newTestApp(services *handlers.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	routes.SetupRoutes(app, handlers.NewHandlers(services))
	return app
}

func strPtr(s string) *string { return &s }

// doRequest runs one request through the app and returns the response with its
// body already read.
func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, raw
}

type fakeCategoryService struct {
	categories []*models.Category
	removeErr  error
	nextID     int
}

func (f *fakeCategoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	f.nextID++
	category := &models.Category{ID: f.nextID, Name: req.Name, Slug: req.Slug}
	f.categories = append(f.categories, category)
	return category, nil
}

func (f *fakeCategoryService) FindOne(ctx context.Context, id int) (*models.Category, error) {
	for _, category := range f.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, apperrors.NewNotFound("Category", "ID", id)
}

func (f *fakeCategoryService) FindAll(ctx context.Context) ([]*models.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryService) FindAllPaginated(ctx context.Context, page, limit int) ([]*models.Category, int64, error) {
	return pageOf(f.categories, page, limit), int64(len(f.categories)), nil
}

func (f *fakeCategoryService) Search(ctx context.Context, term string) ([]*models.Category, error) {
	result := []*models.Category{}
	for _, category := range f.categories {
		if containsFold(category.Name, term) || containsFold(category.Slug, term) {
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeCategoryService) Update(ctx context.Context, id int, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := f.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(category)
	return category, nil
}

func (f *fakeCategoryService) Remove(ctx context.Context, id int) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	if _, err := f.FindOne(ctx, id); err != nil {
		return err
	}
	return nil
}

type fakeRuleService struct {
	rules  []*models.Rule
	nextID int
}

func (f *fakeRuleService) Create(ctx context.Context, req *dto.CreateRuleRequest) (*models.Rule, error) {
	f.nextID++
	rule := &models.Rule{
		ID:         f.nextID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Slug:       req.Slug,
		URL:        req.URL,
		Content:    req.Content,
	}
	f.rules = append(f.rules, rule)
	return rule, nil
}

func (f *fakeRuleService) FindOne(ctx context.Context, id int) (*models.Rule, error) {
	for _, rule := range f.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, apperrors.NewNotFound("Rule", "ID", id)
}

func (f *fakeRuleService) FindBySlug(ctx context.Context, slug string) (*models.Rule, error) {
	for _, rule := range f.rules {
		if rule.Slug == slug {
			return rule, nil
		}
	}
	return nil, apperrors.NewNotFound("Rule", "slug", slug)
}

func (f *fakeRuleService) FindByCategory(ctx context.Context, categoryID int) ([]*models.Rule, error) {
	result := []*models.Rule{}
	for _, rule := range f.rules {
		if rule.CategoryID == categoryID {
			result = append(result, rule)
		}
	}
	return result, nil
}

func (f *fakeRuleService) FindAll(ctx context.Context) ([]*models.Rule, error) {
	return f.rules, nil
}

func (f *fakeRuleService) Search(ctx context.Context, term string) ([]*models.Rule, error) {
	result := []*models.Rule{}
	for _, rule := range f.rules {
		if containsFold(rule.Title, term) || containsFold(rule.Content, term) {
			result = append(result, rule)
		}
	}
	return result, nil
}

func (f *fakeRuleService) Update(ctx context.Context, id int, req *dto.UpdateRuleRequest) (*models.Rule, error) {
	rule, err := f.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(rule)
	return rule, nil
}

func (f *fakeRuleService) Remove(ctx context.Context, id int) error {
	_, err := f.FindOne(ctx, id)
	return err
}

type fakeMcpServerService struct {
	servers []*models.McpServer
	nextID  int
}

func (f *fakeMcpServerService) Create(ctx context.Context, req *dto.CreateMcpServerRequest) (*models.McpServer, error) {
	f.nextID++
	server := &models.McpServer{ID: f.nextID, Name: req.Name, Slug: req.Slug, URL: req.URL}
	f.servers = append(f.servers, server)
	return server, nil
}

func (f *fakeMcpServerService) FindOne(ctx context.Context, id int) (*models.McpServer, error) {
	for _, server := range f.servers {
		if server.ID == id {
			return server, nil
		}
	}
	return nil, apperrors.NewNotFound("MCP Server", "ID", id)
}

func (f *fakeMcpServerService) FindBySlug(ctx context.Context, slug string) (*models.McpServer, error) {
	for _, server := range f.servers {
		if server.Slug == slug {
			return server, nil
		}
	}
	return nil, apperrors.NewNotFound("MCP Server", "slug", slug)
}

func (f *fakeMcpServerService) FindAllPaginated(ctx context.Context, page, limit int) ([]*models.McpServer, int64, error) {
	return pageOf(f.servers, page, limit), int64(len(f.servers)), nil
}

func (f *fakeMcpServerService) Search(ctx context.Context, term string) ([]*models.McpServer, error) {
	result := []*models.McpServer{}
	for _, server := range f.servers {
		if containsFold(server.Name, term) {
			result = append(result, server)
		}
	}
	return result, nil
}

func (f *fakeMcpServerService) Update(ctx context.Context, id int, req *dto.UpdateMcpServerRequest) (*models.McpServer, error) {
	server, err := f.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(server)
	return server, nil
}

func (f *fakeMcpServerService) Remove(ctx context.Context, id int) error {
	_, err := f.FindOne(ctx, id)
	return err
}

func seedMcpServers(n int) *fakeMcpServerService {
	svc := &fakeMcpServerService{nextID: n}
	for i := 1; i <= n; i++ {
		svc.servers = append(svc.servers, &models.McpServer{
			ID:   i,
			Name: fmt.Sprintf("Server %d", i),
			Slug: fmt.Sprintf("server-%d", i),
			URL:  fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return svc
}

func pageOf[T any](all []*T, page, limit int) []*T {
	if limit <= 0 {
		return []*T{}
	}
	offset := (page - 1) * limit
	if offset < 0 || offset >= len(all) {
		return []*T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
