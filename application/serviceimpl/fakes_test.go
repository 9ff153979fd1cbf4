package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"strings"

	"rules-directory/domain/models"
)

// In-memory repository fakes. They mimic the store's observable behavior:
// newest-first ordering, case-insensitive substring search, record-not-found
// errors on missing ids.

var errRecordNotFound = errors.New("record not found")

type fakeCategoryRepo struct {
	categories map[int]*models.Category
	nextID     int

	createErr error
	updateErr error
	deleteErr error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int]*models.Category{}, nextID: 1}
}

func (f *fakeCategoryRepo) seed(categories ...*models.Category) {
	for _, category := range categories {
		if category.ID == 0 {
			category.ID = f.nextID
		}
		if category.ID >= f.nextID {
			f.nextID = category.ID + 1
		}
		f.categories[category.ID] = category
	}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	category.ID = f.nextID
	f.nextID++
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, errRecordNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	result := make([]*models.Category, 0, len(f.categories))
	for _, category := range f.categories {
		result = append(result, category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (f *fakeCategoryRepo) ListPaginated(ctx context.Context, page, limit int) ([]*models.Category, int64, error) {
	all, _ := f.List(ctx)
	total := int64(len(all))
	return slicePage(all, page, limit), total, nil
}

func (f *fakeCategoryRepo) Search(ctx context.Context, term string) ([]*models.Category, error) {
	all, _ := f.List(ctx)
	result := []*models.Category{}
	for _, category := range all {
		if containsFold(category.Name, term) || containsFold(category.Slug, term) {
			result = append(result, category)
		}
	}
	return result, nil
}

type fakeRuleRepo struct {
	rules  map[int]*models.Rule
	nextID int

	createErr error
	updateErr error
}

func newFakeRuleRepo() *fakeRuleRepo {
	return &fakeRuleRepo{rules: map[int]*models.Rule{}, nextID: 1}
}

func (f *fakeRuleRepo) seed(rules ...*models.Rule) {
	for _, rule := range rules {
		if rule.ID == 0 {
			rule.ID = f.nextID
		}
		if rule.ID >= f.nextID {
			f.nextID = rule.ID + 1
		}
		f.rules[rule.ID] = rule
	}
}

func (f *fakeRuleRepo) Create(ctx context.Context, rule *models.Rule) error {
	if f.createErr != nil {
		return f.createErr
	}
	rule.ID = f.nextID
	f.nextID++
	f.rules[rule.ID] = rule
	return nil
}

func (f *fakeRuleRepo) GetByID(ctx context.Context, id int) (*models.Rule, error) {
	rule, ok := f.rules[id]
	if !ok {
		return nil, errRecordNotFound
	}
	return rule, nil
}

func (f *fakeRuleRepo) GetBySlug(ctx context.Context, slug string) (*models.Rule, error) {
	for _, rule := range f.rules {
		if rule.Slug == slug {
			return rule, nil
		}
	}
	return nil, errRecordNotFound
}

func (f *fakeRuleRepo) GetByCategory(ctx context.Context, categoryID int) ([]*models.Rule, error) {
	all, _ := f.List(ctx)
	result := []*models.Rule{}
	for _, rule := range all {
		if rule.CategoryID == categoryID {
			result = append(result, rule)
		}
	}
	return result, nil
}

func (f *fakeRuleRepo) Update(ctx context.Context, rule *models.Rule) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rules[rule.ID] = rule
	return nil
}

func (f *fakeRuleRepo) Delete(ctx context.Context, id int) error {
	delete(f.rules, id)
	return nil
}

func (f *fakeRuleRepo) List(ctx context.Context) ([]*models.Rule, error) {
	result := make([]*models.Rule, 0, len(f.rules))
	for _, rule := range f.rules {
		result = append(result, rule)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (f *fakeRuleRepo) Search(ctx context.Context, term string) ([]*models.Rule, error) {
	all, _ := f.List(ctx)
	result := []*models.Rule{}
	for _, rule := range all {
		preview := ""
		if rule.ContentPreview != nil {
			preview = *rule.ContentPreview
		}
		if containsFold(rule.Title, term) || containsFold(rule.Slug, term) ||
			containsFold(rule.Content, term) || containsFold(preview, term) {
			result = append(result, rule)
		}
	}
	return result, nil
}

func (f *fakeRuleRepo) CountByCategory(ctx context.Context, categoryID int) (int64, error) {
	var count int64
	for _, rule := range f.rules {
		if rule.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type fakeMcpServerRepo struct {
	servers map[int]*models.McpServer
	nextID  int

	createErr error
}

func newFakeMcpServerRepo() *fakeMcpServerRepo {
	return &fakeMcpServerRepo{servers: map[int]*models.McpServer{}, nextID: 1}
}

func (f *fakeMcpServerRepo) seed(servers ...*models.McpServer) {
	for _, server := range servers {
		if server.ID == 0 {
			server.ID = f.nextID
		}
		if server.ID >= f.nextID {
			f.nextID = server.ID + 1
		}
		f.servers[server.ID] = server
	}
}

func (f *fakeMcpServerRepo) Create(ctx context.Context, server *models.McpServer) error {
	if f.createErr != nil {
		return f.createErr
	}
	server.ID = f.nextID
	f.nextID++
	f.servers[server.ID] = server
	return nil
}

func (f *fakeMcpServerRepo) GetByID(ctx context.Context, id int) (*models.McpServer, error) {
	server, ok := f.servers[id]
	if !ok {
		return nil, errRecordNotFound
	}
	return server, nil
}

func (f *fakeMcpServerRepo) GetBySlug(ctx context.Context, slug string) (*models.McpServer, error) {
	for _, server := range f.servers {
		if server.Slug == slug {
			return server, nil
		}
	}
	return nil, errRecordNotFound
}

func (f *fakeMcpServerRepo) Update(ctx context.Context, server *models.McpServer) error {
	f.servers[server.ID] = server
	return nil
}

func (f *fakeMcpServerRepo) Delete(ctx context.Context, id int) error {
	delete(f.servers, id)
	return nil
}

func (f *fakeMcpServerRepo) ListPaginated(ctx context.Context, page, limit int) ([]*models.McpServer, int64, error) {
	all := make([]*models.McpServer, 0, len(f.servers))
	for _, server := range f.servers {
		all = append(all, server)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return slicePage(all, page, limit), int64(len(all)), nil
}

func (f *fakeMcpServerRepo) Search(ctx context.Context, term string) ([]*models.McpServer, error) {
	result := []*models.McpServer{}
	for _, server := range f.servers {
		if containsFold(server.Name, term) || containsFold(server.Slug, term) ||
			containsFold(deref(server.Description), term) ||
			containsFold(deref(server.Provider), term) ||
			containsFold(deref(server.Classification), term) {
			result = append(result, server)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func slicePage[T any](all []T, page, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	offset := (page - 1) * limit
	if offset < 0 || offset >= len(all) {
		return []T{}
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

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
