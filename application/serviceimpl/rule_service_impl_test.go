package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rules-directory/domain/apperrors"
	"rules-directory/domain/dto"
	"rules-directory/domain/models"
)

func seedRules(repo *fakeRuleRepo) {
	repo.seed(
		&models.Rule{CategoryID: 1, Title: "React Rules", Slug: "react-rules", URL: "https://example.com/react", Content: "Use hooks."},
		&models.Rule{CategoryID: 1, Title: "Vue Rules", Slug: "vue-rules", URL: "https://example.com/vue", Content: "Use the composition API."},
		&models.Rule{CategoryID: 2, Title: "Go Rules", Slug: "go-rules", URL: "https://example.com/go", Content: "Return errors."},
	)
}

func TestRuleServiceCreate(t *testing.T) {
	ruleRepo := newFakeRuleRepo()
	svc := NewRuleService(ruleRepo)

	rule, err := svc.Create(context.Background(), &dto.CreateRuleRequest{
		CategoryID: 1,
		Title:      "React Rules",
		Slug:       "react-rules",
		URL:        "https://example.com/react",
		Content:    "Use hooks.",
	})

	require.NoError(t, err)
	assert.NotZero(t, rule.ID)
	assert.Equal(t, 1, rule.CategoryID)
}

func TestRuleServiceCreatePassesStoreErrorsThrough(t *testing.T) {
	ruleRepo := newFakeRuleRepo()
	ruleRepo.createErr = apperrors.NewConflict(`duplicate value violates unique constraint "rules_unique_url"`)
	svc := NewRuleService(ruleRepo)

	_, err := svc.Create(context.Background(), &dto.CreateRuleRequest{
		CategoryID: 1,
		Title:      "React Rules",
		Slug:       "react-rules",
		URL:        "https://example.com/react",
		Content:    "Use hooks.",
	})

	assert.True(t, apperrors.IsConflict(err))
}

func TestRuleServiceFindBySlug(t *testing.T) {
	ruleRepo := newFakeRuleRepo()
	seedRules(ruleRepo)
	svc := NewRuleService(ruleRepo)

	t.Run("found", func(t *testing.T) {
		rule, err := svc.FindBySlug(context.Background(), "vue-rules")
		require.NoError(t, err)
		assert.Equal(t, "Vue Rules", rule.Title)
	})

	t.Run("missing slug maps to not found", func(t *testing.T) {
		_, err := svc.FindBySlug(context.Background(), "nope")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Equal(t, "Rule with slug nope not found", err.Error())
	})
}

func TestRuleServiceFindByCategory(t *testing.T) {
	ruleRepo := newFakeRuleRepo()
	seedRules(ruleRepo)
	svc := NewRuleService(ruleRepo)

	t.Run("scoped to the category", func(t *testing.T) {
		rules, err := svc.FindByCategory(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, rules, 2)
	})

	t.Run("unknown category yields empty list not error", func(t *testing.T) {
		rules, err := svc.FindByCategory(context.Background(), 99)
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}

func TestRuleServiceSearch(t *testing.T) {
	ruleRepo := newFakeRuleRepo()
	seedRules(ruleRepo)
	svc := NewRuleService(ruleRepo)

	t.Run("matches content", func(t *testing.T) {
		rules, err := svc.Search(context.Background(), "composition")
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, "Vue Rules", rules[0].Title)
	})

	t.Run("case-insensitive title match", func(t *testing.T) {
		rules, err := svc.Search(context.Background(), "RULES")
		require.NoError(t, err)
		assert.Len(t, rules, 3)
	})

	t.Run("no hits", func(t *testing.T) {
		rules, err := svc.Search(context.Background(), "zzz")
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}

func TestRuleServiceUpdate(t *testing.T) {
	ruleRepo := newFakeRuleRepo()
	seedRules(ruleRepo)
	svc := NewRuleService(ruleRepo)

	rule, err := svc.Update(context.Background(), 1, &dto.UpdateRuleRequest{
		Content: strPtr("Use hooks and server components."),
	})

	require.NoError(t, err)
	assert.Equal(t, "Use hooks and server components.", rule.Content)
	assert.Equal(t, "React Rules", rule.Title)
}

func TestRuleServiceUpdateStoreFailure(t *testing.T) {
	ruleRepo := newFakeRuleRepo()
	seedRules(ruleRepo)
	ruleRepo.updateErr = errors.New("connection reset")
	svc := NewRuleService(ruleRepo)

	_, err := svc.Update(context.Background(), 1, &dto.UpdateRuleRequest{Title: strPtr("x")})

	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
}

func TestRuleServiceRemove(t *testing.T) {
	ruleRepo := newFakeRuleRepo()
	seedRules(ruleRepo)
	svc := NewRuleService(ruleRepo)

	require.NoError(t, svc.Remove(context.Background(), 2))

	_, err := ruleRepo.GetByID(context.Background(), 2)
	assert.Error(t, err)

	assert.True(t, apperrors.IsNotFound(svc.Remove(context.Background(), 2)))
}
