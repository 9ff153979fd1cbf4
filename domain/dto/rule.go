package dto

import (
	"time"

	"rules-directory/domain/models"
)

// === Requests ===

type CreateRuleRequest struct {
	CategoryID     int     `json:"categoryId" validate:"required"`
	Title          string  `json:"title" validate:"required,max=500"`
	Slug           string  `json:"slug" validate:"required,max=500"`
	URL            string  `json:"url" validate:"required,url,max=100"`
	Content        string  `json:"content" validate:"required"`
	ContentPreview *string `json:"contentPreview" validate:"omitempty"`
}

type UpdateRuleRequest struct {
	CategoryID     *int    `json:"categoryId" validate:"omitempty,min=1"`
	Title          *string `json:"title" validate:"omitempty,min=1,max=500"`
	Slug           *string `json:"slug" validate:"omitempty,min=1,max=500"`
	URL            *string `json:"url" validate:"omitempty,url,max=100"`
	Content        *string `json:"content" validate:"omitempty,min=1"`
	ContentPreview *string `json:"contentPreview" validate:"omitempty"`
}

func (r *UpdateRuleRequest) ApplyTo(rule *models.Rule) {
	if r.CategoryID != nil {
		rule.CategoryID = *r.CategoryID
	}
	if r.Title != nil {
		rule.Title = *r.Title
	}
	if r.Slug != nil {
		rule.Slug = *r.Slug
	}
	if r.URL != nil {
		rule.URL = *r.URL
	}
	if r.Content != nil {
		rule.Content = *r.Content
	}
	if r.ContentPreview != nil {
		rule.ContentPreview = r.ContentPreview
	}
}

// === Responses ===

type RuleResponse struct {
	ID             int               `json:"id"`
	CategoryID     int               `json:"categoryId"`
	Title          string            `json:"title"`
	Slug           string            `json:"slug"`
	URL            string            `json:"url"`
	Content        string            `json:"content"`
	ContentPreview *string           `json:"contentPreview"`
	Category       *CategoryResponse `json:"category,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// === Mappers ===

func RuleToRuleResponse(rule *models.Rule) *RuleResponse {
	if rule == nil {
		return nil
	}
	return &RuleResponse{
		ID:             rule.ID,
		CategoryID:     rule.CategoryID,
		Title:          rule.Title,
		Slug:           rule.Slug,
		URL:            rule.URL,
		Content:        rule.Content,
		ContentPreview: rule.ContentPreview,
		Category:       CategoryToCategoryResponse(rule.Category),
		CreatedAt:      rule.CreatedAt,
		UpdatedAt:      rule.UpdatedAt,
	}
}

func RulesToRuleResponses(rules []*models.Rule) []RuleResponse {
	responses := make([]RuleResponse, len(rules))
	for i, rule := range rules {
		responses[i] = *RuleToRuleResponse(rule)
	}
	return responses
}
