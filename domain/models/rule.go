package models

import (
	"time"
)

type Rule struct {
	ID             int       `gorm:"primaryKey"`
	CategoryID     int       `gorm:"column:category_id;index:rules_idx_category_id;not null"`
	Title          string    `gorm:"size:500;not null"`
	Slug           string    `gorm:"size:500;not null"`
	URL            string    `gorm:"column:url;size:100;uniqueIndex:rules_unique_url;not null"`
	Content        string    `gorm:"type:text;not null"`
	ContentPreview *string   `gorm:"column:content_preview;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`

	// Relations (no cascade on the FK, deleting a category with rules must fail)
	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Rule) TableName() string {
	return "rules"
}
