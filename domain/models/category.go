package models

import (
	"time"
)

type Category struct {
	ID        int       `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;uniqueIndex:categories_unique_name;not null"`
	Slug      string    `gorm:"size:255;uniqueIndex:categories_unique_slug;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	// Relations
	Rules []Rule `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}
