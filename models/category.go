package models

import (
	"time"
)

// Category represents a node of the category tree. ParentID is nil for roots.
type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Slug      string     `gorm:"size:100;not null;uniqueIndex:uk_categories_slug" json:"slug"`
	ParentID  *uint      `gorm:"index:idx_categories_parent_id" json:"parent_id,omitempty"`
	SortOrder int        `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
	Children  []Category `gorm:"foreignKey:ParentID" json:"-"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// CategoryFilter represents filter criteria for category queries
type CategoryFilter struct {
	ID       *uint
	Slug     *string
	ParentID *uint
	RootOnly bool
}
