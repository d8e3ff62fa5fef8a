// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/jiannachen/ai-magellan-sub001/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

// WebsiteRepository defines read and write operations for cataloged websites.
// ByFilter and Count interpret the identical filter value so that page content
// and pagination totals can never disagree about the predicate.
type WebsiteRepository interface {
	ByID(ctx context.Context, id uint) (*models.Website, error)
	BySlug(ctx context.Context, slug string) (*models.Website, error)
	ByFilter(ctx context.Context, filter models.WebsiteFilter, sort models.SortSpec, limit, offset int) ([]*models.Website, error)
	Count(ctx context.Context, filter models.WebsiteFilter) (int64, error)
	Exists(ctx context.Context, filter models.WebsiteFilter) (bool, error)
	Save(ctx context.Context, website *models.Website) error
	UpdateStatus(ctx context.Context, id uint, status models.WebsiteStatus) error
	IncrementVisits(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) error
	ApprovedCountsByCategory(ctx context.Context) (map[uint]int64, error)
}

// CategoryRepository defines operations for the category tree
type CategoryRepository interface {
	ByID(ctx context.Context, id uint) (*models.Category, error)
	BySlug(ctx context.Context, slug string) (*models.Category, error)
	ByFilter(ctx context.Context, filter models.CategoryFilter, orderBy string, limit, offset int) ([]*models.Category, error)
	Save(ctx context.Context, category *models.Category) error
}
