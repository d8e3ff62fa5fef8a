package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jiannachen/ai-magellan-sub001/models"
	"gorm.io/gorm"
)

// CategoryRepositoryImpl implements the CategoryRepository interface
type CategoryRepositoryImpl struct {
	*BaseRepository
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{BaseRepository: NewBaseRepository(db)}
}

// ByID retrieves a category by ID
func (r *CategoryRepositoryImpl) ByID(ctx context.Context, id uint) (*models.Category, error) {
	db := r.getDB(ctx)

	var category models.Category
	err := db.Last(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

// BySlug retrieves a category by its unique slug
func (r *CategoryRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.Category, error) {
	filter := models.CategoryFilter{Slug: &slug}
	categories, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return nil, nil
	}

	return categories[0], nil
}

// ByFilter retrieves categories based on filter criteria
func (r *CategoryRepositoryImpl) ByFilter(ctx context.Context, filter models.CategoryFilter, orderBy string, limit, offset int) ([]*models.Category, error) {
	db := r.getDB(ctx)

	var categories []*models.Category
	query := r.applyFilter(db, filter)

	if orderBy != "" {
		query = query.Order(orderBy)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Save inserts a new category
func (r *CategoryRepositoryImpl) Save(ctx context.Context, category *models.Category) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Create(category).Error
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	return nil
}

// applyFilter applies filter conditions to the GORM query
func (r *CategoryRepositoryImpl) applyFilter(db *gorm.DB, filter models.CategoryFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.Slug != nil {
		db = db.Where("slug = ?", *filter.Slug)
	}
	if filter.ParentID != nil {
		db = db.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.RootOnly {
		db = db.Where("parent_id IS NULL")
	}

	return db
}
