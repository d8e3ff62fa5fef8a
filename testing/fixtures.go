// Package testing provides test utilities and database setup for testing the catalog service
package testing

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/jiannachen/ai-magellan-sub001/models"
	"github.com/jiannachen/ai-magellan-sub001/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestCategory creates a category; parentID nil makes it a root
func (tf *TestFixtures) CreateTestCategory(name string, parentID *uint) (*models.Category, error) {
	suffix := rand.Intn(100000)
	category := &models.Category{
		Name:      name,
		Slug:      fmt.Sprintf("%s-%d", slugify(name), suffix),
		ParentID:  parentID,
		SortOrder: 0,
	}

	if err := tf.DB.DB.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create test category: %w", err)
	}

	return category, nil
}

// WebsiteOption mutates a fixture website before it is persisted
type WebsiteOption func(*models.Website)

// WithStatus sets the moderation status
func WithStatus(status models.WebsiteStatus) WebsiteOption {
	return func(w *models.Website) { w.Status = status }
}

// WithPricing sets the pricing model
func WithPricing(pm models.PricingModel) WebsiteOption {
	return func(w *models.Website) { w.PricingModel = pm }
}

// WithQualityScore sets the quality score
func WithQualityScore(score int) WebsiteOption {
	return func(w *models.Website) { w.QualityScore = score }
}

// WithCounters sets the engagement counters
func WithCounters(visits, likes int64) WebsiteOption {
	return func(w *models.Website) { w.Visits = visits; w.Likes = likes }
}

// WithTags sets the tag list
func WithTags(tags ...string) WebsiteOption {
	return func(w *models.Website) { w.Tags = tags }
}

// CreateTestWebsite creates an approved website in the given category,
// customizable through options
func (tf *TestFixtures) CreateTestWebsite(title string, categoryID uint, opts ...WebsiteOption) (*models.Website, error) {
	suffix := rand.Intn(100000)
	website := &models.Website{
		UUID:         uuid.New(),
		Title:        title,
		Slug:         fmt.Sprintf("%s-%d", slugify(title), suffix),
		Tagline:      fmt.Sprintf("%s in one sentence", title),
		Description:  fmt.Sprintf("%s is a test catalog entry.", title),
		URL:          fmt.Sprintf("https://%s-%d.example.com", slugify(title), suffix),
		CategoryID:   categoryID,
		Tags:         models.StringList{},
		PricingModel: models.PricingModelFree,
		QualityScore: 50,
		Status:       models.WebsiteStatusApproved,
		CreatedAt:    utils.UTCNow(),
		UpdatedAt:    utils.UTCNow(),
	}

	for _, opt := range opts {
		opt(website)
	}

	if err := tf.DB.DB.Create(website).Error; err != nil {
		return nil, fmt.Errorf("failed to create test website: %w", err)
	}

	return website, nil
}

func slugify(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c == ' ' || c == '-' || c == '_':
			out = append(out, '-')
		}
	}
	return string(out)
}
