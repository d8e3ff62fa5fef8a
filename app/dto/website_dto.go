package dto

import (
	"time"
)

// ScreenshotItem is a single screenshot in a website response
type ScreenshotItem struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// ProsConsItem holds the decoded pros/cons lists of a website
type ProsConsItem struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// WebsiteItem is a cataloged website decorated with its category, as returned
// by search and ranking responses
type WebsiteItem struct {
	ID             uint             `json:"id"`
	UUID           string           `json:"uuid"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Tagline        string           `json:"tagline"`
	Description    string           `json:"description"`
	URL            string           `json:"url"`
	LogoURL        *string          `json:"logoUrl,omitempty"`
	ThumbnailURL   *string          `json:"thumbnailUrl,omitempty"`
	CategoryID     uint             `json:"categoryId"`
	CategoryName   string           `json:"categoryName"`
	CategorySlug   string           `json:"categorySlug"`
	Tags           []string         `json:"tags"`
	PricingModel   string           `json:"pricingModel"`
	HasFreeVersion bool             `json:"hasFreeVersion"`
	QualityScore   int              `json:"qualityScore"`
	Visits         int64            `json:"visits"`
	Likes          int64            `json:"likes"`
	IsFeatured     bool             `json:"isFeatured"`
	IsTrusted      bool             `json:"isTrusted"`
	SSLEnabled     bool             `json:"sslEnabled"`
	Features       []string         `json:"features"`
	Screenshots    []ScreenshotItem `json:"screenshots"`
	ProsCons       ProsConsItem     `json:"prosCons"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// SubmitWebsiteRequest is the payload for submitting a new tool. Submissions
// are created with status pending; moderation happens elsewhere.
type SubmitWebsiteRequest struct {
	Title          string   `json:"title" validate:"required,min=2,max=200"`
	Slug           string   `json:"slug" validate:"required,min=2,max=200"`
	Tagline        string   `json:"tagline" validate:"max=300"`
	Description    string   `json:"description" validate:"max=5000"`
	URL            string   `json:"url" validate:"required,url,max=500"`
	LogoURL        *string  `json:"logoUrl,omitempty" validate:"omitempty,url,max=500"`
	ThumbnailURL   *string  `json:"thumbnailUrl,omitempty" validate:"omitempty,url,max=500"`
	CategorySlug   string   `json:"categorySlug" validate:"required"`
	Tags           []string `json:"tags" validate:"max=20,dive,min=1,max=50"`
	PricingModel   string   `json:"pricingModel" validate:"omitempty,oneof=free freemium paid subscription one_time custom"`
	HasFreeVersion bool     `json:"hasFreeVersion"`
	SSLEnabled     bool     `json:"sslEnabled"`
	Features       []string `json:"features" validate:"max=50,dive,min=1,max=200"`
}

// SubmitWebsiteResponse is returned after a successful submission
type SubmitWebsiteResponse struct {
	ID     uint   `json:"id"`
	UUID   string `json:"uuid"`
	Slug   string `json:"slug"`
	Status string `json:"status"`
}
