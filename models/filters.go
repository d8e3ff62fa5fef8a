package models

import (
	"time"
)

// WebsiteFilter is the normalized predicate set applied by the website
// repository. Facets are AND-combined; the slice-valued facets (PricingModels,
// Tags, CategoryIDs) are OR-combined within themselves.
//
// Status is set to WebsiteStatusApproved by the filter compiler for every
// search and ranking query; it is not derived from user input.
type WebsiteFilter struct {
	ID     *uint
	UUID   *string
	Slug   *string
	Status *WebsiteStatus

	// Query matches title, tagline and description, case-insensitive substring.
	Query *string

	// CategoryIDs holds the requested category and its descendants.
	CategoryIDs []uint

	PricingModels   []PricingModel
	MinQualityScore *int
	IsTrusted       *bool
	IsFeatured      *bool
	SSLEnabled      *bool

	// HasFreePlan matches pricing_model = free OR has_free_version = true.
	HasFreePlan *bool

	Tags []string

	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// SortKey is a single ordering key of a sort specification.
type SortKey struct {
	Column string
	Desc   bool
}

// SortSpec is the deterministic sort specification resolved by the ranking
// strategy selector. When RelevanceQuery is non-empty the repository orders by
// field-weighted match strength first (title > tagline > description). Keys
// always end with "id ASC" so equal primary values paginate without
// duplicates or gaps.
type SortSpec struct {
	RelevanceQuery string
	Keys           []SortKey
}

// Sortable website columns accepted by SortSpec.
const (
	SortColumnID           = "id"
	SortColumnCreatedAt    = "created_at"
	SortColumnVisits       = "visits"
	SortColumnLikes        = "likes"
	SortColumnQualityScore = "quality_score"
	SortColumnTitle        = "title"
)
