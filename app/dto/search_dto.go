package dto

// SearchWebsitesRequest carries the parsed /api/search query parameters.
// Invalid values never fail a search; the filter compiler normalizes them
// (unknown enums dropped, out-of-range values clamped).
type SearchWebsitesRequest struct {
	Query           string
	Category        string
	PricingModels   []string
	MinQualityScore *int
	IsTrusted       *bool
	IsFeatured      *bool
	HasFreePlan     *bool
	SSLEnabled      *bool
	Tags            []string
	SortBy          string
	SortOrder       string
	Page            int
	Limit           int
}

// SearchWebsitesResponse is the data payload of a search response
type SearchWebsitesResponse struct {
	Websites   []WebsiteItem  `json:"websites"`
	Pagination PaginationInfo `json:"pagination"`
}
