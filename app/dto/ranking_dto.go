package dto

// GetRankingsRequest carries the parsed /api/rankings query parameters
type GetRankingsRequest struct {
	Type        string
	Category    string
	PriceFilter string
	TimeRange   string
	SearchQuery string
	Page        int
	Limit       int
}

// GetRankingsResponse is the data payload of a rankings response
type GetRankingsResponse struct {
	Websites   []WebsiteItem  `json:"websites"`
	Pagination PaginationInfo `json:"pagination"`
}
