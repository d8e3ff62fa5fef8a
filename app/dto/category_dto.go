package dto

// CategoryItem is a category tree node with its aggregated tool count.
// ToolCount covers the category's own approved websites plus those of its
// descendants, each website counted exactly once.
type CategoryItem struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	ParentID  *uint          `json:"parentId,omitempty"`
	SortOrder int            `json:"sortOrder"`
	ToolCount int64          `json:"toolCount"`
	Children  []CategoryItem `json:"children,omitempty"`
}

// ListCategoriesResponse is the data payload of a categories response
type ListCategoriesResponse struct {
	Categories []CategoryItem `json:"categories"`
}
