package businessflow

import (
	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/utils"
)

// NormalizePage clamps the 1-based page number
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizeLimit clamps the page size to [1, MaxPageSize], defaulting when unset
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return utils.DefaultPageSize
	}
	if limit > utils.MaxPageSize {
		return utils.MaxPageSize
	}
	return limit
}

// PageOffset converts a normalized (page, limit) pair into a row offset
func PageOffset(page, limit int) int {
	return (page - 1) * limit
}

// BuildPagination computes page metadata for a total row count. A page past
// the end is a normal terminal state: it carries the true total with
// hasNextPage false, and the matching entry list is empty.
func BuildPagination(page, limit int, total int64) dto.PaginationInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	hasNext := page < totalPages
	return dto.PaginationInfo{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: hasNext,
		HasPrevPage: page > 1,
		HasMore:     hasNext,
	}
}
