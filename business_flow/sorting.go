package businessflow

import (
	"time"

	"github.com/jiannachen/ai-magellan-sub001/models"
	"github.com/jiannachen/ai-magellan-sub001/utils"
)

// Search sort keys accepted by /api/search
const (
	SortByRelevance    = "relevance"
	SortByCreatedAt    = "created_at"
	SortByVisits       = "visits"
	SortByLikes        = "likes"
	SortByQualityScore = "quality_score"
	SortByTitle        = "title"
)

// Sort directions
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Ranking views accepted by /api/rankings
const (
	RankingTypePopular  = "popular"
	RankingTypeTopRated = "top-rated"
	RankingTypeTrending = "trending"
	RankingTypeFree     = "free"
	RankingTypeNew      = "new"
)

// Time windows accepted by /api/rankings
const (
	TimeRangeAll   = "all"
	TimeRangeToday = "today"
	TimeRangeWeek  = "week"
	TimeRangeMonth = "month"
)

// tieBreak is appended to every sort specification. Two requests with
// identical filters and paging must yield identical ordering even when
// entries share the primary sort value, otherwise paginating produces
// duplicates or gaps.
var tieBreak = models.SortKey{Column: models.SortColumnID, Desc: false}

// ResolveSearchSort resolves a search sortBy/sortOrder pair to a
// deterministic sort specification. Unknown sortBy values fall back to
// relevance; relevance with an empty query degrades to quality score.
// Relevance match strength is field-weighted: a title hit outranks a tagline
// hit, which outranks a description hit.
func ResolveSearchSort(sortBy, sortOrder, query string) models.SortSpec {
	desc := sortOrder != SortOrderAsc

	switch sortBy {
	case SortByCreatedAt:
		return sortSpec(models.SortColumnCreatedAt, desc)
	case SortByVisits:
		return sortSpec(models.SortColumnVisits, desc)
	case SortByLikes:
		return sortSpec(models.SortColumnLikes, desc)
	case SortByQualityScore:
		return sortSpec(models.SortColumnQualityScore, desc)
	case SortByTitle:
		return sortSpec(models.SortColumnTitle, desc)
	default:
		// relevance, and the fallback for unknown values
		if query == "" {
			return sortSpec(models.SortColumnQualityScore, true)
		}
		return models.SortSpec{
			RelevanceQuery: query,
			Keys: []models.SortKey{
				{Column: models.SortColumnQualityScore, Desc: true},
				tieBreak,
			},
		}
	}
}

// NormalizeRankingType maps an unknown ranking type to popular
func NormalizeRankingType(rankingType string) string {
	switch rankingType {
	case RankingTypePopular, RankingTypeTopRated, RankingTypeTrending,
		RankingTypeFree, RankingTypeNew:
		return rankingType
	default:
		return RankingTypePopular
	}
}

// ResolveRankingSort resolves a normalized ranking type to its fixed sort
// specification
func ResolveRankingSort(rankingType string) models.SortSpec {
	switch NormalizeRankingType(rankingType) {
	case RankingTypeTopRated, RankingTypeFree:
		return sortSpec(models.SortColumnQualityScore, true)
	case RankingTypeNew:
		return sortSpec(models.SortColumnCreatedAt, true)
	default:
		// popular and trending rank by visits
		return sortSpec(models.SortColumnVisits, true)
	}
}

// WindowStart translates a time range into the inclusive lower bound for
// created_at. Entries created before the bound are excluded, not down-ranked.
// Nil means no window (all time). Unknown values behave like "all".
func WindowStart(timeRange string, now time.Time) *time.Time {
	switch timeRange {
	case TimeRangeToday:
		return utils.ToPtr(utils.StartOfDay(now))
	case TimeRangeWeek:
		return utils.ToPtr(now.UTC().AddDate(0, 0, -7))
	case TimeRangeMonth:
		return utils.ToPtr(now.UTC().AddDate(0, -1, 0))
	default:
		return nil
	}
}

func sortSpec(column string, desc bool) models.SortSpec {
	return models.SortSpec{
		Keys: []models.SortKey{
			{Column: column, Desc: desc},
			tieBreak,
		},
	}
}
