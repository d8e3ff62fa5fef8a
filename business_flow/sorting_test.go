package businessflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiannachen/ai-magellan-sub001/models"
)

func TestResolveSearchSort(t *testing.T) {
	t.Run("DefaultsToDescending", func(t *testing.T) {
		spec := ResolveSearchSort(SortByVisits, "", "")
		require.Len(t, spec.Keys, 2)
		assert.Equal(t, models.SortColumnVisits, spec.Keys[0].Column)
		assert.True(t, spec.Keys[0].Desc)
	})

	t.Run("AscendingWhenRequested", func(t *testing.T) {
		spec := ResolveSearchSort(SortByTitle, SortOrderAsc, "")
		require.Len(t, spec.Keys, 2)
		assert.Equal(t, models.SortColumnTitle, spec.Keys[0].Column)
		assert.False(t, spec.Keys[0].Desc)
	})

	t.Run("EverySortEndsWithIDAscending", func(t *testing.T) {
		for _, sortBy := range []string{SortByRelevance, SortByCreatedAt, SortByVisits, SortByLikes, SortByQualityScore, SortByTitle, "bogus"} {
			spec := ResolveSearchSort(sortBy, SortOrderDesc, "chat")
			last := spec.Keys[len(spec.Keys)-1]
			assert.Equal(t, models.SortColumnID, last.Column, "sortBy=%s", sortBy)
			assert.False(t, last.Desc, "sortBy=%s", sortBy)
		}
	})

	t.Run("UnknownSortByFallsBackToRelevance", func(t *testing.T) {
		spec := ResolveSearchSort("wat", "", "chat")
		assert.Equal(t, "chat", spec.RelevanceQuery)
	})

	t.Run("RelevanceWithEmptyQueryDegradesToQualityScore", func(t *testing.T) {
		spec := ResolveSearchSort(SortByRelevance, "", "")
		assert.Empty(t, spec.RelevanceQuery)
		require.Len(t, spec.Keys, 2)
		assert.Equal(t, models.SortColumnQualityScore, spec.Keys[0].Column)
		assert.True(t, spec.Keys[0].Desc)
	})
}

func TestNormalizeRankingType(t *testing.T) {
	assert.Equal(t, RankingTypeTrending, NormalizeRankingType("trending"))
	assert.Equal(t, RankingTypePopular, NormalizeRankingType("bogus"))
	assert.Equal(t, RankingTypePopular, NormalizeRankingType(""))
}

func TestResolveRankingSort(t *testing.T) {
	cases := map[string]string{
		RankingTypePopular:  models.SortColumnVisits,
		RankingTypeTrending: models.SortColumnVisits,
		RankingTypeTopRated: models.SortColumnQualityScore,
		RankingTypeFree:     models.SortColumnQualityScore,
		RankingTypeNew:      models.SortColumnCreatedAt,
	}
	for rankingType, column := range cases {
		spec := ResolveRankingSort(rankingType)
		require.Len(t, spec.Keys, 2, "type=%s", rankingType)
		assert.Equal(t, column, spec.Keys[0].Column, "type=%s", rankingType)
		assert.True(t, spec.Keys[0].Desc, "type=%s", rankingType)
		assert.Equal(t, models.SortColumnID, spec.Keys[1].Column, "type=%s", rankingType)
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("AllMeansNoWindow", func(t *testing.T) {
		assert.Nil(t, WindowStart(TimeRangeAll, now))
		assert.Nil(t, WindowStart("unknown", now))
		assert.Nil(t, WindowStart("", now))
	})

	t.Run("Today", func(t *testing.T) {
		start := WindowStart(TimeRangeToday, now)
		require.NotNil(t, start)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *start)
	})

	t.Run("Week", func(t *testing.T) {
		start := WindowStart(TimeRangeWeek, now)
		require.NotNil(t, start)
		assert.Equal(t, now.AddDate(0, 0, -7), *start)
	})

	t.Run("Month", func(t *testing.T) {
		start := WindowStart(TimeRangeMonth, now)
		require.NotNil(t, start)
		assert.Equal(t, now.AddDate(0, -1, 0), *start)
	})
}
