package businessflow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/models"
	"github.com/jiannachen/ai-magellan-sub001/utils"
)

func newTestWebsite(id uint, title string, mutate func(*models.Website)) *models.Website {
	w := &models.Website{
		ID:           id,
		UUID:         uuid.New(),
		Title:        title,
		Slug:         fmt.Sprintf("site-%d", id),
		Tagline:      fmt.Sprintf("%s tagline", title),
		Description:  fmt.Sprintf("%s description", title),
		URL:          fmt.Sprintf("https://site-%d.example.com", id),
		CategoryID:   1,
		PricingModel: models.PricingModelFree,
		QualityScore: 50,
		Status:       models.WebsiteStatusApproved,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
	}
	if mutate != nil {
		mutate(w)
	}
	return w
}

func newSearchFixture(websites ...*models.Website) (SearchFlow, *fakeWebsiteRepo, *fakeCategoryRepo) {
	root := uint(1)
	websiteRepo := &fakeWebsiteRepo{websites: websites}
	categoryRepo := &fakeCategoryRepo{categories: []*models.Category{
		{ID: 1, Name: "AI Tools", Slug: "ai-tools"},
		{ID: 2, Name: "Chatbots", Slug: "chatbots", ParentID: &root},
		{ID: 3, Name: "Design", Slug: "design"},
	}}
	return NewSearchFlow(websiteRepo, categoryRepo), websiteRepo, categoryRepo
}

func TestSearchWebsitesVisibility(t *testing.T) {
	ctx := context.Background()
	flow, _, _ := newSearchFixture(
		newTestWebsite(1, "Approved Tool", nil),
		newTestWebsite(2, "Pending Tool", func(w *models.Website) { w.Status = models.WebsiteStatusPending }),
		newTestWebsite(3, "Rejected Tool", func(w *models.Website) { w.Status = models.WebsiteStatusRejected }),
	)

	resp, err := flow.SearchWebsites(ctx, &dto.SearchWebsitesRequest{}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Websites, 1)
	assert.Equal(t, uint(1), resp.Websites[0].ID)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	// A pending entry stays invisible even when it matches the query best
	resp, err = flow.SearchWebsites(ctx, &dto.SearchWebsitesRequest{Query: "Pending"}, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Websites)
	assert.Equal(t, int64(0), resp.Pagination.Total)
}

func TestSearchWebsitesCombinedFacets(t *testing.T) {
	ctx := context.Background()

	// Scenario: category subtree AND (free OR freemium) AND quality >= 70.
	var websites []*models.Website
	id := uint(0)
	add := func(mutate func(*models.Website)) {
		id++
		websites = append(websites, newTestWebsite(id, fmt.Sprintf("Tool %03d", id), mutate))
	}
	for i := 0; i < 10; i++ {
		add(func(w *models.Website) { w.QualityScore = 80 })
	}
	add(func(w *models.Website) { w.PricingModel = models.PricingModelFreemium; w.QualityScore = 75 })
	add(func(w *models.Website) { w.PricingModel = models.PricingModelPaid; w.QualityScore = 99 })     // wrong pricing
	add(func(w *models.Website) { w.QualityScore = 40 })                                               // below threshold
	add(func(w *models.Website) { w.CategoryID = 3; w.QualityScore = 90 })                             // outside category
	add(func(w *models.Website) { w.CategoryID = 2; w.QualityScore = 85 })                             // subtree child

	flow, _, _ := newSearchFixture(websites...)

	req := &dto.SearchWebsitesRequest{
		Category:        "ai-tools",
		PricingModels:   []string{"free", "freemium"},
		MinQualityScore: utils.ToPtr(70),
		SortBy:          SortByQualityScore,
		Limit:           5,
	}

	resp, err := flow.SearchWebsites(ctx, req, nil)
	require.NoError(t, err)

	// 10 free q80 + 1 freemium q75 + 1 child q85 = 12 matches
	assert.Equal(t, int64(12), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	require.Len(t, resp.Websites, 5)

	for _, item := range resp.Websites {
		assert.GreaterOrEqual(t, item.QualityScore, 70)
		assert.Contains(t, []string{"free", "freemium"}, item.PricingModel)
	}

	// quality desc, then id asc within equal scores
	assert.Equal(t, uint(15), resp.Websites[0].ID) // q85
	assert.Equal(t, uint(1), resp.Websites[1].ID)  // q80 block starts, lowest id first
	assert.Equal(t, uint(2), resp.Websites[2].ID)
}

func TestSearchWebsitesDeterministicPagination(t *testing.T) {
	ctx := context.Background()

	// All entries share the same quality score, so ordering rests entirely
	// on the id tie-break.
	var websites []*models.Website
	for i := 1; i <= 25; i++ {
		websites = append(websites, newTestWebsite(uint(i), fmt.Sprintf("Tool %03d", i), nil))
	}
	flow, _, _ := newSearchFixture(websites...)

	req := func(page int) *dto.SearchWebsitesRequest {
		return &dto.SearchWebsitesRequest{SortBy: SortByQualityScore, Page: page, Limit: 10}
	}

	seen := make(map[uint]bool)
	for page := 1; page <= 3; page++ {
		first, err := flow.SearchWebsites(ctx, req(page), nil)
		require.NoError(t, err)
		second, err := flow.SearchWebsites(ctx, req(page), nil)
		require.NoError(t, err)
		assert.Equal(t, first.Websites, second.Websites, "page %d not deterministic", page)

		for _, item := range first.Websites {
			assert.False(t, seen[item.ID], "entry %d appeared on more than one page", item.ID)
			seen[item.ID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestSearchWebsitesRelevanceOrdering(t *testing.T) {
	ctx := context.Background()
	flow, _, _ := newSearchFixture(
		newTestWebsite(1, "Painter", func(w *models.Website) {
			w.Tagline = "no match here"
			w.Description = "an AI chat canvas"
		}),
		newTestWebsite(2, "Sketcher", func(w *models.Website) {
			w.Tagline = "chat with your drawings"
			w.Description = "no match"
		}),
		newTestWebsite(3, "Chat Studio", func(w *models.Website) {
			w.Tagline = "no match"
			w.Description = "no match"
		}),
	)

	resp, err := flow.SearchWebsites(ctx, &dto.SearchWebsitesRequest{Query: "chat"}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Websites, 3)

	// Title match outranks tagline match outranks description match
	assert.Equal(t, uint(3), resp.Websites[0].ID)
	assert.Equal(t, uint(2), resp.Websites[1].ID)
	assert.Equal(t, uint(1), resp.Websites[2].ID)
}

func TestSearchWebsitesBoundaries(t *testing.T) {
	ctx := context.Background()

	var websites []*models.Website
	for i := 1; i <= 41; i++ {
		websites = append(websites, newTestWebsite(uint(i), fmt.Sprintf("Tool %03d", i), nil))
	}
	flow, _, _ := newSearchFixture(websites...)

	t.Run("PageBeyondTotalPagesIsEmptyNotAnError", func(t *testing.T) {
		resp, err := flow.SearchWebsites(ctx, &dto.SearchWebsitesRequest{Page: 9, Limit: 20}, nil)
		require.NoError(t, err)
		assert.Empty(t, resp.Websites)
		assert.Equal(t, int64(41), resp.Pagination.Total)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.False(t, resp.Pagination.HasNextPage)
	})

	t.Run("NonPositivePageAndLimitAreNormalized", func(t *testing.T) {
		resp, err := flow.SearchWebsites(ctx, &dto.SearchWebsitesRequest{Page: -3, Limit: -1}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, utils.DefaultPageSize, resp.Pagination.Limit)
		assert.Len(t, resp.Websites, utils.DefaultPageSize)
	})

	t.Run("OversizedLimitIsCapped", func(t *testing.T) {
		resp, err := flow.SearchWebsites(ctx, &dto.SearchWebsitesRequest{Limit: 5000}, nil)
		require.NoError(t, err)
		assert.Equal(t, utils.MaxPageSize, resp.Pagination.Limit)
	})
}

func TestSearchWebsitesStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	flow, websiteRepo, _ := newSearchFixture(newTestWebsite(1, "Tool", nil))
	websiteRepo.failing = true

	resp, err := flow.SearchWebsites(ctx, &dto.SearchWebsitesRequest{}, nil)
	require.Error(t, err)
	assert.Nil(t, resp)

	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "SEARCH_WEBSITES_FAILED", bizErr.Code)
}
