package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	businessflow "github.com/jiannachen/ai-magellan-sub001/business_flow"
)

type stubSubmissionFlow struct {
	submitErr  error
	counterErr error
	visited    []uint
	liked      []uint
}

func (s *stubSubmissionFlow) SubmitWebsite(ctx context.Context, req *dto.SubmitWebsiteRequest, metadata *businessflow.ClientMetadata) (*dto.SubmitWebsiteResponse, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &dto.SubmitWebsiteResponse{ID: 1, UUID: "u", Slug: req.Slug, Status: "pending"}, nil
}

func (s *stubSubmissionFlow) RecordVisit(ctx context.Context, websiteID uint) error {
	if s.counterErr != nil {
		return s.counterErr
	}
	s.visited = append(s.visited, websiteID)
	return nil
}

func (s *stubSubmissionFlow) RecordLike(ctx context.Context, websiteID uint) error {
	if s.counterErr != nil {
		return s.counterErr
	}
	s.liked = append(s.liked, websiteID)
	return nil
}

type stubExportFlow struct{}

func (s *stubExportFlow) ExportApprovedWebsites(ctx context.Context, metadata *businessflow.ClientMetadata) ([]byte, error) {
	return []byte("PK fake workbook"), nil
}

func newWebsiteTestApp(flow *stubSubmissionFlow) *fiber.App {
	app := fiber.New()
	h := NewWebsiteHandler(flow, &stubExportFlow{})
	app.Post("/api/websites", h.SubmitWebsite)
	app.Post("/api/websites/:id/visit", h.RecordVisit)
	app.Post("/api/websites/:id/like", h.RecordLike)
	app.Get("/api/websites/export", h.ExportWebsites)
	return app
}

func postJSON(app *fiber.App, path, body string) (int, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func TestSubmitWebsiteHandler(t *testing.T) {
	validBody := `{"title":"New Tool","slug":"new-tool","url":"https://new-tool.example.com","categorySlug":"ai-tools"}`

	t.Run("Created", func(t *testing.T) {
		status, err := postJSON(newWebsiteTestApp(&stubSubmissionFlow{}), "/api/websites", validBody)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, status)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		status, err := postJSON(newWebsiteTestApp(&stubSubmissionFlow{}), "/api/websites",
			`{"title":"New Tool","slug":"new-tool","categorySlug":"ai-tools"}`)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("InvalidPricingModel", func(t *testing.T) {
		status, err := postJSON(newWebsiteTestApp(&stubSubmissionFlow{}), "/api/websites",
			`{"title":"New Tool","slug":"new-tool","url":"https://x.example.com","categorySlug":"ai-tools","pricingModel":"platinum"}`)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		app := newWebsiteTestApp(&stubSubmissionFlow{submitErr: businessflow.ErrCategoryNotFound})
		status, err := postJSON(app, "/api/websites", validBody)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("SlugConflict", func(t *testing.T) {
		app := newWebsiteTestApp(&stubSubmissionFlow{submitErr: businessflow.ErrWebsiteSlugTaken})
		status, err := postJSON(app, "/api/websites", validBody)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, status)
	})
}

func TestRecordCounterHandler(t *testing.T) {
	t.Run("Visit", func(t *testing.T) {
		flow := &stubSubmissionFlow{}
		status, err := postJSON(newWebsiteTestApp(flow), "/api/websites/7/visit", "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, []uint{7}, flow.visited)
	})

	t.Run("BadID", func(t *testing.T) {
		status, err := postJSON(newWebsiteTestApp(&stubSubmissionFlow{}), "/api/websites/zero/visit", "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("NotFound", func(t *testing.T) {
		app := newWebsiteTestApp(&stubSubmissionFlow{counterErr: businessflow.ErrWebsiteNotFound})
		status, err := postJSON(app, "/api/websites/7/like", "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("NotApproved", func(t *testing.T) {
		app := newWebsiteTestApp(&stubSubmissionFlow{counterErr: businessflow.ErrWebsiteNotApproved})
		status, err := postJSON(app, "/api/websites/7/like", "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, status)
	})
}

func TestExportWebsitesHandler(t *testing.T) {
	app := newWebsiteTestApp(&stubSubmissionFlow{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/websites/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "websites.xlsx")
}
