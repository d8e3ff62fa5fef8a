package businessflow

import (
	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/models"
)

// AssembleWebsiteItems shapes raw website rows into the response contract.
// Category data comes from the preloaded association, never a per-row query.
// Embedded JSON columns have already been decoded defensively by the model
// layer; nil collections are normalized to empty ones so the wire format is
// stable.
func AssembleWebsiteItems(websites []*models.Website) []dto.WebsiteItem {
	items := make([]dto.WebsiteItem, 0, len(websites))
	for _, w := range websites {
		items = append(items, assembleWebsiteItem(w))
	}
	return items
}

func assembleWebsiteItem(w *models.Website) dto.WebsiteItem {
	item := dto.WebsiteItem{
		ID:             w.ID,
		UUID:           w.UUID.String(),
		Title:          w.Title,
		Slug:           w.Slug,
		Tagline:        w.Tagline,
		Description:    w.Description,
		URL:            w.URL,
		LogoURL:        w.LogoURL,
		ThumbnailURL:   w.ThumbnailURL,
		CategoryID:     w.CategoryID,
		Tags:           emptyIfNil([]string(w.Tags)),
		PricingModel:   w.PricingModel.String(),
		HasFreeVersion: w.HasFreeVersion,
		QualityScore:   w.QualityScore,
		Visits:         w.Visits,
		Likes:          w.Likes,
		IsFeatured:     w.IsFeatured,
		IsTrusted:      w.IsTrusted,
		SSLEnabled:     w.SSLEnabled,
		Features:       emptyIfNil([]string(w.Features)),
		Screenshots:    assembleScreenshots(w.Screenshots),
		ProsCons: dto.ProsConsItem{
			Pros: emptyIfNil(w.ProsCons.Pros),
			Cons: emptyIfNil(w.ProsCons.Cons),
		},
		CreatedAt: w.CreatedAt,
	}

	if w.Category != nil {
		item.CategoryName = w.Category.Name
		item.CategorySlug = w.Category.Slug
	}

	return item
}

func assembleScreenshots(screenshots models.ScreenshotList) []dto.ScreenshotItem {
	items := make([]dto.ScreenshotItem, 0, len(screenshots))
	for _, s := range screenshots {
		items = append(items, dto.ScreenshotItem{URL: s.URL, Caption: s.Caption})
	}
	return items
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
