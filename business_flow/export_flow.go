// Package businessflow contains use cases for catalog export
package businessflow

import (
	"bytes"
	"context"
	"strings"

	"github.com/jiannachen/ai-magellan-sub001/models"
	"github.com/jiannachen/ai-magellan-sub001/repository"
	"github.com/jiannachen/ai-magellan-sub001/utils"
	"github.com/xuri/excelize/v2"
)

const exportBatchSize = 500

// ExportFlow produces spreadsheet exports of the approved catalog
type ExportFlow interface {
	ExportApprovedWebsites(ctx context.Context, metadata *ClientMetadata) ([]byte, error)
}

type ExportFlowImpl struct {
	websiteRepo repository.WebsiteRepository
}

func NewExportFlow(websiteRepo repository.WebsiteRepository) ExportFlow {
	return &ExportFlowImpl{websiteRepo: websiteRepo}
}

// ExportApprovedWebsites writes every approved website into a single-sheet
// xlsx workbook, ordered by id so repeated exports are comparable.
func (f *ExportFlowImpl) ExportApprovedWebsites(ctx context.Context, metadata *ClientMetadata) (out []byte, err error) {
	defer func() {
		if err != nil {
			err = NewBusinessError("EXPORT_WEBSITES_FAILED", "Failed to export websites", err)
		}
	}()

	filter := models.WebsiteFilter{Status: utils.ToPtr(models.WebsiteStatusApproved)}
	sort := models.SortSpec{Keys: []models.SortKey{{Column: models.SortColumnID}}}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	header := []string{
		"id", "title", "slug", "url", "category_id", "pricing_model",
		"has_free_version", "quality_score", "visits", "likes",
		"is_featured", "is_trusted", "ssl_enabled", "tags", "created_at",
	}
	if err = xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	rowIndex := 2
	for offset := 0; ; offset += exportBatchSize {
		var websites []*models.Website
		websites, err = f.websiteRepo.ByFilter(ctx, filter, sort, exportBatchSize, offset)
		if err != nil {
			return nil, err
		}
		if len(websites) == 0 {
			break
		}

		for _, w := range websites {
			cell, cellErr := excelize.CoordinatesToCellName(1, rowIndex)
			if cellErr != nil {
				err = cellErr
				return nil, err
			}
			row := []any{
				w.ID, w.Title, w.Slug, w.URL, w.CategoryID, w.PricingModel.String(),
				w.HasFreeVersion, w.QualityScore, w.Visits, w.Likes,
				w.IsFeatured, w.IsTrusted, w.SSLEnabled,
				strings.Join(w.Tags, ","), w.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			if err = xl.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, err
			}
			rowIndex++
		}

		if len(websites) < exportBatchSize {
			break
		}
	}

	var buf bytes.Buffer
	if err = xl.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
