package businessflow

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiannachen/ai-magellan-sub001/models"
)

func TestExportApprovedWebsites(t *testing.T) {
	ctx := context.Background()

	t.Run("WritesWorkbookWithApprovedRowsOnly", func(t *testing.T) {
		websiteRepo := &fakeWebsiteRepo{websites: []*models.Website{
			newTestWebsite(1, "Approved", nil),
			newTestWebsite(2, "Pending", func(w *models.Website) { w.Status = models.WebsiteStatusPending }),
		}}
		flow := NewExportFlow(websiteRepo)

		data, err := flow.ExportApprovedWebsites(ctx, nil)
		require.NoError(t, err)
		require.NotEmpty(t, data)

		// xlsx is a zip container
		assert.True(t, bytes.HasPrefix(data, []byte("PK")))
	})

	t.Run("StoreFailureReturnsNoPartialFile", func(t *testing.T) {
		websiteRepo := &fakeWebsiteRepo{failing: true}
		flow := NewExportFlow(websiteRepo)

		data, err := flow.ExportApprovedWebsites(ctx, nil)
		require.Error(t, err)
		assert.Nil(t, data)
	})
}
