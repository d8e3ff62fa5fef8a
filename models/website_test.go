package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	t.Run("ValidJSON", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan([]byte(`["a","b"]`)))
		assert.Equal(t, StringList{"a", "b"}, l)
	})

	t.Run("MalformedJSONDecodesToEmptyList", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan([]byte(`{"oops":`)))
		assert.Equal(t, StringList{}, l)
	})

	t.Run("WrongJSONShapeDecodesToEmptyList", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan([]byte(`{"not":"a list"}`)))
		assert.Equal(t, StringList{}, l)
	})

	t.Run("NullColumn", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan(nil))
		assert.Equal(t, StringList{}, l)
	})

	t.Run("MalformedScanResetsPreviousValue", func(t *testing.T) {
		l := StringList{"stale"}
		require.NoError(t, l.Scan([]byte(`garbage`)))
		assert.Empty(t, l)
	})
}

func TestScreenshotListScan(t *testing.T) {
	t.Run("ValidJSON", func(t *testing.T) {
		var l ScreenshotList
		require.NoError(t, l.Scan([]byte(`[{"url":"https://x/1.png","caption":"home"}]`)))
		require.Len(t, l, 1)
		assert.Equal(t, "home", l[0].Caption)
	})

	t.Run("MalformedJSONDecodesToEmptyList", func(t *testing.T) {
		var l ScreenshotList
		require.NoError(t, l.Scan([]byte(`[{"url":`)))
		assert.Equal(t, ScreenshotList{}, l)
	})
}

func TestProsConsScan(t *testing.T) {
	t.Run("ValidJSON", func(t *testing.T) {
		var p ProsCons
		require.NoError(t, p.Scan([]byte(`{"pros":["fast"],"cons":["pricey"]}`)))
		assert.Equal(t, []string{"fast"}, p.Pros)
		assert.Equal(t, []string{"pricey"}, p.Cons)
	})

	t.Run("MalformedJSONDecodesToEmptyStructure", func(t *testing.T) {
		var p ProsCons
		require.NoError(t, p.Scan([]byte(`not json at all`)))
		assert.Empty(t, p.Pros)
		assert.Empty(t, p.Cons)
		assert.NotNil(t, p.Pros)
		assert.NotNil(t, p.Cons)
	})
}

func TestPricingModel(t *testing.T) {
	assert.True(t, PricingModelFreemium.Valid())
	assert.False(t, PricingModel("platinum").Valid())

	_, err := PricingModel("platinum").Value()
	assert.Error(t, err)

	v, err := PricingModelOneTime.Value()
	require.NoError(t, err)
	assert.Equal(t, "one_time", v)
}

func TestWebsiteStatus(t *testing.T) {
	assert.True(t, WebsiteStatusApproved.Valid())
	assert.False(t, WebsiteStatus("archived").Valid())

	var s WebsiteStatus
	require.NoError(t, s.Scan([]byte("approved")))
	assert.Equal(t, WebsiteStatusApproved, s)

	w := Website{Status: WebsiteStatusApproved}
	assert.True(t, w.IsApproved())
	w.Status = WebsiteStatusPending
	assert.False(t, w.IsApproved())
}
