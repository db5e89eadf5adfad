package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveCover(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty gallery", func(t *testing.T) {
		assert.Nil(t, EffectiveCover(nil))
	})

	t.Run("flagged cover wins regardless of order", func(t *testing.T) {
		images := []ListingImage{
			{ID: 1, SortOrder: 0, CreatedAt: base},
			{ID: 2, SortOrder: 5, IsCover: true, CreatedAt: base},
		}
		cover := EffectiveCover(images)
		require.NotNil(t, cover)
		assert.EqualValues(t, 2, cover.ID)
	})

	t.Run("falls back to lowest sort_order", func(t *testing.T) {
		images := []ListingImage{
			{ID: 1, SortOrder: 3, CreatedAt: base},
			{ID: 2, SortOrder: 1, CreatedAt: base},
			{ID: 3, SortOrder: 7, CreatedAt: base},
		}
		cover := EffectiveCover(images)
		require.NotNil(t, cover)
		assert.EqualValues(t, 2, cover.ID)
	})

	t.Run("equal sort_order breaks ties by newest", func(t *testing.T) {
		images := []ListingImage{
			{ID: 1, SortOrder: 0, CreatedAt: base},
			{ID: 2, SortOrder: 0, CreatedAt: base.Add(time.Hour)},
			{ID: 3, SortOrder: 0, CreatedAt: base.Add(-time.Hour)},
		}
		cover := EffectiveCover(images)
		require.NotNil(t, cover)
		assert.EqualValues(t, 2, cover.ID)
	})
}
