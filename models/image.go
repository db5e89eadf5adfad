package models

import "time"

// ListingImage is one entry of a listing's gallery. Gallery order is
// sort_order ascending with created_at descending as the tie break;
// sort_order values are not required to stay contiguous.
type ListingImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListingID uint      `gorm:"column:listing_id;not null;index" json:"listing_id"`
	FilePath  string    `gorm:"column:file_path;type:text;not null" json:"file_path"`
	IsCover   bool      `gorm:"column:is_cover;default:false" json:"is_cover"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0;index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (ListingImage) TableName() string {
	return "listing_images"
}

// EffectiveCover picks the image a listing display should use: the one
// flagged as cover if any, otherwise the lowest sort_order (newest wins a
// tie), otherwise nil for an empty gallery.
func EffectiveCover(images []ListingImage) *ListingImage {
	for i := range images {
		if images[i].IsCover {
			return &images[i]
		}
	}
	var best *ListingImage
	for i := range images {
		img := &images[i]
		if best == nil ||
			img.SortOrder < best.SortOrder ||
			(img.SortOrder == best.SortOrder && img.CreatedAt.After(best.CreatedAt)) {
			best = img
		}
	}
	return best
}
