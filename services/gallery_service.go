// services/gallery_service.go
package services

import (
	"errors"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/tarekelbanna92/rental-egypt/config"
	"github.com/tarekelbanna92/rental-egypt/models"
)

// GalleryService keeps a listing's image collection well formed: at most one
// cover flag, sort_order driven by append position or explicit reorder.
type GalleryService struct {
	DB  *gorm.DB
	Cfg *config.AppConfig
}

func NewGalleryService(db *gorm.DB, cfg *config.AppConfig) *GalleryService {
	return &GalleryService{DB: db, Cfg: cfg}
}

// UploadFile is one multipart file read into memory by the controller.
type UploadFile struct {
	Name string
	Data []byte
}

func (s *GalleryService) requireOwnedListing(listingID, hostID uint) error {
	_, err := RequireListingOwner(s.DB, listingID, hostID)
	return err
}

// AppendImages validates the whole batch before creating anything: over the
// batch limit or one oversized file rejects every file. Each blob then gets
// sort_order = current max + 1, assigned sequentially in input order, and is
// never flagged as cover — the first upload of an empty gallery included.
func (s *GalleryService) AppendImages(listingID, hostID uint, files []UploadFile) ([]models.ListingImage, error) {
	if err := s.requireOwnedListing(listingID, hostID); err != nil {
		return nil, err
	}

	if len(files) > s.Cfg.MaxUploadCount {
		return nil, fmt.Errorf("%w: got %d files, max %d", ErrTooManyFiles, len(files), s.Cfg.MaxUploadCount)
	}
	for _, f := range files {
		if int64(len(f.Data)) > s.Cfg.MaxUploadBytes {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, f.Name)
		}
	}

	var created []models.ListingImage
	var savedPaths []string
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		row := tx.Model(&models.ListingImage{}).
			Where("listing_id = ?", listingID).
			Select("COALESCE(MAX(sort_order), -1)").
			Row()
		if err := row.Scan(&maxOrder); err != nil {
			return fmt.Errorf("read max sort_order: %w", err)
		}

		next := maxOrder + 1
		for i, f := range files {
			relPath, err := SaveImageBlob(
				s.Cfg.UploadDir,
				filepath.Join("listings", fmt.Sprintf("%d", listingID)),
				f.Data,
				filepath.Ext(f.Name),
				i,
			)
			if err != nil {
				return fmt.Errorf("store image blob: %w", err)
			}
			savedPaths = append(savedPaths, relPath)

			img := models.ListingImage{
				ListingID: listingID,
				FilePath:  relPath,
				IsCover:   false,
				SortOrder: next,
			}
			if err := tx.Create(&img).Error; err != nil {
				return fmt.Errorf("create image row: %w", err)
			}
			created = append(created, img)
			next++
		}
		return nil
	})
	if txErr != nil {
		// Rolled-back rows must not leave blobs behind on disk.
		for _, p := range savedPaths {
			RemoveImageBlob(s.Cfg.UploadDir, p)
		}
		return nil, txErr
	}
	return created, nil
}

// Reorder assigns sort_order = position for exactly the listing's current
// image id set; any missing, foreign or duplicated id rejects the call
// untouched. Reordering always redefines the cover: whichever image the
// caller put first gets the flag, every other image loses it.
func (s *GalleryService) Reorder(listingID, hostID uint, orderedIDs []uint) error {
	if err := s.requireOwnedListing(listingID, hostID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var current []models.ListingImage
		if err := tx.Where("listing_id = ?", listingID).Find(&current).Error; err != nil {
			return fmt.Errorf("load gallery: %w", err)
		}

		if len(orderedIDs) != len(current) {
			return ErrInvalidOrderSet
		}
		owned := make(map[uint]bool, len(current))
		for _, img := range current {
			owned[img.ID] = true
		}
		seen := make(map[uint]bool, len(orderedIDs))
		for _, id := range orderedIDs {
			if !owned[id] || seen[id] {
				return ErrInvalidOrderSet
			}
			seen[id] = true
		}

		for idx, id := range orderedIDs {
			updates := map[string]interface{}{
				"sort_order": idx,
				"is_cover":   idx == 0,
			}
			if err := tx.Model(&models.ListingImage{}).
				Where("id = ?", id).
				Updates(updates).Error; err != nil {
				return fmt.Errorf("update image %d: %w", id, err)
			}
		}
		return nil
	})
}

// SetCover flags the target image as the listing's cover and clears the flag
// everywhere else. sort_order is untouched.
func (s *GalleryService) SetCover(listingID, hostID, imageID uint) error {
	if err := s.requireOwnedListing(listingID, hostID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var img models.ListingImage
		if err := tx.Where("id = ? AND listing_id = ?", imageID, listingID).First(&img).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrImageNotFound
			}
			return fmt.Errorf("load image: %w", err)
		}

		if err := tx.Model(&models.ListingImage{}).
			Where("listing_id = ? AND id <> ?", listingID, imageID).
			Update("is_cover", false).Error; err != nil {
			return fmt.Errorf("clear covers: %w", err)
		}
		if err := tx.Model(&img).Update("is_cover", true).Error; err != nil {
			return fmt.Errorf("set cover: %w", err)
		}
		return nil
	})
}

// DeleteImage removes one image. Remaining sort_order values keep their
// gaps, and deleting the cover does not promote a replacement — readers fall
// back to models.EffectiveCover.
func (s *GalleryService) DeleteImage(listingID, hostID, imageID uint) error {
	if err := s.requireOwnedListing(listingID, hostID); err != nil {
		return err
	}

	var img models.ListingImage
	if err := s.DB.Where("id = ? AND listing_id = ?", imageID, listingID).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("load image: %w", err)
	}

	if err := s.DB.Delete(&img).Error; err != nil {
		return fmt.Errorf("delete image row: %w", err)
	}
	RemoveImageBlob(s.Cfg.UploadDir, img.FilePath)
	return nil
}

// ListImages returns the gallery in display order.
func (s *GalleryService) ListImages(listingID uint) ([]models.ListingImage, error) {
	var images []models.ListingImage
	if err := s.DB.
		Where("listing_id = ?", listingID).
		Order("sort_order ASC, created_at DESC").
		Find(&images).Error; err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}
