package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tarekelbanna92/rental-egypt/models"
)

type ListingService struct {
	DB *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{DB: db}
}

// RequireListingOwner loads the listing and enforces that userID is its
// host. Every host-scoped operation funnels through this one predicate
// instead of repeating the check per handler.
func RequireListingOwner(db *gorm.DB, listingID, userID uint) (models.Listing, error) {
	var listing models.Listing
	if err := db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return listing, ErrListingNotFound
		}
		return listing, fmt.Errorf("load listing: %w", err)
	}
	if listing.HostID != userID {
		return listing, ErrNotAuthorized
	}
	return listing, nil
}

func (s *ListingService) Create(listing *models.Listing) error {
	if listing.MaxGuests <= 0 {
		return ErrInvalidCapacity
	}
	if err := s.DB.Create(listing).Error; err != nil {
		return fmt.Errorf("create listing: %w", err)
	}
	return nil
}

// GetByID loads a listing with its gallery in display order.
func (s *ListingService) GetByID(id uint) (models.Listing, error) {
	var listing models.Listing
	err := s.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at DESC")
		}).
		First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return listing, ErrListingNotFound
		}
		return listing, fmt.Errorf("load listing: %w", err)
	}
	return listing, nil
}

type ListingFilter struct {
	City     string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}

// Search returns listings newest first with optional city/price filters.
func (s *ListingService) Search(f ListingFilter) ([]models.Listing, error) {
	q := s.DB.Model(&models.Listing{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at DESC")
		}).
		Order("created_at DESC")

	if f.City != "" {
		q = q.Where("city LIKE ?", "%"+f.City+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_night >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *f.MaxPrice)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var listings []models.Listing
	if err := q.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return listings, nil
}

// ListByHost returns the host's own listings, newest first.
func (s *ListingService) ListByHost(hostID uint) ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at DESC")
		}).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("list host listings: %w", err)
	}
	return listings, nil
}

type ListingUpdate struct {
	Title         *string
	Description   *string
	City          *string
	Address       *string
	PricePerNight *float64
	MaxGuests     *int
	Amenities     []byte
}

func (s *ListingService) Update(listingID, hostID uint, in ListingUpdate) (models.Listing, error) {
	listing, err := RequireListingOwner(s.DB, listingID, hostID)
	if err != nil {
		return listing, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.PricePerNight != nil {
		updates["price_per_night"] = *in.PricePerNight
	}
	if in.MaxGuests != nil {
		if *in.MaxGuests <= 0 {
			return listing, ErrInvalidCapacity
		}
		updates["max_guests"] = *in.MaxGuests
	}
	if in.Amenities != nil {
		updates["amenities"] = in.Amenities
	}
	if len(updates) == 0 {
		return listing, nil
	}

	if err := s.DB.Model(&listing).Updates(updates).Error; err != nil {
		return listing, fmt.Errorf("update listing: %w", err)
	}
	return listing, nil
}

// Delete removes a listing together with its bookings and images (exclusive
// ownership: images do not outlive the listing).
func (s *ListingService) Delete(listingID, hostID uint, uploadDir string) error {
	listing, err := RequireListingOwner(s.DB, listingID, hostID)
	if err != nil {
		return err
	}

	var images []models.ListingImage
	if err := s.DB.Where("listing_id = ?", listingID).Find(&images).Error; err != nil {
		return fmt.Errorf("load images: %w", err)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("delete bookings: %w", err)
		}
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.ListingImage{}).Error; err != nil {
			return fmt.Errorf("delete images: %w", err)
		}
		if err := tx.Delete(&listing).Error; err != nil {
			return fmt.Errorf("delete listing: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	for _, img := range images {
		RemoveImageBlob(uploadDir, img.FilePath)
	}
	return nil
}
