// controllers/listing_controller.go
package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/tarekelbanna92/rental-egypt/config"
	"github.com/tarekelbanna92/rental-egypt/middleware"
	"github.com/tarekelbanna92/rental-egypt/models"
	"github.com/tarekelbanna92/rental-egypt/services"
	"github.com/tarekelbanna92/rental-egypt/utils"
)

type ListingController struct {
	ListingSvc *services.ListingService
	Cfg        *config.AppConfig
}

func NewListingController(svc *services.ListingService, cfg *config.AppConfig) *ListingController {
	return &ListingController{ListingSvc: svc, Cfg: cfg}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

type CreateListingPayload struct {
	Title         string          `json:"title" binding:"required,max=200"`
	Description   string          `json:"description"`
	City          string          `json:"city" binding:"required,max=100"`
	Address       string          `json:"address" binding:"max=200"`
	PricePerNight float64         `json:"price_per_night" binding:"required,gt=0"`
	MaxGuests     int             `json:"max_guests"`
	Amenities     json.RawMessage `json:"amenities"`
}

func (lc *ListingController) Create(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload CreateListingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if payload.MaxGuests == 0 {
		payload.MaxGuests = 1
	}

	listing := models.Listing{
		HostID:        hostID,
		Title:         payload.Title,
		Description:   payload.Description,
		City:          payload.City,
		Address:       payload.Address,
		PricePerNight: payload.PricePerNight,
		MaxGuests:     payload.MaxGuests,
		Amenities:     datatypes.JSON(payload.Amenities),
	}
	if err := lc.ListingSvc.Create(&listing); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, listing)
}

func (lc *ListingController) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	listing, err := lc.ListingSvc.GetByID(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"listing":         listing,
		"effective_cover": models.EffectiveCover(listing.Images),
	})
}

func (lc *ListingController) Search(c *gin.Context) {
	filter := services.ListingFilter{
		City:  c.Query("city"),
		Limit: lc.Cfg.PageSize,
	}

	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &p
		}
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 1 {
		filter.Offset = (page - 1) * lc.Cfg.PageSize
	}

	listings, err := lc.ListingSvc.Search(filter)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, listings)
}

func (lc *ListingController) MyListings(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	listings, err := lc.ListingSvc.ListByHost(hostID)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, listings)
}

type UpdateListingPayload struct {
	Title         *string         `json:"title" binding:"omitempty,max=200"`
	Description   *string         `json:"description"`
	City          *string         `json:"city" binding:"omitempty,max=100"`
	Address       *string         `json:"address" binding:"omitempty,max=200"`
	PricePerNight *float64        `json:"price_per_night" binding:"omitempty,gt=0"`
	MaxGuests     *int            `json:"max_guests"`
	Amenities     json.RawMessage `json:"amenities"`
}

func (lc *ListingController) Update(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	var payload UpdateListingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := lc.ListingSvc.Update(id, hostID, services.ListingUpdate{
		Title:         payload.Title,
		Description:   payload.Description,
		City:          payload.City,
		Address:       payload.Address,
		PricePerNight: payload.PricePerNight,
		MaxGuests:     payload.MaxGuests,
		Amenities:     payload.Amenities,
	})
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, listing)
}

func (lc *ListingController) Delete(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	if err := lc.ListingSvc.Delete(id, hostID, lc.Cfg.UploadDir); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
