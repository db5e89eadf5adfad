// controllers/gallery_controller.go
package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarekelbanna92/rental-egypt/middleware"
	"github.com/tarekelbanna92/rental-egypt/services"
	"github.com/tarekelbanna92/rental-egypt/utils"
)

type GalleryController struct {
	GallerySvc *services.GalleryService
}

func NewGalleryController(svc *services.GalleryService) *GalleryController {
	return &GalleryController{GallerySvc: svc}
}

// Upload accepts a multipart batch under the "images" field.
func (gc *GalleryController) Upload(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	listingID, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid multipart form")
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no images provided")
		return
	}

	files := make([]services.UploadFile, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to read "+h.Filename)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to read "+h.Filename)
			return
		}
		files = append(files, services.UploadFile{Name: h.Filename, Data: data})
	}

	created, err := gc.GallerySvc.AppendImages(listingID, hostID, files)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

type ReorderPayload struct {
	ImageIDs []uint `json:"image_ids" binding:"required"`
}

func (gc *GalleryController) Reorder(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	listingID, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	var payload ReorderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := gc.GallerySvc.Reorder(listingID, hostID, payload.ImageIDs); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	images, err := gc.GallerySvc.ListImages(listingID)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, images)
}

func (gc *GalleryController) SetCover(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	listingID, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}
	imageID, ok := paramUint(c, "imageId")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := gc.GallerySvc.SetCover(listingID, hostID, imageID); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cover": imageID})
}

func (gc *GalleryController) Delete(c *gin.Context) {
	hostID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	listingID, ok := paramUint(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}
	imageID, ok := paramUint(c, "imageId")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := gc.GallerySvc.DeleteImage(listingID, hostID, imageID); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": imageID})
}
