package upload

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kivulounge/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.POST("/rooms/:id/image", h.UploadRoomImage)
}

func (h *Handler) UploadRoomImage(c *gin.Context) {
	if h.service == nil {
		response.Error(c, http.StatusServiceUnavailable, "UPLOADS_DISABLED", "Image uploads are not configured")
		return
	}

	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "MISSING_FILE", "No image file provided")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Could not read image file")
		return
	}
	defer src.Close()

	url, err := h.service.UploadRoomImage(c.Request.Context(), roomID, src)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", "Failed to upload image")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image_url": url})
}
