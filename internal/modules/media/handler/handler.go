package handler

import (
	"net/http"

	"karondoran-server/internal/modules/common/httpx"
	mediaservice "karondoran-server/internal/modules/media/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	mediaService *mediaservice.Service
}

func New(mediaService *mediaservice.Service) *Handler {
	return &Handler{mediaService: mediaService}
}

// Preview normalizes the uploaded image the same way a create or update
// would and returns the result without storing it.
func (h *Handler) Preview(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pilih file gambar terlebih dahulu"})
		return
	}

	resp, err := h.mediaService.Preview(c.Request.Context(), file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memproses gambar")
		return
	}
	c.JSON(http.StatusOK, resp)
}
