package handler

import (
	"net/http"

	"karondoran-server/internal/modules/common/httpx"
	moduledto "karondoran-server/internal/modules/news/dto"

	"github.com/gin-gonic/gin"
)

// ListPublished GET /api/news?category=
func (h *Handler) ListPublished(c *gin.Context) {
	var req moduledto.ListNewsRequest
	_ = c.ShouldBindQuery(&req)

	items, err := h.newsService.ListPublished(c.Request.Context(), req.Category)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetPublished GET /api/news/:id
func (h *Handler) GetPublished(c *gin.Context) {
	news, err := h.newsService.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": news})
}
