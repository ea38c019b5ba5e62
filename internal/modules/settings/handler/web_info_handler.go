package handler

import (
	"net/http"

	"karondoran-server/internal/config"

	"github.com/gin-gonic/gin"
)

// GetWebInfo GET /api/webinfo
func (h *Handler) GetWebInfo(c *gin.Context) {
	info := h.settingsService.WebInfo()
	cfg := config.Get()
	c.JSON(http.StatusOK, gin.H{
		"data":           info,
		"storage_prefix": cfg.Storage.PublicURLPrefix,
	})
}
