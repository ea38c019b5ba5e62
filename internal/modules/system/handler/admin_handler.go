package handler

import (
	"net/http"
	"strconv"

	"karondoran-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.systemService.Dashboard(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat dasbor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// SweepStorage POST /api/admin/storage/sweep?dry_run=true
func (h *Handler) SweepStorage(c *gin.Context) {
	dryRun := false
	if raw := c.Query("dry_run"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dry_run harus true atau false"})
			return
		}
		dryRun = parsed
	}

	reports, err := h.systemService.SweepStorage(c.Request.Context(), dryRun)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal membersihkan penyimpanan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reports})
}
