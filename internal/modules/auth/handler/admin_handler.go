package handler

import (
	"net/http"

	"karondoran-server/internal/middleware"
	"karondoran-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

type activationRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat akun")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// SetActivation PATCH /api/admin/users/:id/activation
func (h *Handler) SetActivation(c *gin.Context) {
	var req activationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status aktivasi wajib diisi"})
		return
	}

	id := c.Param("id")
	user, err := h.authService.SetActive(c.Request.Context(), c.GetString("id"), id, *req.IsActive)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memperbarui akun")
		return
	}
	middleware.ClearUserStatusCache(id)

	message := "Akun dinonaktifkan"
	if user.IsActive {
		message = "Akun diaktifkan"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "data": user})
}
