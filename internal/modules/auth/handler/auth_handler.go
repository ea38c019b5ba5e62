package handler

import (
	"net/http"
	"time"

	moduledto "karondoran-server/internal/modules/auth/dto"
	"karondoran-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email dan password wajib diisi"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Pendaftaran gagal, silakan coba lagi")
		return
	}

	message := "Pendaftaran berhasil, akun Anda menunggu aktivasi administrator"
	if user.IsActive {
		message = "Pendaftaran berhasil, silakan masuk"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"data":    gin.H{"id": user.ID, "email": user.Email, "is_active": user.IsActive},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email dan password wajib diisi"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal masuk, silakan coba lagi")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Berhasil masuk",
		"data":    resp,
	})
}

// Logout POST /api/logout, behind JWTAuth.
func (h *Handler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	expiresAt, _ := c.Get("token_expires_at")
	if exp, ok := expiresAt.(time.Time); ok {
		h.authService.Logout(tokenID, exp)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Berhasil keluar"})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), c.GetString("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat akun")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}
