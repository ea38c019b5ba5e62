package handler

import (
	"net/http"

	"karondoran-server/internal/modules/common/httpx"
	moduledto "karondoran-server/internal/modules/pages/dto"
	pageservice "karondoran-server/internal/modules/pages/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	pageService *pageservice.Service
}

func New(pageService *pageservice.Service) *Handler {
	return &Handler{pageService: pageService}
}

// GetBySlug GET /api/pages/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	page, err := h.pageService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat halaman")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": page})
}

func (h *Handler) List(c *gin.Context) {
	pages, err := h.pageService.List(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat halaman")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pages})
}

func (h *Handler) Get(c *gin.Context) {
	page, err := h.pageService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat halaman")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": page})
}

func (h *Handler) Create(c *gin.Context) {
	var req moduledto.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Judul dan slug wajib diisi"})
		return
	}

	page, err := h.pageService.Create(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal menambahkan halaman")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Halaman berhasil ditambahkan", "data": page})
}

func (h *Handler) Update(c *gin.Context) {
	var req moduledto.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid"})
		return
	}

	page, err := h.pageService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memperbarui halaman")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Halaman berhasil diperbarui", "data": page})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.pageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteServiceError(c, err, "Gagal menghapus halaman")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Halaman berhasil dihapus"})
}
