package handler

import (
	"net/http"

	"karondoran-server/internal/modules/common/httpx"
	moduledto "karondoran-server/internal/modules/gallery/dto"
	galleryservice "karondoran-server/internal/modules/gallery/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	galleryService *galleryservice.Service
}

func New(galleryService *galleryservice.Service) *Handler {
	return &Handler{galleryService: galleryService}
}

// List serves both GET /api/gallery and the admin list.
func (h *Handler) List(c *gin.Context) {
	var req moduledto.ListGalleryRequest
	_ = c.ShouldBindQuery(&req)

	items, err := h.galleryService.List(c.Request.Context(), req.Category)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat galeri")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *Handler) Get(c *gin.Context) {
	item, err := h.galleryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat galeri")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (h *Handler) Create(c *gin.Context) {
	var req moduledto.CreateGalleryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Judul dan kategori wajib diisi"})
		return
	}
	file, err := httpx.OptionalFormFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membaca file yang diunggah"})
		return
	}

	result, err := h.galleryService.Create(c.Request.Context(), req, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal menambahkan foto")
		return
	}
	httpx.WriteResult(c, http.StatusCreated, "Foto berhasil ditambahkan", result.Record, result.Warnings)
}

func (h *Handler) Update(c *gin.Context) {
	var req moduledto.UpdateGalleryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid"})
		return
	}
	file, err := httpx.OptionalFormFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membaca file yang diunggah"})
		return
	}

	result, err := h.galleryService.Update(c.Request.Context(), c.Param("id"), req, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memperbarui foto")
		return
	}
	httpx.WriteResult(c, http.StatusOK, "Foto berhasil diperbarui", result.Record, result.Warnings)
}

func (h *Handler) Delete(c *gin.Context) {
	result, err := h.galleryService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal menghapus foto")
		return
	}
	httpx.WriteResult(c, http.StatusOK, "Foto berhasil dihapus", gin.H{"id": result.Record.ID}, result.Warnings)
}
