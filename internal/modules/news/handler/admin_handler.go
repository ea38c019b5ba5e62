package handler

import (
	"net/http"

	"karondoran-server/internal/modules/common/httpx"
	moduledto "karondoran-server/internal/modules/news/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminList(c *gin.Context) {
	var req moduledto.ListNewsRequest
	_ = c.ShouldBindQuery(&req)

	items, err := h.newsService.List(c.Request.Context(), req.Category)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *Handler) AdminGet(c *gin.Context) {
	news, err := h.newsService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": news})
}

func (h *Handler) Create(c *gin.Context) {
	var req moduledto.CreateNewsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Judul, kategori dan isi berita wajib diisi"})
		return
	}
	file, err := httpx.OptionalFormFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membaca file yang diunggah"})
		return
	}

	result, err := h.newsService.Create(c.Request.Context(), req, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal menambahkan berita")
		return
	}
	httpx.WriteResult(c, http.StatusCreated, "Berita berhasil ditambahkan", result.Record, result.Warnings)
}

func (h *Handler) Update(c *gin.Context) {
	var req moduledto.UpdateNewsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid"})
		return
	}
	file, err := httpx.OptionalFormFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membaca file yang diunggah"})
		return
	}

	result, err := h.newsService.Update(c.Request.Context(), c.Param("id"), req, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memperbarui berita")
		return
	}
	httpx.WriteResult(c, http.StatusOK, "Berita berhasil diperbarui", result.Record, result.Warnings)
}

func (h *Handler) Delete(c *gin.Context) {
	result, err := h.newsService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal menghapus berita")
		return
	}
	httpx.WriteResult(c, http.StatusOK, "Berita berhasil dihapus", gin.H{"id": result.Record.ID}, result.Warnings)
}
