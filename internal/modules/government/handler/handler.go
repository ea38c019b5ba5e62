package handler

import (
	"net/http"

	"karondoran-server/internal/modules/common/httpx"
	moduledto "karondoran-server/internal/modules/government/dto"
	governmentservice "karondoran-server/internal/modules/government/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	staffService *governmentservice.Service
}

func New(staffService *governmentservice.Service) *Handler {
	return &Handler{staffService: staffService}
}

// Structure GET /api/government
func (h *Handler) Structure(c *gin.Context) {
	groups, err := h.staffService.Structure(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat struktur pemerintahan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": groups})
}

func (h *Handler) List(c *gin.Context) {
	staff, err := h.staffService.List(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat perangkat desa")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": staff})
}

func (h *Handler) Get(c *gin.Context) {
	staff, err := h.staffService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat perangkat desa")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": staff})
}

func (h *Handler) Create(c *gin.Context) {
	var req moduledto.CreateStaffRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nama, jabatan dan level wajib diisi"})
		return
	}
	file, err := httpx.OptionalFormFile(c, "photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membaca file yang diunggah"})
		return
	}

	result, err := h.staffService.Create(c.Request.Context(), req, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal menambahkan perangkat desa")
		return
	}
	httpx.WriteResult(c, http.StatusCreated, "Perangkat desa berhasil ditambahkan", result.Record, result.Warnings)
}

func (h *Handler) Update(c *gin.Context) {
	var req moduledto.UpdateStaffRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid"})
		return
	}
	file, err := httpx.OptionalFormFile(c, "photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membaca file yang diunggah"})
		return
	}

	result, err := h.staffService.Update(c.Request.Context(), c.Param("id"), req, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memperbarui perangkat desa")
		return
	}
	httpx.WriteResult(c, http.StatusOK, "Perangkat desa berhasil diperbarui", result.Record, result.Warnings)
}

func (h *Handler) Delete(c *gin.Context) {
	result, err := h.staffService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal menghapus perangkat desa")
		return
	}
	httpx.WriteResult(c, http.StatusOK, "Perangkat desa berhasil dihapus", gin.H{"id": result.Record.ID}, result.Warnings)
}
