package handler

import (
	"encoding/json"
	"net/http"
	"sort"

	"karondoran-server/internal/modules/common/httpx"
	moduledto "karondoran-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

// GetSettings GET /api/admin/settings returns the settings as one object;
// ?format=list returns the full rows with descriptions and categories.
func (h *Handler) GetSettings(c *gin.Context) {
	if c.Query("format") == "list" {
		settings, err := h.settingsService.AdminListSettings()
		if err != nil {
			httpx.WriteServiceError(c, err, "Gagal memuat pengaturan")
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": settings})
		return
	}

	settings, err := h.settingsService.GetAllAsObject()
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memuat pengaturan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings})
}

// UpdateSettings PATCH /api/admin/settings accepts either {"key": "value"}
// or [{"key": "...", "value": "..."}].
func (h *Handler) UpdateSettings(c *gin.Context) {
	items, ok := bindSettingItems(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format data tidak valid"})
		return
	}

	resp, err := h.settingsService.AdminUpdateSettings(items)
	if err != nil {
		httpx.WriteServiceError(c, err, "Gagal memperbarui pengaturan")
		return
	}

	status := http.StatusOK
	message := "Pengaturan berhasil diperbarui"
	if len(resp.Failed) > 0 {
		message = "Sebagian pengaturan gagal diperbarui"
		if len(resp.Updated) == 0 {
			status = http.StatusBadRequest
			message = "Pengaturan gagal diperbarui"
		}
	}
	c.JSON(status, gin.H{"message": message, "data": resp})
}

func bindSettingItems(c *gin.Context) ([]moduledto.UpdateSettingRequest, bool) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		return nil, false
	}

	var asObject map[string]string
	if err := json.Unmarshal(raw, &asObject); err == nil {
		keys := make([]string, 0, len(asObject))
		for k := range asObject {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]moduledto.UpdateSettingRequest, 0, len(keys))
		for _, k := range keys {
			items = append(items, moduledto.UpdateSettingRequest{Key: k, Value: asObject[k]})
		}
		return items, true
	}

	var asList []moduledto.UpdateSettingRequest
	if err := json.Unmarshal(raw, &asList); err != nil {
		return nil, false
	}
	return asList, true
}
