package dto

import "karondoran-server/internal/model"

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type DashboardResponse struct {
	NewsCount       int64              `json:"news_count"`
	GalleryCount    int64              `json:"gallery_count"`
	PageCount       int64              `json:"page_count"`
	StaffCount      int64              `json:"staff_count"`
	StorageUsed     int64              `json:"storage_used"`
	StorageReadable string             `json:"storage_used_readable"`
	RecentNews      []model.News       `json:"recent_news"`
	SystemInfo      SystemInfoResponse `json:"system_info"`
}
