package service

import (
	"context"
	"runtime"

	moduledto "karondoran-server/internal/modules/system/dto"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/utils"
)

const recentNewsLimit = 3

func (s *Service) Dashboard(ctx context.Context) (*moduledto.DashboardResponse, error) {
	var (
		resp moduledto.DashboardResponse
		err  error
	)

	counts := []struct {
		counter Counter
		dst     *int64
		message string
	}{
		{s.sources.News, &resp.NewsCount, "Gagal menghitung berita"},
		{s.sources.Gallery, &resp.GalleryCount, "Gagal menghitung galeri"},
		{s.sources.Pages, &resp.PageCount, "Gagal menghitung halaman"},
		{s.sources.Staff, &resp.StaffCount, "Gagal menghitung perangkat desa"},
	}
	for _, c := range counts {
		if *c.dst, err = c.counter.Count(ctx); err != nil {
			return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, c.message, err)
		}
	}

	if resp.StorageUsed, err = s.sources.Gallery.StorageUsed(ctx); err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal menghitung penyimpanan", err)
	}
	resp.StorageReadable = utils.ReadableFileSize(resp.StorageUsed)

	if resp.RecentNews, err = s.sources.News.Recent(ctx, recentNewsLimit); err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat berita terbaru", err)
	}

	resp.SystemInfo = moduledto.SystemInfoResponse{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}
	return &resp, nil
}
