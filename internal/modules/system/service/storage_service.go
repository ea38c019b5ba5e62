package service

import (
	"context"
	"log"

	"karondoran-server/internal/modules/asset"
	platformservice "karondoran-server/internal/platform/service"
)

// SweepStorage removes blobs no record references. A dry run only reports
// what would be removed.
func (s *Service) SweepStorage(ctx context.Context, dryRun bool) ([]asset.SweepReport, error) {
	if s.sweeper == nil {
		return nil, platformservice.NewInternalError("Pembersihan penyimpanan tidak tersedia")
	}
	reports, err := s.sweeper.Sweep(ctx, dryRun)
	if err != nil {
		return reports, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal membersihkan penyimpanan", err)
	}
	for _, r := range reports {
		log.Printf("🧹 Sweep %s: scanned=%d orphaned=%d deleted=%d failed=%d dry_run=%t",
			r.Bucket, r.Scanned, len(r.Orphaned), len(r.Deleted), len(r.Failed), r.DryRun)
	}
	return reports, nil
}
