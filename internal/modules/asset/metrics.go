package asset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_uploads_total",
			Help: "Asset uploads by record kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	blobDeleteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_blob_delete_failures_total",
			Help: "Blob deletions that failed and left a leaked blob behind",
		},
		[]string{"kind"},
	)

	sweptBlobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_swept_blobs_total",
			Help: "Unreferenced blobs removed by the sweeper",
		},
		[]string{"bucket"},
	)
)
