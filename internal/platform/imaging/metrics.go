package imaging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var normalizeAttempts = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "image_normalize_attempts",
		Help:    "Number of JPEG encode attempts per normalized image",
		Buckets: prometheus.LinearBuckets(1, 1, MaxAttempts),
	},
)
