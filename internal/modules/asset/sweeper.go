package asset

import (
	"context"
	"fmt"
	"log"
	"time"

	"karondoran-server/internal/platform/blobstore"
)

// DefaultSweepGrace protects blobs uploaded moments ago whose record has not
// been linked yet.
const DefaultSweepGrace = 10 * time.Minute

// SweepTarget pairs a bucket with the references its records hold.
type SweepTarget struct {
	Bucket     string
	References func(ctx context.Context) ([]string, error)
}

type SweepReport struct {
	Bucket   string   `json:"bucket"`
	Scanned  int      `json:"scanned"`
	Orphaned []string `json:"orphaned"`
	Deleted  []string `json:"deleted"`
	Failed   []string `json:"failed"`
	DryRun   bool     `json:"dry_run"`
}

// Sweeper removes blobs no record references, recovering what best-effort
// deletions leaked.
type Sweeper struct {
	blobs   blobstore.Store
	buckets []bucketRefs
	grace   time.Duration
	now     func() time.Time
}

// bucketRefs collects every reference source that shares one bucket.
type bucketRefs struct {
	bucket  string
	sources []func(ctx context.Context) ([]string, error)
}

// NewSweeper groups targets by bucket, so kinds sharing a bucket protect each
// other's blobs. Reports keep the order buckets first appear in.
func NewSweeper(blobs blobstore.Store, grace time.Duration, targets ...SweepTarget) *Sweeper {
	if grace < 0 {
		grace = 0
	}
	var buckets []bucketRefs
	index := make(map[string]int, len(targets))
	for _, target := range targets {
		i, ok := index[target.Bucket]
		if !ok {
			i = len(buckets)
			index[target.Bucket] = i
			buckets = append(buckets, bucketRefs{bucket: target.Bucket})
		}
		buckets[i].sources = append(buckets[i].sources, target.References)
	}
	return &Sweeper{blobs: blobs, buckets: buckets, grace: grace, now: time.Now}
}

func (s *Sweeper) Sweep(ctx context.Context, dryRun bool) ([]SweepReport, error) {
	reports := make([]SweepReport, 0, len(s.buckets))
	for _, b := range s.buckets {
		report, err := s.sweepBucket(ctx, b, dryRun)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *Sweeper) sweepBucket(ctx context.Context, target bucketRefs, dryRun bool) (SweepReport, error) {
	report := SweepReport{
		Bucket:   target.bucket,
		DryRun:   dryRun,
		Orphaned: []string{},
		Deleted:  []string{},
		Failed:   []string{},
	}

	referenced := make(map[string]struct{})
	for _, source := range target.sources {
		refs, err := source(ctx)
		if err != nil {
			return report, fmt.Errorf("load references for %s: %w", target.bucket, err)
		}
		for _, ref := range refs {
			key, err := s.blobs.ResolvePath(target.bucket, ref)
			if err != nil {
				// a reference outside this bucket cannot protect any of its blobs
				continue
			}
			referenced[key] = struct{}{}
		}
	}

	objects, err := s.blobs.List(ctx, target.bucket)
	if err != nil {
		return report, err
	}
	report.Scanned = len(objects)

	cutoff := s.now().Add(-s.grace)
	for _, obj := range objects {
		if _, ok := referenced[obj.Key]; ok {
			continue
		}
		if obj.ModTime.After(cutoff) {
			continue
		}
		report.Orphaned = append(report.Orphaned, obj.Key)
		if dryRun {
			continue
		}
		if err := s.blobs.Delete(ctx, target.bucket, obj.Key); err != nil {
			log.Printf("⚠️ sweep: failed to delete %s/%s: %v", target.bucket, obj.Key, err)
			report.Failed = append(report.Failed, obj.Key)
			continue
		}
		sweptBlobs.WithLabelValues(target.bucket).Inc()
		report.Deleted = append(report.Deleted, obj.Key)
	}
	return report, nil
}
