package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"karondoran-server/internal/model"
	"karondoran-server/internal/modules/asset"
	"karondoran-server/internal/platform/blobstore"
	platformservice "karondoran-server/internal/platform/service"
)

type fixedCounter struct {
	n   int64
	err error
}

func (f fixedCounter) Count(context.Context) (int64, error) { return f.n, f.err }

type fakeNews struct {
	fixedCounter
	recent []model.News
}

func (f fakeNews) Recent(_ context.Context, limit int) ([]model.News, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeGallery struct {
	fixedCounter
	used int64
}

func (f fakeGallery) StorageUsed(context.Context) (int64, error) { return f.used, nil }

func testSources() Sources {
	return Sources{
		News: fakeNews{
			fixedCounter: fixedCounter{n: 5},
			recent:       []model.News{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}},
		},
		Gallery: fakeGallery{fixedCounter: fixedCounter{n: 7}, used: 3 * 1024 * 1024},
		Pages:   fixedCounter{n: 2},
		Staff:   fixedCounter{n: 9},
	}
}

func TestDashboard_CountsAndRecent(t *testing.T) {
	s := New(nil, testSources(), nil)

	resp, err := s.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if resp.NewsCount != 5 || resp.GalleryCount != 7 || resp.PageCount != 2 || resp.StaffCount != 9 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
	if len(resp.RecentNews) != 3 || resp.RecentNews[0].Title != "a" {
		t.Fatalf("expected the 3 most recent news, got %+v", resp.RecentNews)
	}
	if resp.StorageReadable != "3 MB" {
		t.Fatalf("unexpected readable size %q", resp.StorageReadable)
	}
}

func TestDashboard_CountFailure(t *testing.T) {
	sources := testSources()
	sources.Pages = fixedCounter{err: errors.New("db down")}
	s := New(nil, sources, nil)

	_, err := s.Dashboard(context.Background())
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok || serviceErr.Code != platformservice.ErrorCodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

// Verifies a dry run reports orphans and a real sweep removes only them.
func TestSweepStorage(t *testing.T) {
	ctx := context.Background()
	blobs, err := blobstore.NewFilesystemStore(t.TempDir(), "/storage/", "", "news")
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}
	keep, err := blobs.Put(ctx, "news", "keep.jpg", bytes.NewReader([]byte("k")), blobstore.PutOptions{})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := blobs.Put(ctx, "news", "orphan.jpg", bytes.NewReader([]byte("o")), blobstore.PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	keepURL := blobs.PublicURL("news", keep)

	sweeper := asset.NewSweeper(blobs, 0, asset.SweepTarget{
		Bucket:     "news",
		References: func(context.Context) ([]string, error) { return []string{keepURL}, nil },
	})
	s := New(nil, testSources(), sweeper)

	// the grace period is zero; make sure both blobs are strictly older than now
	time.Sleep(10 * time.Millisecond)

	reports, err := s.SweepStorage(ctx, true)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if len(reports) != 1 || len(reports[0].Orphaned) != 1 || len(reports[0].Deleted) != 0 {
		t.Fatalf("unexpected dry run report: %+v", reports)
	}

	reports, err = s.SweepStorage(ctx, false)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(reports[0].Deleted) != 1 || reports[0].Deleted[0] != "orphan.jpg" {
		t.Fatalf("unexpected sweep report: %+v", reports[0])
	}

	objects, err := blobs.List(ctx, "news")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(objects) != 1 || objects[0].Key != keep {
		t.Fatalf("expected only the referenced blob to remain, got %+v", objects)
	}
}

func TestSweepStorage_Unavailable(t *testing.T) {
	s := New(nil, testSources(), nil)
	if _, err := s.SweepStorage(context.Background(), true); err == nil {
		t.Fatalf("expected an error without a sweeper")
	}
}
