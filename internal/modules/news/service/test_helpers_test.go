package service

import (
	"os"
	"path/filepath"
	"testing"

	"karondoran-server/internal/config"
	mediaservice "karondoran-server/internal/modules/media/service"
	"karondoran-server/internal/modules/news/repo"
	settingsrepo "karondoran-server/internal/modules/settings/repo"
	"karondoran-server/internal/platform/blobstore"
	"karondoran-server/internal/platform/imaging"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/testutils"
)

const testBucket = "news"

type testEnv struct {
	service *Service
	blobs   *blobstore.FilesystemStore
}

func setupTestService(t *testing.T) *testEnv {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	appService.ClearCache()

	blobs, err := blobstore.NewFilesystemStore(t.TempDir(), "/storage/", "", testBucket)
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}
	media := mediaservice.New(appService, imaging.New(), config.UploadConfig{})
	return &testEnv{
		service: New(appService, repo.NewNewsRepository(gdb), media, blobs, testBucket),
		blobs:   blobs,
	}
}

// blobExists reports whether the blob behind ref is on disk.
func (e *testEnv) blobExists(t *testing.T, ref string) bool {
	t.Helper()
	key, err := e.blobs.ResolvePath(testBucket, ref)
	if err != nil {
		t.Fatalf("resolve %q: %v", ref, err)
	}
	dir, _ := e.blobs.BucketDir(testBucket)
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	return err == nil
}
