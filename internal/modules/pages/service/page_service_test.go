package service

import (
	"context"
	"testing"

	moduledto "karondoran-server/internal/modules/pages/dto"
	"karondoran-server/internal/modules/pages/repo"
	settingsrepo "karondoran-server/internal/modules/settings/repo"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/testutils"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	return New(appService, repo.NewPageRepository(gdb))
}

func assertCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok || serviceErr.Code != code {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

// Verifies pages are listed by title and fetched by slug.
func TestListAndGetBySlug(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()
	for _, req := range []moduledto.CreatePageRequest{
		{Title: "Visi Misi", Slug: "visi-misi", Content: "..."},
		{Title: "Sejarah Desa", Slug: "sejarah", Content: "..."},
		{Title: "Geografis", Slug: "geografis"},
	} {
		if _, err := s.Create(ctx, req); err != nil {
			t.Fatalf("Create %s: %v", req.Slug, err)
		}
	}

	pages, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pages) != 3 || pages[0].Title != "Geografis" || pages[2].Title != "Visi Misi" {
		t.Fatalf("unexpected order: %+v", pages)
	}

	page, err := s.GetBySlug(ctx, "Sejarah")
	if err != nil || page.Title != "Sejarah Desa" {
		t.Fatalf("GetBySlug: %v %+v", err, page)
	}

	_, err = s.GetBySlug(ctx, "tidak-ada")
	assertCode(t, err, platformservice.ErrorCodeNotFound)
}

// Verifies slugs are validated and unique.
func TestCreate_SlugRules(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, moduledto.CreatePageRequest{Title: "A", Slug: "bukan slug"})
	assertCode(t, err, platformservice.ErrorCodeValidation)

	if _, err := s.Create(ctx, moduledto.CreatePageRequest{Title: "A", Slug: "profil"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = s.Create(ctx, moduledto.CreatePageRequest{Title: "B", Slug: "profil"})
	assertCode(t, err, platformservice.ErrorCodeConflict)
}

// Verifies update keeps its own slug and rejects another page's.
func TestUpdate_Slug(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()
	a, _ := s.Create(ctx, moduledto.CreatePageRequest{Title: "A", Slug: "a"})
	if _, err := s.Create(ctx, moduledto.CreatePageRequest{Title: "B", Slug: "b"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	same := "a"
	title := "A2"
	updated, err := s.Update(ctx, a.ID, moduledto.UpdatePageRequest{Slug: &same, Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "A2" {
		t.Fatalf("expected title update, got %q", updated.Title)
	}

	other := "b"
	_, err = s.Update(ctx, a.ID, moduledto.UpdatePageRequest{Slug: &other})
	assertCode(t, err, platformservice.ErrorCodeConflict)
}

func TestDelete_Missing(t *testing.T) {
	s := setupTestService(t)
	assertCode(t, s.Delete(context.Background(), "missing"), platformservice.ErrorCodeNotFound)
}
