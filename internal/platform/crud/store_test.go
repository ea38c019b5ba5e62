package crud

import (
	"context"
	"errors"
	"testing"
	"time"

	"karondoran-server/internal/model"
	"karondoran-server/internal/testutils"

	"gorm.io/gorm"
)

func seedNews(t *testing.T, s *Store[model.News], titles ...string) []model.News {
	t.Helper()
	var out []model.News
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range titles {
		n := model.News{Title: title, Category: "Pendidikan", Status: "Published", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := s.Create(context.Background(), &n); err != nil {
			t.Fatalf("create: %v", err)
		}
		out = append(out, n)
	}
	return out
}

// Verifies create assigns ids and GetAll honours the requested order.
func TestStore_CreateAndGetAllOrdered(t *testing.T) {
	gdb := testutils.SetupDB(t)
	s := New[model.News](gdb, "created_at", "title")
	seeded := seedNews(t, s, "b", "a", "c")

	if seeded[0].ID == "" {
		t.Fatalf("expected id to be assigned")
	}

	desc, err := s.GetAll(context.Background(), "created_at", false)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(desc) != 3 || desc[0].Title != "c" || desc[2].Title != "b" {
		t.Fatalf("unexpected order: %+v", desc)
	}

	asc, _ := s.GetAll(context.Background(), "title", true)
	if asc[0].Title != "a" || asc[2].Title != "c" {
		t.Fatalf("unexpected title order: %+v", asc)
	}
}

// Verifies unknown order fields are refused.
func TestStore_GetAllRejectsUnknownOrderField(t *testing.T) {
	gdb := testutils.SetupDB(t)
	s := New[model.News](gdb, "created_at")

	_, err := s.GetAll(context.Background(), "title; DROP TABLE news", true)
	if !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

// Verifies scopes filter GetAll and Count.
func TestStore_ScopesFilter(t *testing.T) {
	gdb := testutils.SetupDB(t)
	s := New[model.News](gdb, "created_at")
	seedNews(t, s, "one", "two")
	draft := model.News{Title: "draft", Status: "Draft"}
	_ = s.Create(context.Background(), &draft)

	published := func(db *gorm.DB) *gorm.DB { return db.Where("status = ?", "Published") }
	list, err := s.GetAll(context.Background(), "created_at", false, published)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 published, got %d err=%v", len(list), err)
	}
	n, _ := s.Count(context.Background())
	if n != 3 {
		t.Fatalf("expected 3 total, got %d", n)
	}
}

// Verifies partial updates touch only the given columns.
func TestStore_UpdatePartial(t *testing.T) {
	gdb := testutils.SetupDB(t)
	s := New[model.News](gdb)
	n := seedNews(t, s, "judul")[0]

	updated, err := s.Update(context.Background(), n.ID, map[string]any{"title": "judul baru"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "judul baru" || updated.Category != "Pendidikan" {
		t.Fatalf("unexpected record: %+v", updated)
	}

	if _, err := s.Update(context.Background(), "missing", map[string]any{"title": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Verifies lookups and deletes of missing records report ErrNotFound.
func TestStore_GetByIDAndDelete(t *testing.T) {
	gdb := testutils.SetupDB(t)
	s := New[model.News](gdb)
	n := seedNews(t, s, "hapus")[0]

	got, err := s.GetByID(context.Background(), n.ID)
	if err != nil || got.Title != "hapus" {
		t.Fatalf("GetByID: %+v err=%v", got, err)
	}
	if err := s.Delete(context.Background(), n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.GetByID(context.Background(), n.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(context.Background(), n.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

// Verifies Pluck skips empty references.
func TestStore_Pluck(t *testing.T) {
	gdb := testutils.SetupDB(t)
	s := New[model.Gallery](gdb)
	for _, url := range []string{"/storage/gallery/a.jpg", "", "/storage/gallery/b.jpg"} {
		g := model.Gallery{Title: "x", ImageURL: url}
		_ = s.Create(context.Background(), &g)
	}

	refs, err := s.Pluck(context.Background(), "image_url")
	if err != nil {
		t.Fatalf("Pluck: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %v", refs)
	}
}
