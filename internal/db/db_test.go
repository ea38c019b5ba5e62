package db

import (
	"os"
	"path/filepath"
	"testing"

	"karondoran-server/internal/config"
	"karondoran-server/internal/model"
)

// Verifies InitDB opens a sqlite file and creates every content table.
func TestInitDB_SQLiteTempFile(t *testing.T) {
	tmp := t.TempDir()
	cfgDir := filepath.Join(tmp, "cfg")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}

	dbFile := filepath.Join(tmp, "db", "test.db")
	t.Setenv("KARONDORAN_SERVER_MODE", "debug")
	t.Setenv("KARONDORAN_DATABASE_TYPE", "sqlite")
	t.Setenv("KARONDORAN_DATABASE_FILENAME", dbFile)

	config.InitConfig(cfgDir)
	InitDB()

	if DB == nil {
		t.Fatalf("expected DB to be initialized")
	}
	for _, m := range []any{&model.News{}, &model.Gallery{}, &model.Staff{}, &model.Page{}, &model.Setting{}, &model.AdminUser{}} {
		if !DB.Migrator().HasTable(m) {
			t.Fatalf("expected table for %T to exist", m)
		}
	}

	sqlDB, err := DB.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}
