package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"karondoran-server/internal/config"
	"karondoran-server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Models lists every table the server owns, in migration order.
func Models() []any {
	return []any{
		&model.Setting{},
		&model.AdminUser{},
		&model.News{},
		&model.Gallery{},
		&model.Staff{},
		&model.Page{},
	}
}

func dialectorFor(cfg config.DatabaseConfig) gorm.Dialector {
	switch cfg.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Name,
		)
		if cfg.SSL {
			dsn += "&tls=true"
		}
		return mysql.Open(dsn)
	case "postgres":
		sslMode := "disable"
		if cfg.SSL {
			sslMode = "require"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Makassar",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.Port,
			sslMode,
		)
		return postgres.Open(dsn)
	default:
		dbDir := filepath.Dir(cfg.Filename)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			log.Fatalf("❌ Cannot create database directory '%s': %v", dbDir, err)
		}

		// WAL plus a busy timeout keeps concurrent readers off the writer's back.
		dsn := cfg.Filename + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
		return sqlite.Open(dsn)
	}
}

func InitDB() {
	var err error
	cfg := config.Get()

	DB, err = gorm.Open(dialectorFor(cfg.Database), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Database connection failed: ", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("❌ Cannot obtain sql.DB: ", err)
	}

	if cfg.Database.Type == "mysql" || cfg.Database.Type == "postgres" {
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetMaxIdleConns(10)
	} else {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := DB.AutoMigrate(Models()...); err != nil {
		log.Fatal("❌ Database migration failed: ", err)
	}

	log.Printf("✅ Database (%s) connected, schema migrated", cfg.Database.Type)
}
