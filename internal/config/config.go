package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

const insecureDefaultJWTSecret = "karondoran_secret"

var (
	// appConfig holds a *Config so reads never take a lock.
	appConfig atomic.Value
	configMu  sync.Mutex
	configDir = "config"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// StorageConfig describes the blob store. Each bucket is a directory under Root
// and is served at PublicURLPrefix + bucket + "/".
type StorageConfig struct {
	Root            string `mapstructure:"root"`
	PublicURLPrefix string `mapstructure:"public_url_prefix"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
	NewsBucket      string `mapstructure:"news_bucket"`
	GalleryBucket   string `mapstructure:"gallery_bucket"`
	StaffBucket     string `mapstructure:"staff_bucket"`
}

// UploadConfig controls when an uploaded image goes through the normalizer.
type UploadConfig struct {
	CompressThresholdBytes int64 `mapstructure:"compress_threshold_bytes"`
	TargetMaxBytes         int64 `mapstructure:"target_max_bytes"`
	MaxDimension           int   `mapstructure:"max_dimension"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Get returns a snapshot of the current configuration.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
	log.Println("✅ Configuration loaded")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/karondoran.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "karondoran")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("storage.root", "uploads")
	v.SetDefault("storage.public_url_prefix", "/storage/")
	v.SetDefault("storage.public_base_url", "")
	v.SetDefault("storage.news_bucket", "news")
	v.SetDefault("storage.gallery_bucket", "gallery")
	v.SetDefault("storage.staff_bucket", "staff_photos")
	v.SetDefault("upload.compress_threshold_bytes", 1024*1024)
	v.SetDefault("upload.target_max_bytes", 1024*1024)
	v.SetDefault("upload.max_dimension", 1920)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "karondoran")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  No config file found, using environment variables and defaults")
		} else {
			log.Fatalf("❌ Failed to read config file: %v", err)
		}
	}

	// Every key can be overridden from the environment with the KARONDORAN_ prefix,
	// e.g. server.port -> KARONDORAN_SERVER_PORT.
	v.SetEnvPrefix("KARONDORAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ Failed to parse configuration: %v", err)
		return
	}

	if tempConfig.Server.Mode == "release" {
		if tempConfig.JWT.Secret == "" || tempConfig.JWT.Secret == insecureDefaultJWTSecret {
			log.Println("❌ [SECURITY] release mode requires a non-default JWT secret")
		}
	} else if tempConfig.JWT.Secret == "" {
		log.Println("⚠️ [DEV] JWT secret not set, falling back to an insecure development secret")
		tempConfig.JWT.Secret = insecureDefaultJWTSecret
	}

	if !strings.HasSuffix(tempConfig.Storage.PublicURLPrefix, "/") {
		tempConfig.Storage.PublicURLPrefix += "/"
	}

	appConfig.Store(&tempConfig)
}

func enforceJWTSecretSafety() {
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.JWT.Secret == "" || curr.JWT.Secret == insecureDefaultJWTSecret {
			log.Fatal("❌ [SECURITY] release mode requires a non-default JWT secret.\nSet KARONDORAN_JWT_SECRET or jwt.secret in the config file")
		}
	}
}

// Buckets lists every bucket an asset-owning record kind writes to.
func (s StorageConfig) Buckets() []string {
	return []string{s.NewsBucket, s.GalleryBucket, s.StaffBucket}
}
