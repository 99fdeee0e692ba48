package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the server needs at startup.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	SiteBaseURL   string

	UploadDir     string
	UploadURLPath string

	AdminUserName string
	AdminPassword string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
	S3Bucket    string
	S3UseSSL    bool
}

// Load reads the application config from the environment, with a .env
// file honored when present and safe defaults for anything missing.
func Load() AppConfig {
	_ = godotenv.Load()

	port := envOr("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	redisDB := 0
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			redisDB = parsed
		}
	}

	useSSL := true
	if raw := strings.TrimSpace(os.Getenv("S3_USE_SSL")); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			useSSL = parsed
		}
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  envOr("DATABASE_PATH", "padauklog.db"),
		SessionSecret: envOr("SESSION_SECRET", "padauklog-dev-secret"),
		GinMode:       envOr("GIN_MODE", "release"),
		SiteBaseURL:   envOr("SITE_BASE_URL", "https://padauklog.com"),

		UploadDir:     envOr("UPLOAD_DIR", "web/static/uploads"),
		UploadURLPath: envOr("UPLOAD_URL_PATH", "/static/uploads"),

		AdminUserName: strings.TrimSpace(os.Getenv("ADMIN_USER_NAME")),
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),

		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		RedisDB:       redisDB,

		S3Region:    envOr("S3_REGION", "ap-southeast-1"),
		S3AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		S3Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3Bucket:    strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3UseSSL:    useSSL,
	}
}

// S3Enabled reports whether object storage is configured; uploads fall
// back to the local disk otherwise.
func (c AppConfig) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// RedisEnabled reports whether a dedup store is configured for view
// counting.
func (c AppConfig) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
