package config

import (
	"time"

	"github.com/tarekelbanna92/rental-egypt/utils"
)

// AppConfig carries the process-wide tunables. Limits are injected here
// instead of being hardcoded at use sites so tests can exercise boundary
// values.
type AppConfig struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration

	// DateFormat parses check_in/check_out form values.
	DateFormat string

	// Gallery upload limits: whole batch rejected above MaxUploadCount,
	// any single file above MaxUploadBytes.
	MaxUploadCount int
	MaxUploadBytes int64
	UploadDir      string

	// PageSize is the listing search page size.
	PageSize int
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Port:           utils.EnvOrDefault("PORT", "8080"),
		JWTSecret:      utils.EnvOrDefault("JWT_SECRET", ""),
		TokenTTL:       time.Duration(utils.EnvOrDefaultInt("TOKEN_TTL_HOURS", 72)) * time.Hour,
		DateFormat:     utils.EnvOrDefault("DATE_FORMAT", "2006-01-02"),
		MaxUploadCount: utils.EnvOrDefaultInt("MAX_UPLOAD_COUNT", 10),
		MaxUploadBytes: utils.EnvOrDefaultInt64("MAX_UPLOAD_BYTES", 5<<20),
		UploadDir:      utils.EnvOrDefault("UPLOAD_DIR", "uploads"),
		PageSize:       utils.EnvOrDefaultInt("PAGE_SIZE", 9),
	}
}
