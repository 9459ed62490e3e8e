package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"idea-feasibility-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigin  []string
	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
	LLMTimeoutSecs   int
	LLMLogRawMax     int
	DatabaseURL      string
	ArchiveStoreType string
	LocalStoreDir    string
	AWSRegion        string
	S3Bucket         string
	S3Prefix         string
	SSEKMSKeyID      string
	RateLimitRPS     float64
	RateLimitBurst   int
	TrustedProxies   []string
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"ENV":                   "dev",
	"CORS_ALLOW_ORIGINS":    "http://localhost:5173",
	"LLM_BASE_URL":          "https://api.openai.com/v1",
	"LLM_MODEL":             "gpt-4o-mini",
	"LLM_TIMEOUT_SECONDS":   120,
	"LLM_LOG_RAW_MAX_BYTES": 4096,
	"ARCHIVE_STORE":         "none",
	"LOCAL_STORE_DIR":       "./data",
	"RATE_LIMIT_RPS":        1.0,
	"RATE_LIMIT_BURST":      5,
}

// Load reads configuration from defaults, an optional .env file and the environment,
// in increasing order of precedence.
func Load() Config {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path.
func LoadFile(envFile string) Config {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			telemetry.Error("config.env_file_unreadable", map[string]any{"path": envFile, "err": err.Error()})
		}
	}
	v.AutomaticEnv()

	apiKey := strings.TrimSpace(v.GetString("LLM_API_KEY"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(v.GetString("OPENAI_API_KEY"))
	}

	cfg := Config{
		Port:             v.GetString("PORT"),
		Env:              normalizeEnv(v.GetString("ENV")),
		CORSAllowOrigin:  splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		LLMBaseURL:       strings.TrimRight(strings.TrimSpace(v.GetString("LLM_BASE_URL")), "/"),
		LLMAPIKey:        apiKey,
		LLMModel:         strings.TrimSpace(v.GetString("LLM_MODEL")),
		LLMTimeoutSecs:   positiveOr(v.GetInt("LLM_TIMEOUT_SECONDS"), 120),
		LLMLogRawMax:     v.GetInt("LLM_LOG_RAW_MAX_BYTES"),
		DatabaseURL:      strings.TrimSpace(v.GetString("DATABASE_URL")),
		ArchiveStoreType: normalizeStoreType(v.GetString("ARCHIVE_STORE")),
		LocalStoreDir:    v.GetString("LOCAL_STORE_DIR"),
		AWSRegion:        v.GetString("AWS_REGION"),
		S3Bucket:         v.GetString("S3_BUCKET"),
		S3Prefix:         v.GetString("S3_PREFIX"),
		SSEKMSKeyID:      v.GetString("SSE_KMS_KEY_ID"),
		RateLimitRPS:     v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:   v.GetInt("RATE_LIMIT_BURST"),
		TrustedProxies:   splitAndTrim(v.GetString("TRUSTED_PROXIES")),
	}

	if cfg.Env == "production" && cfg.DatabaseURL == "" {
		telemetry.Error("config.database_url_missing", map[string]any{"env": cfg.Env})
	}
	if cfg.LLMAPIKey == "" {
		telemetry.Info("config.llm_api_key_missing", map[string]any{"effect": "remote analysis disabled, fallback only"})
	}
	return cfg
}

// ExposeStack reports whether error payloads may carry diagnostic stacks.
func (c Config) ExposeStack() bool {
	return c.Env == "dev" || c.Env == "local"
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	case "local":
		return "local"
	default:
		return "none"
	}
}
