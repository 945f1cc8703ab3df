package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration

	// Row paging for list_endpoints and extract_section.
	RowLimit int
	MaxLimit int

	// MaxInlineSize bounds inline spec content, in bytes.
	MaxInlineSize int64

	// Loader and exporter defaults.
	Lenient  bool
	ExcelBOM bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASTABLES_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:  envBool("OASTABLES_CACHE_ENABLED", true),
		CacheMaxSize:  envInt("OASTABLES_CACHE_MAX_SIZE", 10),
		CacheTTL:      envDuration("OASTABLES_CACHE_TTL", 15*time.Minute),
		RowLimit:      envInt("OASTABLES_ROW_LIMIT", 100),
		MaxLimit:      envInt("OASTABLES_MAX_LIMIT", 1000),
		MaxInlineSize: int64(envInt("OASTABLES_MAX_INLINE_SIZE", 10*1024*1024)),
		Lenient:       envBool("OASTABLES_LENIENT", false),
		ExcelBOM:      envBool("OASTABLES_EXCEL_BOM", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
