package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dgallion1/evaldash/internal/ingest"
)

type Config struct {
	Port string

	// Results file
	ResultsPath          string
	MaxReportBytes       int64
	ReloadInterval       time.Duration
	PDFFallbackPdftotext bool

	// Dashboard
	Title  string
	APIKey string

	// Chart rendering
	ChartWidth  int
	ChartHeight int
}

func Load() Config {
	// A local .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8091"),

		ResultsPath:          envOr("RESULTS_PATH", "model_evaluation_results.txt"),
		MaxReportBytes:       envInt64("MAX_REPORT_BYTES", 10485760), // 10MB
		ReloadInterval:       envDuration("RELOAD_INTERVAL", 5*time.Second),
		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		Title:  envOr("DASHBOARD_TITLE", "Threat Detection Model Results"),
		APIKey: os.Getenv("DASHBOARD_API_KEY"),

		ChartWidth:  envInt("CHART_WIDTH", 720),
		ChartHeight: envInt("CHART_HEIGHT", 480),
	}

	if cfg.MaxReportBytes <= 0 {
		cfg.MaxReportBytes = 10485760
	}
	if cfg.ReloadInterval <= 0 {
		cfg.ReloadInterval = 5 * time.Second
	}
	if cfg.ChartWidth <= 0 {
		cfg.ChartWidth = 720
	}
	if cfg.ChartHeight <= 0 {
		cfg.ChartHeight = 480
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ResultsPath == "" {
		return fmt.Errorf("RESULTS_PATH is required")
	}
	if !ingest.IsSupportedExtension(c.ResultsPath) {
		return fmt.Errorf("unsupported results file format: %s", c.ResultsPath)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
