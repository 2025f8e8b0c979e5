package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// GradeMap translates a processed-output grade id to the raw-input
	// grade it consumes. Loaded as "out:in" pairs, e.g. "5:1,6:1,7:2".
	GradeMap domain.GradeMap

	// RateLimit is the request rate in ulule/limiter formatted notation,
	// e.g. "100-M" for 100 requests per minute.
	RateLimit string

	// CORSAllowOrigins lists the frontend origins allowed to call the API.
	CORSAllowOrigins []string
}

// defaultGradeMap mirrors the factory's standing processing recipe.
const defaultGradeMap = "5:1,6:1,7:2"

// ParseGradeMap parses a comma-separated list of "output:input" grade pairs.
func ParseGradeMap(raw string) (domain.GradeMap, error) {
	gm := domain.GradeMap{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		out, in, found := strings.Cut(pair, ":")
		if !found || strings.TrimSpace(out) == "" || strings.TrimSpace(in) == "" {
			return nil, fmt.Errorf("invalid grade map pair %q", pair)
		}
		gm[strings.TrimSpace(out)] = strings.TrimSpace(in)
	}
	if len(gm) == 0 {
		return nil, fmt.Errorf("grade map is empty")
	}
	return gm, nil
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("GRADE_MAP", defaultGradeMap)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	gradeMapRaw := viper.GetString("GRADE_MAP")
	gradeMap, err := ParseGradeMap(gradeMapRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GRADE_MAP %q: %w", gradeMapRaw, err)
	}
	cfg.GradeMap = gradeMap

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	return cfg, nil
}
