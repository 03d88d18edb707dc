package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceCSV      = "csv"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
	// requests per second per client, 0 disables the limiter
	RateLimit float64
}

type CatalogConfig struct {
	Source string
	Path   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

type RecommendConfig struct {
	// optional YAML scoring policy, overlaid on the built-in defaults
	PolicyPath string
	// env overrides of the policy; empty / zero keeps the policy value
	Strategy string
	TopK     int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	rateLimit, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil || rateLimit < 0 {
		return nil, errors.New("invalid RATE_LIMIT_RPS")
	}

	topK := 0
	if raw := os.Getenv("RECOMMEND_TOP_K"); raw != "" {
		topK, err = strconv.Atoi(raw)
		if err != nil || topK <= 0 {
			return nil, errors.New("invalid RECOMMEND_TOP_K")
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Phone Finder"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:      getEnv("PORT", "8080"),
			RateLimit: rateLimit,
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", CatalogSourceCSV),
			Path:   getEnv("CATALOG_PATH", "data/data.csv"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "phone_finder"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Recommend: RecommendConfig{
			PolicyPath: getEnv("SCORING_POLICY_PATH", ""),
			Strategy:   getEnv("RECOMMEND_STRATEGY", ""),
			TopK:       topK,
		},
	}

	switch cfg.Catalog.Source {
	case CatalogSourceCSV:
		if cfg.Catalog.Path == "" {
			return nil, errors.New("missing catalog path")
		}
	case CatalogSourcePostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
