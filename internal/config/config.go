package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for MedForge
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Port        int    `yaml:"port"`
	Environment string `yaml:"environment"`
}

// GenerationConfig holds dataset generation configuration
type GenerationConfig struct {
	Seed          int64   `yaml:"seed"`
	PatientCount  int     `yaml:"patient_count"`
	StartDate     string  `yaml:"start_date"`
	EndDate       string  `yaml:"end_date"`
	RejectionRate float64 `yaml:"rejection_rate"`
	AberrantRate  float64 `yaml:"aberrant_rate"`
}

// OutputConfig holds persistence configuration
type OutputConfig struct {
	CSVDir     string `yaml:"csv_dir"`
	SQLitePath string `yaml:"sqlite_path"`
	CSVEnabled bool   `yaml:"csv_enabled"`
	DBEnabled  bool   `yaml:"db_enabled"`
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Enabled:     getEnvBool("SERVER_ENABLED", false),
			Port:        getEnvInt("PORT", 3010),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Generation: GenerationConfig{
			Seed:          getEnvInt64("GENERATION_SEED", 42),
			PatientCount:  getEnvInt("PATIENT_COUNT", 250),
			StartDate:     getEnv("START_DATE", "2024-01-01"),
			EndDate:       getEnv("END_DATE", "2026-01-27"),
			RejectionRate: getEnvFloat("REJECTION_RATE", 0.15),
			AberrantRate:  getEnvFloat("ABERRANT_RATE", 0.05),
		},
		Output: OutputConfig{
			CSVDir:     getEnv("CSV_DIR", "./output"),
			SQLitePath: getEnv("SQLITE_PATH", "./output/medforge.db"),
			CSVEnabled: getEnvBool("CSV_ENABLED", true),
			DBEnabled:  getEnvBool("DB_ENABLED", false),
		},
	}
}

// Horizon parses the configured start and end dates.
func (g *GenerationConfig) Horizon() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", g.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start date %q: %w", g.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", g.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end date %q: %w", g.EndDate, err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s not after start date %s", g.EndDate, g.StartDate)
	}
	return start, end, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
