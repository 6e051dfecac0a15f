package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	AssetsDir    string
	WordLists    []string
	RoundSeconds int
	Seed         int64
	Volume       float32
	LogLevel     string
	LogDev       bool
}

// Load reads configuration from an optional .env file and the environment
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	round, err := getEnvInt("PAROLIERE_ROUND_SECONDS", 120)
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(getEnv("PAROLIERE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("PAROLIERE_SEED: %w", err)
	}
	volume, err := strconv.ParseFloat(getEnv("PAROLIERE_VOLUME", "0.1"), 32)
	if err != nil {
		return nil, fmt.Errorf("PAROLIERE_VOLUME: %w", err)
	}
	dev, err := strconv.ParseBool(getEnv("PAROLIERE_LOG_DEV", "false"))
	if err != nil {
		return nil, fmt.Errorf("PAROLIERE_LOG_DEV: %w", err)
	}

	cfg := &Config{
		AssetsDir:    getEnv("PAROLIERE_ASSETS_DIR", "assets"),
		WordLists:    splitList(getEnv("PAROLIERE_WORD_LISTS", "words.txt,words2.txt")),
		RoundSeconds: round,
		Seed:         seed,
		Volume:       float32(volume),
		LogLevel:     getEnv("PAROLIERE_LOG_LEVEL", "info"),
		LogDev:       dev,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.RoundSeconds <= 0 {
		return fmt.Errorf("round duration must be positive, got %ds", c.RoundSeconds)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be within 0..1, got %.2f", c.Volume)
	}
	if len(c.WordLists) == 0 {
		return fmt.Errorf("at least one word list is required")
	}
	return nil
}

func (c *Config) RoundDuration() time.Duration {
	return time.Duration(c.RoundSeconds) * time.Second
}

// WordListPaths returns the word list files in load order
func (c *Config) WordListPaths() []string {
	paths := make([]string, 0, len(c.WordLists))
	for _, name := range c.WordLists {
		paths = append(paths, filepath.Join(c.AssetsDir, "texts", name))
	}
	return paths
}

func (c *Config) FontPath(name string) string {
	return filepath.Join(c.AssetsDir, "fonts", name)
}

func (c *Config) SoundPath(name string) string {
	return filepath.Join(c.AssetsDir, "sounds", name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
