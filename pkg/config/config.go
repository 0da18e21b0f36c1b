package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

// Config reads settings from the process environment after loading the .env
// file named by ENV_FILE. Variables already set in the environment win.
type Config struct {
}

func New() *Config {
	once.Do(func() {
		path := os.Getenv("ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("env file not loaded, using process environment", slog.String("path", path), slog.String("error", err.Error()))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v := c.GetString(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer setting, using default", slog.String("key", key), slog.String("value", v))
		return def
	}
	return n
}

func (c *Config) GetBool(key string, def bool) bool {
	v := strings.TrimSpace(c.GetString(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean setting, using default", slog.String("key", key), slog.String("value", v))
		return def
	}
	return b
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v := c.GetString(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration setting, using default", slog.String("key", key), slog.String("value", v))
		return def
	}
	return d
}
