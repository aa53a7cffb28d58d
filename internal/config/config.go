package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the gardener shells.
type Config struct {
	// KnowledgeFile replaces the built-in knowledge set when non-empty.
	KnowledgeFile string
	// Seed makes fallback answers reproducible; zero means time-seeded.
	Seed uint64
	// ThinkDelay is the artificial pause before a chat reply is shown.
	ThinkDelay time.Duration
	Addr       string
	LogCalls   bool
}

// Default returns a Config with the stock values.
func Default() Config {
	return Config{
		ThinkDelay: 800 * time.Millisecond,
		Addr:       "127.0.0.1:5050",
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or malformed values.
func Load() Config {
	return LoadFrom(os.Getenv)
}

// LoadWithEnvFile is Load with a dotenv file filling in variables the
// process environment leaves unset. A missing file is not an error.
func LoadWithEnvFile(path string) (Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Load(), nil
		}
		return Default(), fmt.Errorf("reading %s: %w", path, err)
	}
	return LoadFrom(func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return values[key]
	}), nil
}

// LoadFrom is Load with an injectable lookup, for tests.
func LoadFrom(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv("GARDENER_KNOWLEDGE_FILE"); v != "" {
		cfg.KnowledgeFile = v
	}
	if v := getenv("GARDENER_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := getenv("GARDENER_THINK_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ThinkDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := getenv("GARDENER_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("GARDENER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// BindFlags registers flags that override cfg. Values already in cfg
// become the flag defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.KnowledgeFile, "knowledge", c.KnowledgeFile, "knowledge file (JSON); built-in set when empty")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for fallback answers (0 = time-seeded)")
	fs.DurationVar(&c.ThinkDelay, "delay", c.ThinkDelay, "artificial thinking delay in chat")
	fs.BoolVar(&c.LogCalls, "log-calls", c.LogCalls, "log every resolution to stderr")
}
