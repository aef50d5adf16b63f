package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"NOBEL_HTTP_ADDR" envDefault:":8080"`

	StoreDriver     string `env:"NOBEL_STORE_DRIVER" envDefault:"mongo"`
	MongoURI        string `env:"NOBEL_MONGO_URI" envDefault:"mongodb://localhost:27017/"`
	MongoDatabase   string `env:"NOBEL_MONGO_DATABASE" envDefault:"nobel"`
	MongoCollection string `env:"NOBEL_MONGO_COLLECTION" envDefault:"nobel_prizes"`
	SQLitePath      string `env:"NOBEL_SQLITE_PATH" envDefault:"./nobel_dashboard.db"`

	RateLimitPerSecond float64 `env:"NOBEL_RATE_LIMIT_PER_SECOND" envDefault:"10"`
	RateLimitBurst     int     `env:"NOBEL_RATE_LIMIT_BURST" envDefault:"20"`
}

// Load reads the given .env files (missing files are ignored) and then the
// process environment. Variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("config.Load(): loaded %s", f)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimitPerSecond <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive (got %v/s, burst %d)", cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}
	return cfg, nil
}
