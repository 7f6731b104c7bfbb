package server

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

func (e Environment) IsDevelopment() bool { return e == EnvDevelopment }

type Config struct {
	Port  string      `env:"PORT" envDefault:"8080"`
	Env   Environment `env:"ENV" envDefault:"development"`
	Store StoreConfig `envPrefix:"STORE_"`
	Cache CacheConfig `envPrefix:"CACHE_"`
}

type StoreConfig struct {
	// Driver selects the record store backend: sqlite, postgres or memory.
	Driver      string `env:"DRIVER" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"fitarena.db"`
	PostgresURL string `env:"POSTGRES_URL"`
}

type CacheConfig struct {
	// RedisURL enables the score snapshot cache when set.
	RedisURL string        `env:"REDIS_URL"`
	TTL      time.Duration `env:"TTL" envDefault:"5m"`
}

func ReadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
