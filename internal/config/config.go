package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the CLI-side configuration.
type Config struct {
	ServerURL string `env:"FITARENA_SERVER_URL" envDefault:"http://localhost:8080"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
