package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"os"
)

// PathEnv names the environment variable holding an optional YAML config file
const PathEnv = "FX_CONFIG_PATH"

// Config the server configuration
type Config struct {
	HTTP   HTTP   `yaml:"http"`
	Log    Log    `yaml:"log"`
	Widget Widget `yaml:"widget"`
}

type HTTP struct {
	Addr           string   `yaml:"addr" env:"FX_HTTP_ADDR" env-default:":8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"FX_HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type Log struct {
	// Level one of debug, info, warn, error
	Level string `yaml:"level" env:"FX_LOG_LEVEL" env-default:"info"`
	// Format one of logfmt, json
	Format string `yaml:"format" env:"FX_LOG_FORMAT" env-default:"logfmt"`
}

// Widget the initial state of the converter
type Widget struct {
	DefaultFrom string `yaml:"default_from" env:"FX_DEFAULT_FROM" env-default:"JPY"`
	DefaultTo   string `yaml:"default_to" env:"FX_DEFAULT_TO" env-default:"KRW"`
}

// Load reads configuration. A .env file in the working directory is loaded first if present.
// When FX_CONFIG_PATH is set the YAML file it names is read, with environment variables
// taking precedence; otherwise only the environment and defaults are used.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFile(os.Getenv(PathEnv))
}

// LoadFile reads configuration from path, or from the environment alone when path is empty.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
	} else {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config file %v: %w", path, err)
		}
	}

	switch cfg.Log.Format {
	case "logfmt", "json":
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
	return &cfg, nil
}
