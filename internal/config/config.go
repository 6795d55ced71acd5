package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds the console settings. Values come from an optional TOML file,
// then from the environment (a .env file is loaded first when present).
type Config struct {
	API     APIConfig     `toml:"api"`
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
	Journal JournalConfig `toml:"journal"`
}

// APIConfig points at the remote fleet REST API.
type APIConfig struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// JournalConfig selects the audit journal backend.
// This uses a tagged union pattern - the Driver field determines which other fields are relevant.
type JournalConfig struct {
	Driver string `toml:"driver"` // "sqlite" (default), "postgres" or "none"
	Path   string `toml:"path"`   // only used for driver=sqlite
	DSN    string `toml:"dsn"`    // only used for driver=postgres
}

// Duration decodes TOML strings such as "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:3001",
			Timeout: Duration{10 * time.Second},
		},
		Server:  ServerConfig{Port: "8080"},
		Log:     LogConfig{Level: "info"},
		Journal: JournalConfig{Driver: "sqlite", Path: "data/journal.db"},
	}
}

// Read decodes a Config from r on top of the defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Load builds the configuration. path may be empty or point at a missing file,
// in which case only defaults and the environment apply.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to open config file: %w", err)
		default:
			defer f.Close()
			cfg, err = Read(f)
			if err != nil {
				return nil, fmt.Errorf("reading config from %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.API.BaseURL = Get("FLEET_API_URL", c.API.BaseURL)
	if v := os.Getenv("FLEET_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FLEET_API_TIMEOUT: %w", err)
		}
		c.API.Timeout = Duration{d}
	}
	c.Server.Port = Get("PORT", c.Server.Port)
	c.Log.Level = Get("LOG_LEVEL", c.Log.Level)
	c.Journal.Driver = Get("JOURNAL_DRIVER", c.Journal.Driver)
	c.Journal.Path = Get("JOURNAL_PATH", c.Journal.Path)
	c.Journal.DSN = Get("JOURNAL_DSN", c.Journal.DSN)
	return nil
}

// Validate reports settings the console cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("config: api base_url is required")
	}
	if c.API.Timeout.Duration <= 0 {
		return errors.New("config: api timeout must be positive")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("config: invalid server port %q", c.Server.Port)
	}
	switch c.Journal.Driver {
	case "none":
	case "sqlite":
		if c.Journal.Path == "" {
			return errors.New("config: journal path is required for sqlite")
		}
	case "postgres":
		if c.Journal.DSN == "" {
			return errors.New("config: journal dsn is required for postgres")
		}
	default:
		return fmt.Errorf("config: unknown journal driver %q", c.Journal.Driver)
	}
	return nil
}

// Get returns the environment value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
