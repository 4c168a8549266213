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

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL  = "https://www.bling.com.br/Api/v3"
	DefaultPort    = 3000
	DefaultTimeout = 30 * time.Second
)

// Config represents the overall application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Bling  BlingConfig  `yaml:"bling"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	Debug           bool     `yaml:"debug"`
	CORSOrigins     []string `yaml:"cors_origins"`
	ShutdownSeconds int      `yaml:"shutdown_seconds"`
}

// BlingConfig holds the credentials used to reach the Bling API.
type BlingConfig struct {
	APIURL         string        `yaml:"api_url"`
	APIToken       string        `yaml:"api_token"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"` // Ignored by YAML parser
	HTTPProxy      string        `yaml:"http_proxy"`
}

// TokenConfigured reports whether a bearer token is available.
func (b BlingConfig) TokenConfigured() bool {
	return strings.TrimSpace(b.APIToken) != ""
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads the configuration from the given path, then applies .env and
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			defer f.Close()
			decoder := yaml.NewDecoder(f)
			if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		}
	}

	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookup("BLING_API_TOKEN"); ok {
		cfg.Bling.APIToken = v
	}
	if v, ok := lookup("BLING_API_URL"); ok {
		cfg.Bling.APIURL = v
	}
	if v, ok := lookup("BLING_HTTP_PROXY"); ok {
		cfg.Bling.HTTPProxy = v
	}
	if v, ok := lookup("BLING_TIMEOUT_SECONDS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BLING_TIMEOUT_SECONDS must be an integer: %w", err)
		}
		cfg.Bling.TimeoutSeconds = n
	}
	if v, ok := lookup("PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT must be an integer: %w", err)
		}
		cfg.Server.Port = n
	}
	if v, ok := lookup("DEBUG"); ok {
		cfg.Server.Debug = strings.EqualFold(v, "true")
	}
	if v, ok := lookup("CORS_ORIGINS"); ok {
		cfg.Server.CORSOrigins = splitCSV(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Bling.APIURL == "" {
		cfg.Bling.APIURL = DefaultAPIURL
	}
	if cfg.Bling.TimeoutSeconds <= 0 {
		cfg.Bling.Timeout = DefaultTimeout
	} else {
		cfg.Bling.Timeout = time.Duration(cfg.Bling.TimeoutSeconds) * time.Second
	}
	cfg.Bling.APIToken = strings.TrimSpace(cfg.Bling.APIToken)

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = DefaultPort
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.Server.ShutdownSeconds <= 0 {
		cfg.Server.ShutdownSeconds = 5
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
		if cfg.Server.Debug {
			cfg.Log.Level = "debug"
		}
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
		if cfg.Server.Debug {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if !strings.HasPrefix(c.Bling.APIURL, "http://") && !strings.HasPrefix(c.Bling.APIURL, "https://") {
		return fmt.Errorf("bling api_url must be an http(s) URL, got %q", c.Bling.APIURL)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
