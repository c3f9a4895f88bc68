package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"llmgateway/internal/common/fsutil"
	"llmgateway/internal/registry"
)

// Config holds runtime parameters for the gateway.
type Config struct {
	Host     string `json:"host" yaml:"host" toml:"host"`
	Port     int    `json:"port" yaml:"port" toml:"port"`
	Debug    bool   `json:"debug" yaml:"debug" toml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
	// LogFile enables a rotating JSON log file in addition to stderr.
	LogFile string `json:"log_file" yaml:"log_file" toml:"log_file"`
	// Rotation limits for LogFile; zero keeps the logging package defaults.
	LogMaxSizeMB  int `json:"log_max_size_mb" yaml:"log_max_size_mb" toml:"log_max_size_mb"`
	LogMaxBackups int `json:"log_max_backups" yaml:"log_max_backups" toml:"log_max_backups"`
	LogMaxAgeDays int `json:"log_max_age_days" yaml:"log_max_age_days" toml:"log_max_age_days"`

	// DaemonURL is the base URL of the local inference daemon.
	DaemonURL            string `json:"daemon_url" yaml:"daemon_url" toml:"daemon_url"`
	DaemonTimeoutSeconds int    `json:"daemon_timeout_seconds" yaml:"daemon_timeout_seconds" toml:"daemon_timeout_seconds"`
	ProbeTimeoutSeconds  int    `json:"probe_timeout_seconds" yaml:"probe_timeout_seconds" toml:"probe_timeout_seconds"`

	// In-process runtime tunables.
	LlamaCtx     int `json:"llama_ctx" yaml:"llama_ctx" toml:"llama_ctx"`
	LlamaThreads int `json:"llama_threads" yaml:"llama_threads" toml:"llama_threads"`

	MaxBodyBytes int64      `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	CORS         CORSConfig `json:"cors" yaml:"cors" toml:"cors"`
	Routes       Routes     `json:"routes" yaml:"routes" toml:"routes"`
	Models       []Model    `json:"models" yaml:"models" toml:"models"`
}

// CORSConfig controls the CORS middleware.
type CORSConfig struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
}

// Routes names the model key each task endpoint uses by default.
type Routes struct {
	Complete string `json:"complete" yaml:"complete" toml:"complete"`
	Chat     string `json:"chat" yaml:"chat" toml:"chat"`
	Explain  string `json:"explain" yaml:"explain" toml:"explain"`
	Refactor string `json:"refactor" yaml:"refactor" toml:"refactor"`
	Reason   string `json:"reason" yaml:"reason" toml:"reason"`
	Generate string `json:"generate" yaml:"generate" toml:"generate"`
}

// Model is one row of the model table.
type Model struct {
	Key     string `json:"key" yaml:"key" toml:"key"`
	Backend string `json:"backend" yaml:"backend" toml:"backend"`
	Locator string `json:"locator" yaml:"locator" toml:"locator"`
	UseCase string `json:"use_case" yaml:"use_case" toml:"use_case"`
}

// Default returns the built-in configuration.
func Default() Config {
	var models []Model
	for _, d := range registry.Defaults() {
		models = append(models, Model{Key: d.Key, Backend: string(d.Kind), Locator: d.Locator, UseCase: d.UseCase})
	}
	return Config{
		Host:                 "0.0.0.0",
		Port:                 5000,
		LogLevel:             "info",
		DaemonURL:            "http://localhost:11434",
		DaemonTimeoutSeconds: 120,
		ProbeTimeoutSeconds:  5,
		LlamaCtx:             4096,
		MaxBodyBytes:         1 << 20,
		CORS:                 CORSConfig{Enabled: true, AllowedOrigins: []string{"*"}},
		Routes: Routes{
			Complete: registry.KeyCompletion,
			Chat:     registry.KeyReasoning,
			Explain:  registry.KeyReasoning,
			Refactor: registry.KeyCodeGen,
			Reason:   registry.KeyReasoning,
			Generate: registry.KeyCodeGen,
		},
		Models: models,
	}
}

// Load reads a configuration file over the defaults, based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	// Decode over the defaults so absent keys keep their default values.
	// The model table is replaced as a whole, never merged row by row.
	cfg.Models = nil
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return Default(), fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Models) == 0 {
		cfg.Models = Default().Models
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("OLLAMA_HOST")); v != "" {
		if !strings.Contains(v, "://") {
			v = "http://" + v
		}
		c.DaemonURL = v
	}
	if v := strings.TrimSpace(getenv("LLMGW_HOST")); v != "" {
		c.Host = v
	}
	if v := strings.TrimSpace(getenv("LLMGW_PORT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LLMGW_PORT: %w", err)
		}
		c.Port = n
	}
	if v := strings.TrimSpace(getenv("LLMGW_DEBUG")); v != "" {
		s := strings.ToLower(v)
		c.Debug = s == "1" || s == "true" || s == "yes"
	}
	if v := strings.TrimSpace(getenv("LLMGW_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Descriptors converts the model table into registry descriptors.
// Locators of in-process models get a leading '~' expanded.
func (c Config) Descriptors() ([]registry.Descriptor, error) {
	out := make([]registry.Descriptor, 0, len(c.Models))
	for _, m := range c.Models {
		kind, err := registry.ParseKind(m.Backend)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Key, err)
		}
		loc := m.Locator
		if kind == registry.InProcess {
			if loc, err = fsutil.ExpandHome(loc); err != nil {
				return nil, fmt.Errorf("model %s: %w", m.Key, err)
			}
		}
		out = append(out, registry.Descriptor{Key: m.Key, Kind: kind, Locator: loc, UseCase: m.UseCase})
	}
	return out, nil
}

// Validate checks the configuration and builds the model registry from it.
// All problems are reported together.
func (c Config) Validate() (*registry.Registry, error) {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if u, err := url.Parse(c.DaemonURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("daemon_url %q is not an absolute URL", c.DaemonURL))
	}
	if c.DaemonTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("daemon_timeout_seconds must be positive"))
	}
	if c.ProbeTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("probe_timeout_seconds must be positive"))
	}
	descs, err := c.Descriptors()
	if err != nil {
		return nil, errors.Join(append(errs, err)...)
	}
	reg, err := registry.New(descs)
	if err != nil {
		return nil, errors.Join(append(errs, err)...)
	}
	for name, key := range map[string]string{
		"complete": c.Routes.Complete,
		"chat":     c.Routes.Chat,
		"explain":  c.Routes.Explain,
		"refactor": c.Routes.Refactor,
		"reason":   c.Routes.Reason,
		"generate": c.Routes.Generate,
	} {
		if !reg.Has(key) {
			errs = append(errs, fmt.Errorf("routes.%s: unknown model %q", name, key))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}
