package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. HELIX_SERVER_ADDR.
const EnvPrefix = "HELIX_"

// Config is the full runtime configuration.
type Config struct {
	Server  Server  `mapstructure:"server"`
	Log     Log     `mapstructure:"log"`
	Limits  Limits  `mapstructure:"limits"`
	Metrics Metrics `mapstructure:"metrics"`
	MCP     MCP     `mapstructure:"mcp"`
}

// Server configures the HTTP boundary.
type Server struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	CORS              bool          `mapstructure:"cors"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Limits bounds request payloads.
type Limits struct {
	MaxInputSize int `mapstructure:"max_input_size"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// MCP configures the Model Context Protocol server.
type MCP struct {
	Transport string `mapstructure:"transport"`
	Port      int    `mapstructure:"port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   5 * time.Second,
			CORS:              true,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Limits: Limits{
			MaxInputSize: 1 << 20,
		},
		Metrics: Metrics{
			Enabled: true,
			Path:    "/metrics",
		},
		MCP: MCP{
			Transport: "stdio",
			Port:      8081,
		},
	}
}

// Load reads path (if not empty) on top of the defaults and then applies
// HELIX_* environment overrides.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.Environ())
}

// LoadWithEnv is Load with an explicit environment, as returned by os.Environ.
func LoadWithEnv(path string, environ []string) (*Config, error) {
	raw := map[string]any{}
	if path != "" {
		fileValues, err := readFile(path)
		if err != nil {
			return nil, err
		}
		raw = fileValues
	}
	applyEnv(raw, environ)

	cfg := Default()
	if err := decode(raw, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	values := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		// Default to YAML
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return values, nil
}

// envAliases are documented variables that do not follow the
// HELIX_<SECTION>_<KEY> layout.
var envAliases = map[string][2]string{
	EnvPrefix + "MAX_INPUT_SIZE": {"limits", "max_input_size"},
}

// applyEnv folds HELIX_<SECTION>_<KEY>=value pairs into raw as raw[section][key].
// Aliases are applied first so the fully qualified name wins when both are set.
func applyEnv(raw map[string]any, environ []string) {
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if target, ok := envAliases[name]; ok {
			setRaw(raw, target[0], target[1], value)
		}
	}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		if _, alias := envAliases[name]; alias {
			continue
		}
		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_")
		if !ok || key == "" {
			continue
		}
		setRaw(raw, section, key, value)
	}
}

func setRaw(raw map[string]any, section, key, value string) {
	sub, _ := raw[section].(map[string]any)
	if sub == nil {
		sub = map[string]any{}
		raw[section] = sub
	}
	sub[key] = value
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           cfg,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the servers cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Limits.MaxInputSize <= 0 {
		return fmt.Errorf("limits.max_input_size must be positive, got %d", c.Limits.MaxInputSize)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("mcp.transport must be stdio or sse, got %q", c.MCP.Transport)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path)
	}
	return nil
}
