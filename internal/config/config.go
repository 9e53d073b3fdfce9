package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrMissingSchema is returned when the project file has no schema section.
var ErrMissingSchema = errors.New("config: schema section is required")

// Config is the root of the sieve project file.
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	// Schema is the index schema definition in its textual form,
	// parsed later by schema.ParseDefinition.
	Schema map[string]any
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// RedisConfig holds the optional Redis-backed store settings.
// An empty Address means the in-memory store.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Default returns the configuration used when no project file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
	}
}

// Load reads and decodes a YAML project file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML project file from memory. Sections are decoded
// leniently via mapstructure so unknown keys don't break older files;
// the schema section stays an untyped map for the descriptor parser.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}

	cfg := Default()

	if section, ok := raw["server"]; ok {
		if err := mapstructure.Decode(section, &cfg.Server); err != nil {
			return nil, fmt.Errorf("config: server section: %w", err)
		}
	}
	if section, ok := raw["redis"]; ok {
		if err := mapstructure.Decode(section, &cfg.Redis); err != nil {
			return nil, fmt.Errorf("config: redis section: %w", err)
		}
	}

	section, ok := raw["schema"].(map[string]any)
	if !ok || len(section) == 0 {
		return nil, ErrMissingSchema
	}
	cfg.Schema = section

	return cfg, nil
}
