// Package config loads the habitkeep configuration: a YAML file validated
// against an embedded CUE schema, with environment-variable overrides on
// top.
//
// Precedence, lowest to highest: schema defaults, config file, environment.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Backend names accepted by the config schema.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

// Config selects and parameterizes the storage backend.
type Config struct {
	Backend string       `yaml:"backend"`
	SQLite  SQLiteConfig `yaml:"sqlite"`
	Badger  BadgerConfig `yaml:"badger"`
	Redis   RedisConfig  `yaml:"redis"`
}

// SQLiteConfig configures the sqlite backend.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// BadgerConfig configures the badger backend.
type BadgerConfig struct {
	Path       string `yaml:"path"`
	InMemory   bool   `yaml:"in_memory"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the configuration used when no file exists: the
// in-memory backend, suitable for trying the CLI without any setup.
func Default() *Config {
	return &Config{Backend: BackendMemory}
}

// Load reads, validates, and decodes the config file at path, then applies
// environment overrides. A missing file is not an error; defaults plus
// environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to env overrides.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := validate(data); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
		if cfg.Backend == "" {
			cfg.Backend = BackendMemory
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

// validate unifies the YAML document with the embedded CUE schema and
// reports any mismatch. Validation happens on the raw document, before
// decoding into the typed struct, so schema errors name the offending
// field rather than surfacing as a Go type error.
func validate(data []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return nil
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	value := schema.Unify(ctx.Encode(doc))
	if err := value.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// overrideFromEnv applies HABITKEEP_* environment variables on top of the
// loaded configuration.
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("HABITKEEP_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("HABITKEEP_SQLITE_PATH"); v != "" {
		cfg.SQLite.Path = v
	}
	if v := os.Getenv("HABITKEEP_BADGER_PATH"); v != "" {
		cfg.Badger.Path = v
	}
	if v := os.Getenv("HABITKEEP_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("HABITKEEP_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("HABITKEEP_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
}
