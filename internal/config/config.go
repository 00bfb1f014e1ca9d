// Package config provides configuration types and defaults for cubestate.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/log"
)

// EnvPrefix is the prefix for environment overrides, e.g. CUBESTATE_LOG_LEVEL.
const EnvPrefix = "CUBESTATE"

// DefaultShuffleMoves is how many turns a new game starts with.
const DefaultShuffleMoves = 15

// Config holds all configuration options for cubestate.
type Config struct {
	DBPath       string   `mapstructure:"db_path"`
	StatePath    string   `mapstructure:"state_path"`
	LogLevel     string   `mapstructure:"log_level"`
	LogFile      string   `mapstructure:"log_file"`
	ShuffleMoves int      `mapstructure:"shuffle_moves"`
	Faces        []string `mapstructure:"faces"`
	Color        bool     `mapstructure:"color"`
}

// DefaultDir returns ~/.cubestate.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubestate"), nil
}

// SetDefaults registers default values rooted at dir.
func SetDefaults(v *viper.Viper, dir string) {
	v.SetDefault("db_path", filepath.Join(dir, "cubestate.db"))
	v.SetDefault("state_path", filepath.Join(dir, "state.json"))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("shuffle_moves", DefaultShuffleMoves)
	v.SetDefault("faces", []string{"U", "D", "F", "B", "L", "R"})
	v.SetDefault("color", true)
}

// Load reads configuration into v and returns the validated result.
// When path is empty, config.yaml is looked up in dir; a missing file is
// not an error. Environment variables override file values.
func Load(v *viper.Viper, path, dir string) (Config, error) {
	SetDefaults(v, dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		log.Debug(log.CatCLI, "No config file, using defaults", "dir", dir)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.StatePath == "" {
		return fmt.Errorf("state_path is required")
	}
	if c.ShuffleMoves < 1 {
		return fmt.Errorf("shuffle_moves must be positive, got %d", c.ShuffleMoves)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.SupportedFaces(); err != nil {
		return err
	}
	return nil
}

// SupportedFaces converts the faces list to cube faces.
func (c Config) SupportedFaces() ([]cubestate.Face, error) {
	faces := make([]cubestate.Face, 0, len(c.Faces))
	for i, s := range c.Faces {
		s = strings.TrimSpace(s)
		if len(s) != 1 {
			return nil, fmt.Errorf("faces %d: invalid face %q", i, s)
		}
		f, ok := cubestate.ParseFace(s[0])
		if !ok {
			return nil, fmt.Errorf("faces %d: invalid face %q", i, s)
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// EngineOptions returns the engine options implied by the configuration.
func (c Config) EngineOptions() ([]cubestate.Option, error) {
	faces, err := c.SupportedFaces()
	if err != nil {
		return nil, err
	}
	return []cubestate.Option{
		cubestate.WithSupportedFaces(faces...),
		cubestate.WithLogger(log.Logger(log.CatEngine)),
	}, nil
}
