// Package config resolves runtime settings from defaults, an optional TOML
// file, TAMAGOTCHI_* environment variables and command-line flags, in that
// order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"tamagotchi/internal/pet"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TAMAGOTCHI_"

// Config holds settings for a play session. Game rules are fixed and not
// part of it.
type Config struct {
	SavePath   string `toml:"save_path"  env:"SAVE_PATH"`
	Name       string `toml:"name"       env:"NAME"`
	Plain      bool   `toml:"plain"      env:"PLAIN"`
	Seed       int64  `toml:"seed"       env:"SEED"`
	LogFile    string `toml:"log_file"   env:"LOG_FILE"`
	Animations bool   `toml:"animations" env:"ANIMATIONS"`
}

// NewDefault returns the built-in settings. Name is left blank so the plain
// frontend can ask for one; a pet hatched without a name is called Tama.
func NewDefault() Config {
	return Config{
		SavePath:   pet.DefaultSaveFile,
		Animations: true,
	}
}

// LoadFile overlays settings from a TOML file. A missing file is not an error
// so a default path can be tried silently.
func LoadFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays TAMAGOTCHI_* environment variables. Unset variables keep
// the current values.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// BindFlags registers the session flags on fs, defaulting to the values in cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.SavePath, "save", cfg.SavePath, "Path to the save file")
	fs.StringVarP(&cfg.Name, "name", "n", cfg.Name, "Name for a newly hatched pet (asked for in --plain mode when blank)")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "Use the plain line-based interface")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 picks one from the clock)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write debug logs to this file")
	fs.BoolVar(&cfg.Animations, "animations", cfg.Animations, "Play action animations in the TUI")
}

// Load builds a Config from defaults, the TOML file at path and the
// environment.
func Load(path string) (Config, error) {
	cfg := NewDefault()
	if err := LoadFile(&cfg, path); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve loads the file and environment, then applies the flags that were
// set explicitly on fs. flags holds the values bound with BindFlags.
func Resolve(fs *pflag.FlagSet, flags Config, path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "save":
			cfg.SavePath = flags.SavePath
		case "name":
			cfg.Name = flags.Name
		case "plain":
			cfg.Plain = flags.Plain
		case "seed":
			cfg.Seed = flags.Seed
		case "log":
			cfg.LogFile = flags.LogFile
		case "animations":
			cfg.Animations = flags.Animations
		}
	})
	return cfg, nil
}
