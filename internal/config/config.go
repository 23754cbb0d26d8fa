// Package config loads scriptir.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"scriptir/internal/trace"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "scriptir.toml"

type Config struct {
	Trace  TraceConfig  `toml:"trace"`
	Source SourceConfig `toml:"source"`
	Pool   PoolConfig   `toml:"pool"`

	// Path of the file the values came from, empty for defaults.
	Path string `toml:"-"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

type SourceConfig struct {
	// NormalizeIdents applies Unicode NFC to every interned name.
	NormalizeIdents bool `toml:"normalize_idents"`
}

type PoolConfig struct {
	// Dir resolves relative pool paths given on the command line.
	Dir string `toml:"dir"`
	// Jobs bounds concurrent pool loads, 0 for GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

func Default() Config {
	return Config{
		Trace: TraceConfig{Level: "off", Mode: "stream", Format: "auto", Output: "-"},
	}
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	cfg.Path = path
	if cfg.Pool.Dir != "" && !filepath.IsAbs(cfg.Pool.Dir) {
		cfg.Pool.Dir = filepath.Join(filepath.Dir(path), cfg.Pool.Dir)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest config, or returns defaults.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Default(), err
	}
	return Load(path)
}

// Validate checks the values that have a fixed vocabulary.
func (c Config) Validate() error {
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	if c.Pool.Jobs < 0 {
		return fmt.Errorf("[pool].jobs must not be negative, got %d", c.Pool.Jobs)
	}
	return nil
}

// TracerConfig converts the [trace] table for trace.New.
func (c Config) TracerConfig() (trace.Config, error) {
	level, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return trace.Config{}, err
	}
	mode, err := trace.ParseMode(c.Trace.Mode)
	if err != nil {
		return trace.Config{}, err
	}
	format, err := trace.ParseFormat(c.Trace.Format)
	if err != nil {
		return trace.Config{}, err
	}
	return trace.Config{Level: level, Mode: mode, Format: format, OutputPath: c.Trace.Output}, nil
}

// PoolPath resolves a pool path from the command line against [pool].dir.
func (c Config) PoolPath(p string) string {
	if c.Pool.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Pool.Dir, p)
}
