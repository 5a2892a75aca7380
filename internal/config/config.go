// Package config resolves the settings a todo run needs: where the database
// file lives and which title the default run inserts.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDatabase is the database file used when nothing else is given.
	// It is relative to the working directory.
	DefaultDatabase = "ef_sample.db"

	// DefaultTitle is the title inserted by a run without --title.
	DefaultTitle = "学習: SQLite サンプル"
)

// Config holds run settings.
type Config struct {
	// Database is the path to the SQLite file.
	Database string `yaml:"database"`

	// Title is inserted by the default run.
	Title string `yaml:"title"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Database: DefaultDatabase,
		Title:    DefaultTitle,
	}
}

// Load reads a YAML config file and applies it over the defaults.
// An empty path returns Default(). Fields absent from the file keep their
// default values; unknown fields are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports settings no run can use. An empty database path would
// make SQLite open a private temporary database that is gone after the run.
func (c Config) Validate() error {
	if c.Database == "" {
		return errors.New("database must not be empty")
	}
	return nil
}
