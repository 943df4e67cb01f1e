// Package config provides configuration loading and management for semcommit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	semcommit "github.com/bcomnes/semcommit/pkg"
)

// DefaultFileName is looked up in the repository directory when no config
// file is given explicitly.
const DefaultFileName = ".semcommit.yaml"

// Config represents the complete semcommit configuration
type Config struct {
	Keywords KeywordsConfig `yaml:"keywords"`
	// SkipMarker flags the commit of a previous automated bump; scanning stops there.
	SkipMarker string `yaml:"skip_marker"`
	// Ref is the revision whose history is scanned.
	Ref string `yaml:"ref"`
	// MaxCommits bounds the scanned window (0 = unbounded).
	MaxCommits int `yaml:"max_commits"`
	// Descriptor is the file holding the project version, relative to the repository.
	Descriptor string `yaml:"descriptor"`
	// BumpFiles mirror the new version, relative to the repository.
	BumpFiles []string `yaml:"bump_files"`
}

// KeywordsConfig configures the release keywords
type KeywordsConfig struct {
	Major string `yaml:"major"`
	Minor string `yaml:"minor"`
	Patch string `yaml:"patch"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	kw := semcommit.DefaultKeywords()
	return &Config{
		Keywords: KeywordsConfig{
			Major: kw.Major,
			Minor: kw.Minor,
			Patch: kw.Patch,
		},
		SkipMarker: semcommit.DefaultSkipMarker,
		Ref:        "HEAD",
		Descriptor: "pom.xml",
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := c.SemcommitKeywords().Validate(); err != nil {
		return fmt.Errorf("keywords: %w", err)
	}
	if c.SkipMarker == "" {
		return errors.New("skip_marker is required")
	}
	if c.Ref == "" {
		return errors.New("ref is required")
	}
	if c.MaxCommits < 0 {
		return errors.New("max_commits must not be negative")
	}
	if c.Descriptor == "" {
		return errors.New("descriptor is required")
	}
	return nil
}

// SemcommitKeywords converts the keyword section for the library.
func (c *Config) SemcommitKeywords() semcommit.Keywords {
	return semcommit.Keywords{
		Major: c.Keywords.Major,
		Minor: c.Keywords.Minor,
		Patch: c.Keywords.Patch,
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Load reads path, or DefaultFileName inside dir when path is empty. A
// missing default file yields the defaults.
func Load(dir, path string) (*Config, error) {
	if path != "" {
		return LoadFromFile(path)
	}

	candidate := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(candidate); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return LoadFromFile(candidate)
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Keywords.Major != "" {
		c.Keywords.Major = other.Keywords.Major
	}
	if other.Keywords.Minor != "" {
		c.Keywords.Minor = other.Keywords.Minor
	}
	if other.Keywords.Patch != "" {
		c.Keywords.Patch = other.Keywords.Patch
	}
	if other.SkipMarker != "" {
		c.SkipMarker = other.SkipMarker
	}
	if other.Ref != "" {
		c.Ref = other.Ref
	}
	if other.MaxCommits != 0 {
		c.MaxCommits = other.MaxCommits
	}
	if other.Descriptor != "" {
		c.Descriptor = other.Descriptor
	}
	if len(other.BumpFiles) > 0 {
		c.BumpFiles = append(c.BumpFiles, other.BumpFiles...)
	}
}
