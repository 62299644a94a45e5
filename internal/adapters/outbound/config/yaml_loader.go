package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sitelint/sitelint/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".sitelint.yaml"

// YAMLLoader implements domain.ConfigLoader by overlaying .sitelint.yaml
// on the stock defaults.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// fileConfig is the on-disk shape. Every field is optional; absent fields
// keep their defaults.
type fileConfig struct {
	BaseURL              string         `yaml:"base_url"`
	IgnoreDirs           []string       `yaml:"ignore_dirs"`
	IgnoreFileSubstrings []string       `yaml:"ignore_file_substrings"`
	IgnoreHrefPrefixes   []string       `yaml:"ignore_href_prefixes"`
	Penalties            map[string]int `yaml:"penalties"`
	Workers              int            `yaml:"workers"`
	TimeoutSeconds       int            `yaml:"timeout_seconds"`
}

// Load reads .sitelint.yaml from the site root.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(root string) (domain.AuditConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.AuditConfig{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return domain.AuditConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg = merge(cfg, fc)
	if err := cfg.Validate(); err != nil {
		return domain.AuditConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// merge overlays explicit file values on top of defaults. Explicit
// (non-zero) values always win; penalty overrides apply per code.
func merge(base domain.AuditConfig, fc fileConfig) domain.AuditConfig {
	if fc.BaseURL != "" {
		base.BaseURL = fc.BaseURL
	}
	if len(fc.IgnoreDirs) > 0 {
		base.IgnoreDirs = fc.IgnoreDirs
	}
	if len(fc.IgnoreFileSubstrings) > 0 {
		base.IgnoreFileSubstrings = fc.IgnoreFileSubstrings
	}
	if len(fc.IgnoreHrefPrefixes) > 0 {
		base.IgnoreHrefPrefixes = fc.IgnoreHrefPrefixes
	}
	for code, p := range fc.Penalties {
		base.Penalties[domain.IssueCode(code)] = p
	}
	if fc.Workers > 0 {
		base.Workers = fc.Workers
	}
	if fc.TimeoutSeconds > 0 {
		base.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	return base
}
