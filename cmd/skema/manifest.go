package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"skema/internal/driver"
	"skema/internal/report"
	"skema/internal/translate"
)

type projectManifest struct {
	Path   string
	Root   string
	Salt   string // content digest, used as the cache salt
	Config projectConfig
}

type projectConfig struct {
	Check     checkConfig     `toml:"check"`
	Translate translateConfig `toml:"translate"`
}

type checkConfig struct {
	LogLevel    string `toml:"log_level"`
	AbortLevel  string `toml:"abort_level"`
	MaxMessages int    `toml:"max_messages"`
	MaxDepth    int    `toml:"max_depth"`
}

type translateConfig struct {
	Namespace string            `toml:"namespace"`
	Redirects map[string]string `toml:"redirects"`
}

func findSkemaToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "skema.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest finds and parses skema.toml upward from startDir.
// Missing manifest is not an error: the second return value is false and
// defaults apply.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findSkemaToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read %q: %w", manifestPath, err)
	}
	var cfg projectConfig
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	digest := sha256.Sum256(raw)
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Salt:   hex.EncodeToString(digest[:]),
		Config: cfg,
	}, true, nil
}

// driverConfig converts a manifest (possibly nil) into a driver config.
func driverConfig(m *projectManifest) (driver.Config, error) {
	cfg := driver.Config{
		LogAt:       report.SevInfo,
		AbortAt:     report.SevFatal,
		MaxMessages: 256,
		MaxDepth:    64,
		CacheSalt:   "default",
	}
	if m == nil {
		return cfg, nil
	}
	cfg.CacheSalt = m.Salt

	check := m.Config.Check
	if check.LogLevel != "" {
		sev, err := report.ParseSeverity(check.LogLevel)
		if err != nil {
			return cfg, fmt.Errorf("%s: log_level: %w", m.Path, err)
		}
		cfg.LogAt = sev
	}
	if check.AbortLevel != "" {
		sev, err := report.ParseSeverity(check.AbortLevel)
		if err != nil {
			return cfg, fmt.Errorf("%s: abort_level: %w", m.Path, err)
		}
		cfg.AbortAt = sev
	}
	if check.MaxMessages > 0 {
		cfg.MaxMessages = check.MaxMessages
	}
	if check.MaxDepth > 0 {
		cfg.MaxDepth = check.MaxDepth
	}

	b := translate.NewBuilder()
	if ns := m.Config.Translate.Namespace; ns != "" {
		if err := b.Namespace(ns); err != nil {
			return cfg, err
		}
	}
	for from, to := range m.Config.Translate.Redirects {
		if err := b.Map(from, to); err != nil {
			return cfg, err
		}
	}
	cfg.Table = b.Build()
	return cfg, nil
}
