/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in
// the user scope. Environment variables are read-only overrides at runtime.
//
// config_version: bump when the structure changes incompatibly.

type CalculatorConfig struct {
	// DefaultMinBorder seeds new calculations, inches.
	DefaultMinBorder float64 `yaml:"default_min_border"`
	// DefaultPaperSize and DefaultAspectRatio are catalog ids.
	DefaultPaperSize   string `yaml:"default_paper_size"`
	DefaultAspectRatio string `yaml:"default_aspect_ratio"`
	// OptimizeStep/OptimizeWindow bound the optimal-border search, inches.
	OptimizeStep   float64 `yaml:"optimize_step"`
	OptimizeWindow float64 `yaml:"optimize_window"`
}

type ExportConfig struct {
	// DPI for raster diagram output.
	DPI int `yaml:"dpi"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int              `yaml:"config_version"`
	Calculator    CalculatorConfig `yaml:"calculator"`
	Export        ExportConfig     `yaml:"export"`
	Logging       LoggingConfig    `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Calculator: CalculatorConfig{
			DefaultMinBorder:   0.5,
			DefaultPaperSize:   "8x10",
			DefaultAspectRatio: "3:2",
			OptimizeStep:       0.25,
			OptimizeWindow:     0.5,
		},
		Export:  ExportConfig{DPI: 150},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvMinBorder = "BC_MIN_BORDER"
	EnvExportDPI = "BC_EXPORT_DPI"
	EnvLogLevel  = "BC_LOG_LEVEL"
	EnvLogFormat = "BC_LOG_FORMAT"
	EnvLogSource = "BC_LOG_SOURCE"
	EnvLogFile   = "BC_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "BorderCalc")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "BorderCalc")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "bordercalc")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Calculator.DefaultMinBorder > 0 {
		dst.Calculator.DefaultMinBorder = src.Calculator.DefaultMinBorder
	}
	if strings.TrimSpace(src.Calculator.DefaultPaperSize) != "" {
		dst.Calculator.DefaultPaperSize = src.Calculator.DefaultPaperSize
	}
	if strings.TrimSpace(src.Calculator.DefaultAspectRatio) != "" {
		dst.Calculator.DefaultAspectRatio = src.Calculator.DefaultAspectRatio
	}
	if src.Calculator.OptimizeStep > 0 {
		dst.Calculator.OptimizeStep = src.Calculator.OptimizeStep
	}
	if src.Calculator.OptimizeWindow > 0 {
		dst.Calculator.OptimizeWindow = src.Calculator.OptimizeWindow
	}
	if src.Export.DPI > 0 {
		dst.Export.DPI = src.Export.DPI
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvMinBorder)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Calculator.DefaultMinBorder = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportDPI)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Export.DPI = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
