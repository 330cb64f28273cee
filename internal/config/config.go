package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brooksjoey/deploy-kit/internal/logger"
)

// Config is the deployment configuration, loaded once at startup and passed
// explicitly to each action. Field names follow the config file's camelCase
// keys.
//
// BackupEnabled is a pointer so that an explicit `"backupEnabled": false`
// survives defaulting; a missing key means enabled.
type Config struct {
	Environment    string   `json:"environment" yaml:"environment"`
	LogLevel       string   `json:"logLevel" yaml:"logLevel"`
	DeploymentPath string   `json:"deploymentPath" yaml:"deploymentPath"`
	BackupEnabled  *bool    `json:"backupEnabled" yaml:"backupEnabled"`
	Services       []string `json:"services" yaml:"services"`
}

// Default values applied for any key absent from the config file.
const (
	DefaultEnvironment    = "development"
	DefaultLogLevel       = "INFO"
	DefaultDeploymentPath = "/var/www/html"
)

// Default returns the configuration used when no config file is available.
func Default() Config {
	enabled := true
	return Config{
		Environment:    DefaultEnvironment,
		LogLevel:       DefaultLogLevel,
		DeploymentPath: DefaultDeploymentPath,
		BackupEnabled:  &enabled,
		Services:       []string{},
	}
}

// BackupOn reports whether backups are enabled, treating an unset field as
// enabled.
func (c Config) BackupOn() bool {
	return c.BackupEnabled == nil || *c.BackupEnabled
}

// Load reads the configuration file at path and returns a fully defaulted
// Config. Files ending in .yaml or .yml are decoded as YAML, everything else
// as JSON.
//
// A missing, unreadable, or malformed file is never fatal: Load logs a
// warning and returns exactly the defaults, so every command still runs.
func Load(path string) Config {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("[WARN] Config file %s not found, using defaults\n", path)
		return Default()
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cfg)
	default:
		err = json.Unmarshal(raw, &cfg)
	}
	if err != nil {
		logger.Warn("[WARN] Failed to parse config %s: %v. Using defaults\n", path, err)
		return Default()
	}

	return applyDefaults(cfg)
}

// applyDefaults fills every zero-valued field with its documented default.
// Keys present in the file always win.
func applyDefaults(cfg Config) Config {
	def := Default()
	if cfg.Environment == "" {
		cfg.Environment = def.Environment
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.DeploymentPath == "" {
		cfg.DeploymentPath = def.DeploymentPath
	}
	if cfg.BackupEnabled == nil {
		cfg.BackupEnabled = def.BackupEnabled
	}
	if cfg.Services == nil {
		cfg.Services = []string{}
	}
	return cfg
}
