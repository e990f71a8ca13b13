package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath   = "./config.yaml"
	defaultListenAddr   = ":8000"
	defaultLogLevel     = "info"
	defaultMaxBodyBytes = 10 << 20
	defaultGCTTL        = 24 * time.Hour
	defaultGCInterval   = 30 * time.Minute
)

type Config struct {
	ListenAddr     string       `yaml:"listen_addr" json:"listen_addr"`
	RootDir        string       `yaml:"root_dir" json:"root_dir"`
	VersionsDir    string       `yaml:"versions_dir" json:"versions_dir"`
	FrontendDir    string       `yaml:"frontend_dir" json:"frontend_dir"`
	LogLevel       string       `yaml:"log_level" json:"log_level"`
	MaxBodyBytes   int64        `yaml:"max_body_bytes" json:"max_body_bytes"`
	MetricsEnabled *bool        `yaml:"metrics_enabled" json:"metrics_enabled"`
	GC             GCConfig     `yaml:"gc" json:"gc"`
	Export         ExportConfig `yaml:"export" json:"export"`
}

// GCConfig управляет фоновой очисткой брошенных временных файлов.
type GCConfig struct {
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
	Interval time.Duration `yaml:"interval" json:"interval"`
}

// ExportConfig описывает копирование финальной версии в папку загрузок.
type ExportConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	Dir         string `yaml:"dir" json:"dir"`
	FallbackDir string `yaml:"fallback_dir" json:"fallback_dir"`
}

// Load читает .env и YAML-конфигурацию, применяет ENV-переопределения и заполняет дефолты.
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	var c Config
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// без файла работаем на дефолтах
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err = c.applyEnv(); err != nil {
		return nil, err
	}
	c.applyDefaults()

	return &c, nil
}

// MetricsOn сообщает, нужно ли поднимать /metrics.
func (c *Config) MetricsOn() bool {
	return c.MetricsEnabled == nil || *c.MetricsEnabled
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("ROOT_DIR"); v != "" {
		c.RootDir = v
	}
	if v := os.Getenv("VERSIONS_DIR"); v != "" {
		c.VersionsDir = v
	}
	if v := os.Getenv("FRONTEND_DIR"); v != "" {
		c.FrontendDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_BODY_BYTES: %w", err)
		}
		c.MaxBodyBytes = n
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED: %w", err)
		}
		c.MetricsEnabled = &on
	}
	if v := os.Getenv("GC_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid GC_TTL: %w", err)
		}
		c.GC.TTL = d
	}
	if v := os.Getenv("GC_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid GC_INTERVAL: %w", err)
		}
		c.GC.Interval = d
	}
	if v := os.Getenv("EXPORT_ENABLED"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid EXPORT_ENABLED: %w", err)
		}
		c.Export.Enabled = on
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv("EXPORT_FALLBACK_DIR"); v != "" {
		c.Export.FallbackDir = v
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.RootDir == "" {
		c.RootDir = "."
	}
	if c.VersionsDir == "" {
		c.VersionsDir = filepath.Join(c.RootDir, "versions")
	}
	if c.FrontendDir == "" {
		c.FrontendDir = filepath.Join(c.RootDir, "frontend")
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
	// Ноль означает «не задано» и заменяется дефолтом; отрицательные значения отключают GC.
	if c.GC.TTL == 0 {
		c.GC.TTL = defaultGCTTL
	}
	if c.GC.Interval == 0 {
		c.GC.Interval = defaultGCInterval
	}
	if c.Export.Dir == "" {
		c.Export.Dir = defaultDownloadsDir()
	}
	if c.Export.FallbackDir == "" {
		c.Export.FallbackDir = filepath.Join(c.RootDir, "exports")
	}
}

func defaultDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, "Downloads")
}
