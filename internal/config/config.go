package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Content ContentConfig `yaml:"content"`
	Logging LogConfig     `yaml:"logging"`
}

// ServerConfig contains settings for the listener and connection loop
type ServerConfig struct {
	Address        string `yaml:"address"`
	ReadBufferSize int    `yaml:"read_buffer_size"` // bytes taken by the single request read
	ReadTimeout    int    `yaml:"read_timeout"`     // in seconds, 0 disables the deadline
}

// ContentConfig contains the directories handlers serve from
type ContentConfig struct {
	PublicDir string `yaml:"public_dir"`
	DataDir   string `yaml:"data_dir"`
}

// LogConfig contains settings for logging
type LogConfig struct {
	LogToFile   bool   `yaml:"log_to_file"`
	LogFilePath string `yaml:"log_file_path"`
	MaxSize     int    `yaml:"max_size"`    // maximum size in megabytes
	MaxBackups  int    `yaml:"max_backups"` // maximum number of old log files to retain
	MaxAge      int    `yaml:"max_age"`     // maximum number of days to retain old log files
	Compress    bool   `yaml:"compress"`
}

// ReadDeadline returns the per-connection read timeout, zero when disabled
func (s ServerConfig) ReadDeadline() time.Duration {
	if s.ReadTimeout <= 0 {
		return 0
	}
	return time.Duration(s.ReadTimeout) * time.Second
}

// LoadDefault returns a configuration with default values
func LoadDefault() *Config {
	return &Config{
		Server: ServerConfig{
			Address:        "localhost:3000",
			ReadBufferSize: 4096,
			ReadTimeout:    0,
		},
		Content: ContentConfig{
			PublicDir: "public",
			DataDir:   "data",
		},
		Logging: LogConfig{
			LogToFile:   false,
			LogFilePath: "httpserver.log",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
			Compress:    true,
		},
	}
}

// Load reads configuration from a file and merges it with default values
func Load(configPath string) (*Config, error) {
	cfg := LoadDefault()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys present in the file override the defaults, including false
	// booleans and zero values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadOrDefault attempts to load configuration from a file
// If the file doesn't exist or can't be parsed, it returns default configuration
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", configPath, err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg = LoadDefault()
		applyEnv(cfg)
	}
	return cfg
}

// FromEnv returns the default configuration with environment overrides applied
func FromEnv() *Config {
	cfg := LoadDefault()
	applyEnv(cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HTTPSERVER_ADDR"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("HTTPSERVER_PUBLIC_DIR"); v != "" {
		cfg.Content.PublicDir = v
	}
	if v := os.Getenv("HTTPSERVER_DATA_DIR"); v != "" {
		cfg.Content.DataDir = v
	}
}
