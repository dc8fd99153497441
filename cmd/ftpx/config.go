package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"

	"github.com/c2fo/ftpx/backend/sftp"
)

const defaultLogLevel = "info"

// Config is the on-disk configuration of the ftpx command.  Flags given on the command line win over the file.
type Config struct {
	URL      string     `yaml:"url"`
	LogLevel string     `yaml:"log_level"`
	FTP      FTPConfig  `yaml:"ftp"`
	SFTP     SFTPConfig `yaml:"sftp"`
}

// FTPConfig carries the settings of backend/ftp that make sense in a file.
type FTPConfig struct {
	Protocol    string        `yaml:"protocol"`
	DisableEPSV *bool         `yaml:"disable_epsv"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Debug       bool          `yaml:"debug"`
}

// SFTPConfig embeds backend/sftp options so every serializable field is available under "sftp:".
type SFTPConfig struct {
	sftp.Options `yaml:",inline"`
	// InsecureKnownHosts disables host key checking.
	InsecureKnownHosts bool `yaml:"insecure_known_hosts"`
}

// ParseConfig parses YAML configuration data.  Missing values get defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return cfg, nil
}

// LoadConfig reads the file at p.  An empty path returns the defaults.  A leading "~" is expanded.
func LoadConfig(p string) (*Config, error) {
	if p == "" {
		return &Config{LogLevel: defaultLogLevel}, nil
	}

	expanded, err := homedir.Expand(p)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	return ParseConfig(data)
}

// merge applies non-empty flag values over the file configuration.
func (c *Config) merge(url, logLevel string) {
	if url != "" {
		c.URL = url
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}
