// Package config provides configuration loading and validation for netreport.
package config

import (
	"fmt"
	"net/netip"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in defaults. The tool needs no configuration file; these values
// apply when none is given.
const (
	// DefaultProbeTarget is the IPv4 address probed for outbound reachability.
	DefaultProbeTarget = "8.8.8.8"
	// DefaultProbePort is the TCP port probed on the target.
	DefaultProbePort = 53
	// DefaultProbeTimeout bounds the probe's connection attempt.
	DefaultProbeTimeout = "2s"
	// DefaultReportDeadline bounds how long the report waits for the probe.
	DefaultReportDeadline = "2s"
)

// Config represents the netreport configuration.
type Config struct {
	Probe   ProbeSettings   `yaml:"probe"`
	Report  ReportSettings  `yaml:"report"`
	Logging LoggingSettings `yaml:"logging"`
}

// ProbeSettings configures the reachability probe endpoint and timeout.
type ProbeSettings struct {
	Target  string `yaml:"target"`
	Port    int    `yaml:"port"`
	Timeout string `yaml:"timeout"`
}

// ReportSettings configures the report coordinator.
type ReportSettings struct {
	Deadline string `yaml:"deadline"`
}

// LoggingSettings contains logging configuration.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Probe: ProbeSettings{
			Target:  DefaultProbeTarget,
			Port:    DefaultProbePort,
			Timeout: DefaultProbeTimeout,
		},
		Report: ReportSettings{
			Deadline: DefaultReportDeadline,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "human",
		},
	}
}

// Load reads and parses the configuration file. Settings absent from the
// file keep their default values, so a partial file is valid.
//
//nolint:gosec // G304: Config path is from command-line argument
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate performs basic validation on the configuration.
func (c *Config) validate() error {
	addr, err := netip.ParseAddr(c.Probe.Target)
	if err != nil || !addr.Is4() {
		return fmt.Errorf("probe.target must be an IPv4 address, got %q", c.Probe.Target)
	}

	if c.Probe.Port <= 0 || c.Probe.Port > 65535 {
		return fmt.Errorf("probe.port must be between 1 and 65535")
	}

	if _, err := c.GetProbeTimeout(); err != nil {
		return err
	}

	if _, err := c.GetReportDeadline(); err != nil {
		return err
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}

	switch c.Logging.Format {
	case "json", "human":
	default:
		return fmt.Errorf("logging.format must be json or human")
	}

	return nil
}

// GetProbeTimeout parses and returns the probe timeout duration.
func (c *Config) GetProbeTimeout() (time.Duration, error) {
	duration, err := time.ParseDuration(c.Probe.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid probe.timeout: %w", err)
	}

	if duration <= 0 {
		return 0, fmt.Errorf("probe.timeout must be positive")
	}

	return duration, nil
}

// GetReportDeadline parses and returns the report deadline duration.
func (c *Config) GetReportDeadline() (time.Duration, error) {
	duration, err := time.ParseDuration(c.Report.Deadline)
	if err != nil {
		return 0, fmt.Errorf("invalid report.deadline: %w", err)
	}

	if duration <= 0 {
		return 0, fmt.Errorf("report.deadline must be positive")
	}

	return duration, nil
}
