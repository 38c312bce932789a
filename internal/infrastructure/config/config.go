package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Device types accepted in the house seed.
const (
	DeviceTypeThermometer = "thermometer"
	DeviceTypePowerSocket = "power_socket"
)

// Config is the root configuration structure for the smart house.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
	Devices DevicesConfig `yaml:"devices"`
	House   HouseConfig   `yaml:"house"`
}

// SiteConfig contains site-specific information.
type SiteConfig struct {
	Name string `yaml:"name"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// ReportConfig controls the periodic status report.
type ReportConfig struct {
	// Interval between reports. Zero prints a single report at startup.
	Interval time.Duration `yaml:"interval"`
}

// DevicesConfig contains device defaults.
type DevicesConfig struct {
	// DefaultSocketWatts is the rating given to sockets declared without one.
	DefaultSocketWatts int `yaml:"default_socket_watts"`
}

// HouseConfig declares the rooms and devices the house starts with.
type HouseConfig struct {
	Rooms []RoomConfig `yaml:"rooms"`
}

// RoomConfig declares one room.
type RoomConfig struct {
	Name    string         `yaml:"name"`
	Devices []DeviceConfig `yaml:"devices"`
}

// DeviceConfig declares one device. Type selects which fields apply.
type DeviceConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Power socket fields
	Description string `yaml:"description,omitempty"`
	Rating      int    `yaml:"rating,omitempty"`

	// Thermometer fields
	Temperature TemperatureConfig `yaml:"temperature,omitempty"`
}

// TemperatureConfig is a thermometer reading.
type TemperatureConfig struct {
	Unit  string  `yaml:"unit"` // celsius or fahrenheit
	Value float64 `yaml:"value"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: SMARTHOME_SECTION_KEY
// For example: SMARTHOME_LOG_LEVEL, SMARTHOME_REPORT_INTERVAL
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration with an empty house.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name: "Smart House",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Devices: DevicesConfig{
			DefaultSocketWatts: 220,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SMARTHOME_SITE_NAME"); v != "" {
		cfg.Site.Name = v
	}

	// Logging
	if v := os.Getenv("SMARTHOME_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SMARTHOME_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	// Report
	if v := os.Getenv("SMARTHOME_REPORT_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SMARTHOME_REPORT_INTERVAL: %w", err)
		}
		cfg.Report.Interval = d
	}

	return nil
}

// Validate checks the configuration for errors.
// Every problem found is reported, not just the first.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Site.Name) == "" {
		errs = append(errs, "site.name is required")
	}

	if c.Report.Interval < 0 {
		errs = append(errs, "report.interval must not be negative")
	}

	if c.Devices.DefaultSocketWatts < 0 {
		errs = append(errs, "devices.default_socket_watts must not be negative")
	}

	for i, room := range c.House.Rooms {
		if strings.TrimSpace(room.Name) == "" {
			errs = append(errs, fmt.Sprintf("house.rooms[%d].name is required", i))
		}
		for j, d := range room.Devices {
			errs = append(errs, validateDevice(fmt.Sprintf("house.rooms[%d].devices[%d]", i, j), d)...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// validateDevice returns the problems with one device declaration.
func validateDevice(path string, d DeviceConfig) []string {
	var errs []string

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, path+".name is required")
	}

	switch d.Type {
	case DeviceTypeThermometer:
		switch strings.ToLower(d.Temperature.Unit) {
		case "", "celsius", "fahrenheit":
		default:
			errs = append(errs, fmt.Sprintf("%s.temperature.unit %q must be celsius or fahrenheit", path, d.Temperature.Unit))
		}
	case DeviceTypePowerSocket:
		if d.Rating < 0 {
			errs = append(errs, path+".rating must not be negative")
		}
	default:
		errs = append(errs, fmt.Sprintf("%s.type %q must be %s or %s", path, d.Type, DeviceTypeThermometer, DeviceTypePowerSocket))
	}

	return errs
}
