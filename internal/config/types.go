package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultAPIBase is the local FastLogin service address the dashboard
// polls when nothing else is configured.
const DefaultAPIBase = "http://127.0.0.1:24300"

// Config represents the complete .easidesk.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// APIBase is the base URL of the FastLogin service. The dashboard
	// polls {APIBase}/metrics and the accounts page reads
	// {APIBase}/getData/SSOLOGIN.
	APIBase string `yaml:"api_base" mapstructure:"api_base"`

	// Interval is the fixed cadence between metrics fetches.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout bounds each individual HTTP request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	Serve ServeConfig `yaml:"serve" mapstructure:"serve"`
}

// ServeConfig controls the built-in stub API server ('easidesk serve').
type ServeConfig struct {
	// Addr is the interface to bind. The stub is a development aid and
	// binds loopback only by default.
	Addr string `yaml:"addr" mapstructure:"addr"`

	Port int `yaml:"port" mapstructure:"port"`
}

// DefaultConfig returns a config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		APIBase:  DefaultAPIBase,
		Interval: 5 * time.Second,
		Timeout:  4 * time.Second,
		Serve: ServeConfig{
			Addr: "127.0.0.1",
			Port: 24300,
		},
	}
}
