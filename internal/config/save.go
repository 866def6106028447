package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/easilogin/easidesk/internal/errors"
)

// fileConfig is the on-disk YAML shape. Durations are written as strings
// ("5s") so saved files round-trip through the loader's decode hooks.
type fileConfig struct {
	Version  int             `yaml:"version"`
	APIBase  string          `yaml:"api_base"`
	Interval string          `yaml:"interval"`
	Timeout  string          `yaml:"timeout"`
	Serve    fileServeConfig `yaml:"serve"`
}

type fileServeConfig struct {
	Addr string `yaml:"addr"`
	Port int    `yaml:"port"`
}

const fileHeader = `# easidesk configuration
# The shell polls {api_base}/metrics on the configured interval.
# Run 'easidesk' to open the dashboard, 'easidesk serve' for a local stub API.

`

// Save writes the config to the given path as YAML. An empty path saves to
// .easidesk.yaml in the current directory.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(".", ConfigFileName)
	}

	out := fileConfig{
		Version:  cfg.Version,
		APIBase:  cfg.APIBase,
		Interval: cfg.Interval.String(),
		Timeout:  cfg.Timeout.String(),
		Serve: fileServeConfig{
			Addr: cfg.Serve.Addr,
			Port: cfg.Serve.Port,
		},
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if err := os.WriteFile(path, []byte(fileHeader+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}

	return nil
}
