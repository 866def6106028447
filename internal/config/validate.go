package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/easilogin/easidesk/internal/errors"
)

// MinInterval is the shortest poll cadence accepted. Anything faster just
// hammers a service whose numbers only move once per request.
const MinInterval = 500 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but easidesk only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Update easidesk, or remove the version field to use defaults.")
	}

	if err := validateAPIBase(cfg.APIBase); err != nil {
		return err
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Poll interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use at least %s, e.g. interval: 5s", MinInterval))
	}

	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			"Request timeout must be positive",
			"Use a duration like timeout: 4s")
	}

	if cfg.Serve.Port < 1 || cfg.Serve.Port > 65535 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid serve port %d", cfg.Serve.Port),
			"Pick a port between 1 and 65535 in the 'serve' section.")
	}

	return nil
}

func validateAPIBase(base string) error {
	if base == "" {
		return errors.New(errors.ErrConfig,
			"api_base is empty",
			"Set api_base to the FastLogin service URL, e.g. "+DefaultAPIBase)
	}

	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' is not a valid URL", base),
			"api_base should look like "+DefaultAPIBase)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unsupported scheme '%s' in api_base", u.Scheme),
			"Only http and https are supported.")
	}

	return nil
}
