package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the app reads.
const EnvPrefix = "MATHWORLD_"

// ParseEnvFrom overlays prefixed variables from environ onto target. A nil
// environ means the process environment. Fields whose variable is unset
// keep their current value.
func ParseEnvFrom(target any, prefix string, environ map[string]string) error {
	opts := env.Options{Prefix: prefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
