package dirbuild

import (
	"fmt"
	"os"

	"github.com/appcenter/astapp/debug"

	"github.com/goccy/go-yaml"
)

const (
	EnvEnv = "ASTAPP_BUILD_ENV"
)

// LoadEnv reads build variables from $ASTAPP_BUILD_ENV, a YAML or JSON
// object. It returns nil when the variable is unset.
func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	var env map[string]any
	if err := yaml.Unmarshal([]byte(envEnv), &env); err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	if debug.Build() {
		debug.Logf("\nloaded env from $%s: ", EnvEnv)
		debug.LogAny(env)
	}
	return env, nil
}
