package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// APIKeyEnv is the primary variable holding the inference credential.
	APIKeyEnv = "LABELAUDIT_API_KEY"
	// LegacyAPIKeyEnv is consulted when APIKeyEnv is unset.
	LegacyAPIKeyEnv = "API_KEY"
)

// EnvCredentials reads the inference API key from the process environment
// on every call, so rotating the variable takes effect without a restart.
type EnvCredentials struct {
	v *viper.Viper
}

// NewEnvCredentials creates an EnvCredentials bound to APIKeyEnv and LegacyAPIKeyEnv.
func NewEnvCredentials() *EnvCredentials {
	v := viper.New()
	_ = v.BindEnv("api_key", APIKeyEnv, LegacyAPIKeyEnv)
	return &EnvCredentials{v: v}
}

func (c *EnvCredentials) APIKey() string {
	return strings.TrimSpace(c.v.GetString("api_key"))
}

// StaticCredentials is a fixed API key, used by the CLI flag and tests.
type StaticCredentials string

func (s StaticCredentials) APIKey() string {
	return strings.TrimSpace(string(s))
}
