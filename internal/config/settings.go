package config

import (
	"fmt"
	"strings"

	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable settings are read from,
// e.g. ARCEVENTS_LOG_LEVEL or ARCEVENTS_RELAY_BUFFER_SIZE.
const EnvPrefix = "ARCEVENTS"

// Settings is the runtime configuration of the arcevents command.
type Settings struct {
	LogLevel    string      `mapstructure:"log_level"`
	LogFormat   string      `mapstructure:"log_format"`
	Relay       RelayPolicy `mapstructure:"relay"`
	JournalPath string      `mapstructure:"journal"`
	Manifests   []string    `mapstructure:"manifests"`
}

// NewViper returns a viper instance with the settings defaults and the
// ARCEVENTS_* environment bound. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("relay.buffer_size", DefaultRelayBufferSize)
	v.SetDefault("relay.overflow_strategy", OverflowDropNew)
	v.SetDefault("journal", "")
	v.SetDefault("manifests", []string{})
	return v
}

// LoadSettings reads file (YAML, optional) into v and decodes the result.
// Precedence is flags, then environment, then file, then defaults.
func LoadSettings(v *viper.Viper, file string) (*Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, arcerrors.NewConfigError(fmt.Sprintf("failed to read settings file '%s'", file), err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, arcerrors.NewConfigError("failed to decode settings", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.Relay = s.Relay.Normalize()
	return &s, nil
}

// Validate rejects unknown log formats and relay strategies.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.LogFormat) {
	case "", "text", "json":
	default:
		return arcerrors.NewValidationError(fmt.Sprintf("invalid log_format '%s', expected 'text' or 'json'", s.LogFormat), nil)
	}
	if err := s.Relay.Validate(); err != nil {
		return arcerrors.NewValidationError("invalid relay settings", err)
	}
	return nil
}
