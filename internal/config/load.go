package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyServerName       = "server.name"
	KeyServerVersion    = "server.version"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyArgumentsLenient = "arguments.lenient"
)

// EnvPrefix prefixes every environment variable, e.g. PROOFESSOR_LOG_LEVEL.
const EnvPrefix = "PROOFESSOR"

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerName, DefaultServerName)
	v.SetDefault(KeyServerVersion, DefaultServerVersion)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, string(LogFormatText))
	v.SetDefault(KeyArgumentsLenient, false)
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// Load resolves Options from v.
func Load(v *viper.Viper) (*Options, error) {
	opts := Defaults()

	opts.Name = strings.TrimSpace(v.GetString(KeyServerName))
	if opts.Name == "" {
		return nil, errors.New("server name must not be empty")
	}

	opts.Version = strings.TrimSpace(v.GetString(KeyServerVersion))
	if opts.Version == "" {
		return nil, errors.New("server version must not be empty")
	}

	level, err := ParseLogLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}
	opts.LogLevel = level

	format, err := ParseLogFormat(v.GetString(KeyLogFormat))
	if err != nil {
		return nil, err
	}
	opts.LogFormat = format

	opts.LenientArguments = v.GetBool(KeyArgumentsLenient)

	return opts, nil
}
