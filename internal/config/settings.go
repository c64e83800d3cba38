package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const settingsName = "simsvc"

// Settings are the runtime options of the simsvc binary.
type Settings struct {
	LogLevel    string `mapstructure:"logLevel"`
	InputFormat string `mapstructure:"inputFormat"`
	InputPath   string `mapstructure:"inputPath"`
	OutputPath  string `mapstructure:"outputPath"`
	OutputJSON  bool   `mapstructure:"outputJSON"`
}

// LoadSettings reads simsvc.yaml from dir if present, then MONSTERWORLD_*
// environment overrides. A missing file leaves the defaults in place.
func LoadSettings(dir string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("logLevel", "info")
	v.SetDefault("inputFormat", "stream")
	v.SetDefault("inputPath", "-")
	v.SetDefault("outputPath", "")
	v.SetDefault("outputJSON", false)

	v.SetConfigName(settingsName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("MONSTERWORLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	switch s.InputFormat {
	case "stream", "yaml":
	default:
		return nil, fmt.Errorf("unknown input format %q", s.InputFormat)
	}
	return &s, nil
}
