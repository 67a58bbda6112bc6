package bootstrap

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

const envPrefix = "DYFLISSAN"

type Config struct {
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	LogOutput  string `mapstructure:"LOG_OUTPUT"`
	ShowBanner bool   `mapstructure:"SHOW_BANNER"`
}

// Setup reads cfgPath if it exists. Missing files are not an error: the game
// is playable with defaults, and DYFLISSAN_* environment variables override
// both.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("SHOW_BANNER", true)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
