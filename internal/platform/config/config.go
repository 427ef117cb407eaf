package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "submitr/internal/pkg/errors"
)

// SecretEnv names the environment variable holding the HMAC signing key.
// The secret is only ever read from the environment and is never part of
// the Config struct, so it cannot end up in a config file or a log dump.
const SecretEnv = "SUBMITR_SECRET"

const defaultEndpoint = "https://b12.io/apply/submission"

type Config struct {
	Endpoint EndpointConfig `mapstructure:"endpoint"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type EndpointConfig struct {
	URL string `mapstructure:"url"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the optional config file at path and applies SUBMITR_* env
// overrides. A missing file is fine: CI runs are expected to be env-only.
func Load(path string) (*Config, error) {
	viper.SetDefault("endpoint.url", defaultEndpoint)
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	viper.SetEnvPrefix("submitr")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Endpoint.URL == "" {
		return nil, apperrors.Config("endpoint URL is empty")
	}

	return &config, nil
}

// Secret returns the HMAC key from the environment.
func Secret() (string, error) {
	return RequireEnv(SecretEnv)
}

// RequireEnv returns the trimmed value of the named variable. An unset or
// blank variable is a fatal configuration error for a submitter run.
func RequireEnv(name string) (string, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return "", apperrors.Config(fmt.Sprintf("%s environment variable is not set", name))
	}
	return value, nil
}
