package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cartology/tripquote/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Directory  DirectoryConfig  `validate:"required"`
	Branding   BrandingConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// DirectoryConfig points at the external client/supplier directory. Both
// lists are fetched on demand with a hard timeout; there is no local copy.
type DirectoryConfig struct {
	BaseURL    string        `mapstructure:"base_url" validate:"required,url"`
	Timeout    time.Duration `validate:"required"`
	RetryMax   int           `mapstructure:"retry_max"`
	AuthHeader string        `mapstructure:"auth_header"`
}

// BrandingConfig carries the document header defaults.
type BrandingConfig struct {
	LogoURL     string `mapstructure:"logo_url"`
	CompanyName string `mapstructure:"company_name"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/tripquote")

	v.SetEnvPrefix("TRIPQUOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeAPI))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("directory.base_url", "http://localhost:9090")
	v.SetDefault("directory.timeout", "20s")
	v.SetDefault("directory.retry_max", 2)
	v.SetDefault("branding.company_name", "Cartology Travel Ltd")
	v.SetDefault("branding.logo_url", "https://cdn.cartologytravel.com/brand/logo.png")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests, bypassing viper entirely.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Directory: DirectoryConfig{
			BaseURL:  "http://localhost:9090",
			Timeout:  20 * time.Second,
			RetryMax: 2,
		},
		Branding: BrandingConfig{
			CompanyName: "Cartology Travel Ltd",
		},
	}
}
