// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/key"
)

// Backend holds the resolved settings used to talk to the download service.
type Backend struct {
	BaseURL   string        `validate:"required,url"`
	Timeout   time.Duration `validate:"gte=0"`
	UserAgent string        `validate:"required"`
}

var validate = validator.New()

// LoadBackend reads the backend settings from the active configuration and validates them.
func LoadBackend() (*Backend, error) {
	b := &Backend{
		BaseURL:   strings.TrimRight(strings.TrimSpace(viper.GetString(key.APIBaseURL)), "/"),
		Timeout:   time.Duration(viper.GetInt(key.APITimeout)) * time.Second,
		UserAgent: viper.GetString(key.APIUserAgent),
	}

	if err := validate.Struct(b); err != nil {
		return nil, fmt.Errorf("invalid backend configuration (%s): %w", key.APIBaseURL, err)
	}

	if strings.ContainsAny(b.BaseURL, "?#") {
		return nil, fmt.Errorf("invalid backend configuration (%s): base url must not carry a query or fragment", key.APIBaseURL)
	}

	return b, nil
}
