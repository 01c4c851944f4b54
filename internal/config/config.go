// Package config contains the functionality to load environment variables into a golang-based struct for accessibility
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultBaseURL is the Paystack API root every request is resolved against
const DefaultBaseURL = "https://api.paystack.co"

// Config defines the structure of env vars read once when a client is constructed
type Config struct {
	SecretKey string        `envconfig:"PAYSTACK_SECRET"`
	BaseURL   string        `envconfig:"PAYSTACK_BASE_URL" default:"https://api.paystack.co"`
	Timeout   time.Duration `envconfig:"PAYSTACK_TIMEOUT" default:"10s"`
	Debug     bool          `envconfig:"PAYSTACK_DEBUG" default:"false"`
	LogFile   string        `envconfig:"PAYSTACK_LOG_FILE"`

	// TimeoutSet reports whether PAYSTACK_TIMEOUT was present rather than defaulted
	TimeoutSet bool `ignored:"true"`
}

// Load loads the env vars to the project in a defined go struct for accessibility
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration data, %w", err)
	}
	_, cfg.TimeoutSet = os.LookupEnv("PAYSTACK_TIMEOUT")
	return &cfg, nil
}
