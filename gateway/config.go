package gateway

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alovak/paystack-gateway/gateway/models"
	"github.com/alovak/paystack-gateway/internal/paystack"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Config is a configuration for the gateway application
type Config struct {
	HTTPAddr string `yaml:"http_addr"`
	// SecretKey authenticates every upstream call. It is never compiled in;
	// set PAYSTACK_SECRET_KEY (or the legacy AUTH) or the config file.
	SecretKey string `yaml:"secret_key"`
	BaseURL   string `yaml:"base_url"`
	// UpstreamTimeout bounds a single upstream call.
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`
	// CustomerEmail is sent with every transaction initialization.
	CustomerEmail string `yaml:"customer_email"`
	// CustomersEnabled mounts the create-customer and customers routes.
	CustomersEnabled bool `yaml:"customers_enabled"`
	// ForwardUpstreamErrors relays the upstream error body instead of the
	// generic "Request failed with status code N" message.
	ForwardUpstreamErrors bool `yaml:"forward_upstream_errors"`
	// StaticDir, when set, is served ahead of the API with history fallback.
	StaticDir      string           `yaml:"static_dir"`
	AllowedOrigins []string         `yaml:"allowed_origins"`
	LogLevel       string           `yaml:"log_level"`
	Products       []models.Product `yaml:"products"`
}

func DefaultConfig() *Config {
	products := make([]models.Product, len(DefaultProducts))
	copy(products, DefaultProducts)

	return &Config{
		HTTPAddr:         "localhost:3000",
		BaseURL:          paystack.DefaultBaseURL,
		UpstreamTimeout:  30 * time.Second,
		CustomerEmail:    "customer@email.com",
		CustomersEnabled: true,
		LogLevel:         "info",
		Products:         products,
	}
}

// LoadConfig layers the YAML file at path (optional) and then the
// environment read through getenv over DefaultConfig.
func LoadConfig(path string, getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if getenv == nil {
		getenv = os.Getenv
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		c.HTTPAddr = ":" + v
	}
	if v := getenv("HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := getenv("AUTH"); v != "" {
		c.SecretKey = v
	}
	if v := getenv("PAYSTACK_SECRET_KEY"); v != "" {
		c.SecretKey = v
	}
	if v := getenv("PAYSTACK_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := getenv("CUSTOMER_EMAIL"); v != "" {
		c.CustomerEmail = v
	}
	if v := getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, o)
			}
		}
	}
	if v := getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("UPSTREAM_TIMEOUT: %w", err)
		}
		c.UpstreamTimeout = d
	}
	for key, dst := range map[string]*bool{
		"CUSTOMERS_ENABLED":       &c.CustomersEnabled,
		"FORWARD_UPSTREAM_ERRORS": &c.ForwardUpstreamErrors,
	} {
		v := getenv(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("secret key is required: set PAYSTACK_SECRET_KEY")
	}
	if c.HTTPAddr == "" {
		return errors.New("http address is required")
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("upstream timeout must be positive")
	}
	if len(c.Products) == 0 {
		return errors.New("at least one product is required")
	}
	if _, err := NewCatalog(c.Products); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel, empty meaning info.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
