package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	BackendAddress   string
	GatewayKeyID     string
	GatewayScriptURL string
	Currency         string
	StoreName        string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress       = ":8090"
	defaultGatewayScriptURL = "https://checkout.razorpay.com/v1/checkout.js"
	defaultCurrency         = "INR"
	defaultStoreName        = "Plate Front"
	defaultRequestTimeout   = 10 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		BackendAddress:   getString(lookup, "BACKEND_ADDRESS", ""),
		GatewayKeyID:     getString(lookup, "GATEWAY_KEY_ID", ""),
		GatewayScriptURL: getString(lookup, "GATEWAY_SCRIPT_URL", defaultGatewayScriptURL),
		Currency:         getString(lookup, "CURRENCY", defaultCurrency),
		StoreName:        getString(lookup, "STORE_NAME", defaultStoreName),
		RequestTimeout:   getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.BackendAddress, "b", cfg.BackendAddress, "Storefront backend base URL")
	fs.StringVar(&cfg.GatewayKeyID, "gateway-key", cfg.GatewayKeyID, "Payment gateway key id")
	fs.StringVar(&cfg.GatewayScriptURL, "gateway-script", cfg.GatewayScriptURL, "Payment gateway hosted script URL")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "Payment currency code")
	fs.StringVar(&cfg.StoreName, "store-name", cfg.StoreName, "Store name shown in the payment UI")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Outbound request timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.BackendAddress == "" {
		return nil, fmt.Errorf("backend address must be provided")
	}

	if cfg.GatewayKeyID == "" {
		return nil, fmt.Errorf("gateway key id must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
