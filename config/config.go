package config

import (
	"flag"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddress   = ":3000"
	defaultConfigURL       = "https://raw.githubusercontent.com/DenzStoree/denzofc/main/config.json"
	defaultRefreshInterval = 5 * time.Minute
	defaultOrdersFile      = "data/orders.json"
	defaultUpstreamAddr    = "https://www.fayupedia.id"
	defaultPaymentAddr     = "https://app.pakasir.com"
	defaultLogLevel        = "debug"
)

type Config struct {
	ServerAddr      string
	ConfigURL       string
	RefreshInterval time.Duration
	OrdersFile      string
	UpstreamAddr    string
	PaymentAddr     string
	LogLevel        string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		// optional .env next to the binary
		_ = godotenv.Load()

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "panel server address")
		flag.StringVar(&cfg.ConfigURL, "c", defaultConfigURL, "remote config document url")
		flag.DurationVar(&cfg.RefreshInterval, "i", defaultRefreshInterval, "remote config refresh interval")
		flag.StringVar(&cfg.OrdersFile, "f", defaultOrdersFile, "orders file path (empty for in-memory store)")
		flag.StringVar(&cfg.UpstreamAddr, "u", defaultUpstreamAddr, "upstream provider address")
		flag.StringVar(&cfg.PaymentAddr, "p", defaultPaymentAddr, "payment gateway address")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if configURLEnv := os.Getenv("CONFIG_URL"); configURLEnv != "" {
			cfg.ConfigURL = configURLEnv
		}
		if intervalEnv := os.Getenv("CONFIG_REFRESH_INTERVAL"); intervalEnv != "" {
			if d, err := time.ParseDuration(intervalEnv); err == nil {
				cfg.RefreshInterval = d
			}
		}
		if ordersFileEnv, ok := os.LookupEnv("ORDERS_FILE"); ok {
			cfg.OrdersFile = ordersFileEnv
		}
		if upstreamEnv := os.Getenv("UPSTREAM_ADDRESS"); upstreamEnv != "" {
			cfg.UpstreamAddr = upstreamEnv
		}
		if paymentEnv := os.Getenv("PAYMENT_ADDRESS"); paymentEnv != "" {
			cfg.PaymentAddr = paymentEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
