package config

import (
	"flag"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddress = ":8080"
	defaultDatabaseDSN   = ""
	defaultEpaySubmitURL = "https://pay.epayapi.com/submit.php"
	defaultLogLevel      = "debug"
	defaultAuthTokenKey  = "f53ac685bbceebd75043e6be2e06ee07"
)

type Config struct {
	ServerAddr      string
	DatabaseDSN     string
	EpaySubmitURL   string
	EpayMerchantID  string
	EpayMerchantKey string
	RevalidateURL   string
	LogLevel        string
	AuthTokenKey    string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		// optional .env next to the binary, missing file is fine
		_ = godotenv.Load()

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "admin server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "database DSN")
		flag.StringVar(&cfg.EpaySubmitURL, "s", defaultEpaySubmitURL, "epay submit endpoint URL")
		flag.StringVar(&cfg.EpayMerchantID, "p", "", "epay merchant id")
		flag.StringVar(&cfg.EpayMerchantKey, "k", "", "epay merchant key")
		flag.StringVar(&cfg.RevalidateURL, "r", "", "frontend revalidation webhook URL")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.AuthTokenKey, "t", defaultAuthTokenKey, "auth token signing key, hex")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if databaseURIEnv := os.Getenv("DATABASE_URI"); databaseURIEnv != "" {
			cfg.DatabaseDSN = databaseURIEnv
		}
		if submitURLEnv := os.Getenv("EPAY_SUBMIT_URL"); submitURLEnv != "" {
			cfg.EpaySubmitURL = submitURLEnv
		}
		if merchantIDEnv := os.Getenv("EPAY_MERCHANT_ID"); merchantIDEnv != "" {
			cfg.EpayMerchantID = merchantIDEnv
		}
		if merchantKeyEnv := os.Getenv("EPAY_MERCHANT_KEY"); merchantKeyEnv != "" {
			cfg.EpayMerchantKey = merchantKeyEnv
		}
		if revalidateURLEnv := os.Getenv("REVALIDATE_URL"); revalidateURLEnv != "" {
			cfg.RevalidateURL = revalidateURLEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if tokenKeyEnv := os.Getenv("AUTH_TOKEN_KEY"); tokenKeyEnv != "" {
			cfg.AuthTokenKey = tokenKeyEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
