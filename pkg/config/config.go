package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Settlement gateway
	SettlementGatewayURL     string
	SettlementAPIKey         string
	SettlementRequestTimeout time.Duration

	// How long a disbursement waits in-band for confirmation before the run
	// is recorded Pending and handed to the reconciler.
	SettlementConfirmTimeout time.Duration
	SettlementPollInterval   time.Duration

	ReconcileInterval time.Duration
	ReconcileBatch    int

	// How old a run lease must be before a new acquisition may steal it.
	// Recovers accounts wedged by a holder that died before committing a
	// run. Must comfortably exceed the confirmation timeout.
	RunLeaseTTL time.Duration

	// Ledger write retry budget after a confirmed settlement.
	LedgerRetryMax     int
	LedgerRetryMaxWait time.Duration

	CurrencyCode string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SETTLEMENT_GATEWAY_URL", "http://localhost:9090")
	viper.SetDefault("SETTLEMENT_API_KEY", "")
	viper.SetDefault("SETTLEMENT_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("SETTLEMENT_CONFIRM_TIMEOUT", "45s")
	viper.SetDefault("SETTLEMENT_POLL_INTERVAL", "3s")
	viper.SetDefault("RECONCILE_INTERVAL", "1m")
	viper.SetDefault("RECONCILE_BATCH", 25)
	viper.SetDefault("RUN_LEASE_TTL", "15m")
	viper.SetDefault("LEDGER_RETRY_MAX", 5)
	viper.SetDefault("LEDGER_RETRY_MAX_WAIT", "30s")
	viper.SetDefault("CURRENCY_CODE", "USDC")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:              viper.GetString("PGSQL_URL"),
		Port:                     viper.GetString("PORT"),
		IsProduction:             viper.GetBool("IS_PRODUCTION"),
		SettlementGatewayURL:     viper.GetString("SETTLEMENT_GATEWAY_URL"),
		SettlementAPIKey:         viper.GetString("SETTLEMENT_API_KEY"),
		SettlementRequestTimeout: viper.GetDuration("SETTLEMENT_REQUEST_TIMEOUT"),
		SettlementConfirmTimeout: viper.GetDuration("SETTLEMENT_CONFIRM_TIMEOUT"),
		SettlementPollInterval:   viper.GetDuration("SETTLEMENT_POLL_INTERVAL"),
		ReconcileInterval:        viper.GetDuration("RECONCILE_INTERVAL"),
		ReconcileBatch:           viper.GetInt("RECONCILE_BATCH"),
		RunLeaseTTL:              viper.GetDuration("RUN_LEASE_TTL"),
		LedgerRetryMax:           viper.GetInt("LEDGER_RETRY_MAX"),
		LedgerRetryMaxWait:       viper.GetDuration("LEDGER_RETRY_MAX_WAIT"),
		CurrencyCode:             viper.GetString("CURRENCY_CODE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	return cfg, nil
}
