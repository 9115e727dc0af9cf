package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress             string
	DatabaseURI            string
	PaymentProviderAddress string
	MailRelayAddress       string
	AdminTokenSecret       string
	AdminPasswordHash      string
	InvoiceDueAfter        time.Duration
	MinimumSeatFee         float64
	NotificationQueueSize  int
	NotificationWorkers    int
	MailSendTimeout        time.Duration
	ShutdownTimeout        time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultAdminTokenSecret = "change-me-in-production"
	defaultInvoiceDueAfter  = 14 * 24 * time.Hour
	defaultMinimumSeatFee   = 100.0
	defaultNotifQueueSize   = 64
	defaultNotifWorkers     = 2
	defaultMailSendTimeout  = 10 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
// Environment variables take precedence as the default for each flag.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:             getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:            getString(lookup, "DATABASE_URI", ""),
		PaymentProviderAddress: getString(lookup, "PAYMENT_PROVIDER_ADDRESS", ""),
		MailRelayAddress:       getString(lookup, "MAIL_RELAY_ADDRESS", ""),
		AdminTokenSecret:       getString(lookup, "ADMIN_TOKEN_SECRET", defaultAdminTokenSecret),
		AdminPasswordHash:      getString(lookup, "ADMIN_PASSWORD_HASH", ""),
		InvoiceDueAfter:        getDuration(lookup, "INVOICE_DUE_AFTER", defaultInvoiceDueAfter),
		MinimumSeatFee:         getFloat(lookup, "MINIMUM_SEAT_FEE", defaultMinimumSeatFee),
		NotificationQueueSize:  getInt(lookup, "NOTIFICATION_QUEUE_SIZE", defaultNotifQueueSize),
		NotificationWorkers:    getInt(lookup, "NOTIFICATION_WORKERS", defaultNotifWorkers),
		MailSendTimeout:        getDuration(lookup, "MAIL_SEND_TIMEOUT", defaultMailSendTimeout),
		ShutdownTimeout:        getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("coursedesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	dueAfterStr := cfg.InvoiceDueAfter.String()
	shutdownStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PaymentProviderAddress, "p", cfg.PaymentProviderAddress, "payment provider base URL")
	fs.StringVar(&cfg.MailRelayAddress, "m", cfg.MailRelayAddress, "mail relay base URL")
	fs.StringVar(&cfg.AdminTokenSecret, "token-secret", cfg.AdminTokenSecret, "secret for signing admin tokens")
	fs.StringVar(&dueAfterStr, "invoice-due", dueAfterStr, "offset between invoice issue and due date")
	fs.Float64Var(&cfg.MinimumSeatFee, "minimum-fee", cfg.MinimumSeatFee, "fallback per-seat fee when a schedule has no pricing")
	fs.IntVar(&cfg.NotificationQueueSize, "notify-queue", cfg.NotificationQueueSize, "notification queue capacity")
	fs.IntVar(&cfg.NotificationWorkers, "notify-workers", cfg.NotificationWorkers, "number of concurrent notification workers")
	fs.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.InvoiceDueAfter, err = time.ParseDuration(dueAfterStr); err != nil {
		return nil, fmt.Errorf("invalid invoice due offset: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("ADMIN_TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.AdminTokenSecret = string(content)
	}

	if cfg.InvoiceDueAfter <= 0 {
		cfg.InvoiceDueAfter = defaultInvoiceDueAfter
	}
	if cfg.MinimumSeatFee <= 0 {
		cfg.MinimumSeatFee = defaultMinimumSeatFee
	}
	if cfg.NotificationQueueSize <= 0 {
		cfg.NotificationQueueSize = defaultNotifQueueSize
	}
	if cfg.NotificationWorkers <= 0 {
		cfg.NotificationWorkers = defaultNotifWorkers
	}
	if cfg.MailSendTimeout <= 0 {
		cfg.MailSendTimeout = defaultMailSendTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}
	if cfg.PaymentProviderAddress == "" {
		return nil, fmt.Errorf("payment provider address must be provided")
	}
	if cfg.MailRelayAddress == "" {
		return nil, fmt.Errorf("mail relay address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
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
