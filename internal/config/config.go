package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBConn   string
	LogLevel string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash of the admin password

	CoinGeckoURL    string
	AlphaVantageURL string
	AlphaVantageKey string // optional; stock quotes are skipped without it
	ECBURL          string

	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SenderEmail   string
	ReminderEmail string // recipient of due-payment reminders
	ReminderCron  string // cron expression for the reminder job
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		DBConn:   getEnv("DB_CONN", "host=localhost port=5432 user=gf password=gf dbname=gf sslmode=disable"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@gerenciamentofamiliar.site"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		CoinGeckoURL:    getEnv("COINGECKO_URL", "https://api.coingecko.com/api/v3"),
		AlphaVantageURL: getEnv("ALPHAVANTAGE_URL", "https://www.alphavantage.co/query"),
		AlphaVantageKey: getEnv("ALPHAVANTAGE_KEY", ""),
		ECBURL:          getEnv("ECB_URL", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"),

		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", ""),
		ReminderEmail: getEnv("REMINDER_EMAIL", ""),
		ReminderCron:  getEnv("REMINDER_CRON", "0 9 * * *"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
