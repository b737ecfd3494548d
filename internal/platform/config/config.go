package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	StorageSheets   = "sheets"
	StoragePostgres = "pgsql"
)

const (
	defaultSessionSecret   = "a-very-secret-key-should-be-longer-and-random"
	defaultSessionDuration = 7 * 24 * time.Hour
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	StorageBackend string
	DatabaseURL    string
	RunMigrations  bool

	// Google Sheets storage
	SheetID               string
	SheetsClientEmail     string
	SheetsPrivateKey      string
	SheetsCredentialsFile string

	// Session auth
	AuthPassword      string
	SessionSecret     string
	SessionDuration   time.Duration
	SessionCookieName string
	SessionIssuer     string
	LoginRateLimit    string

	CurrencyCode       string
	CORSAllowedOrigins []string
	PosthogAPIKey      string

	// FinancialYear is the initially selected year, e.g. "2024-25"; empty means the current one.
	FinancialYear string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_BACKEND", StorageSheets)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("GOOGLE_SHEET_ID", "")
	viper.SetDefault("GOOGLE_SHEETS_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_SHEETS_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_SHEETS_CREDENTIALS_FILE", "")
	viper.SetDefault("AUTH_PASSWORD", "")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_DURATION", "168h")
	viper.SetDefault("SESSION_COOKIE_NAME", "session")
	viper.SetDefault("SESSION_ISSUER", "sheets-ledger")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CURRENCY_CODE", "INR")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("FINANCIAL_YEAR", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                  viper.GetString("PORT"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:         viper.GetBool("ENABLE_DB_CHECK"),
		StorageBackend:        strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_BACKEND"))),
		DatabaseURL:           viper.GetString("PGSQL_URL"),
		RunMigrations:         viper.GetBool("RUN_MIGRATIONS"),
		SheetID:               viper.GetString("GOOGLE_SHEET_ID"),
		SheetsClientEmail:     viper.GetString("GOOGLE_SHEETS_CLIENT_EMAIL"),
		SheetsPrivateKey:      normalizePrivateKey(viper.GetString("GOOGLE_SHEETS_PRIVATE_KEY")),
		SheetsCredentialsFile: viper.GetString("GOOGLE_SHEETS_CREDENTIALS_FILE"),
		AuthPassword:          viper.GetString("AUTH_PASSWORD"),
		SessionCookieName:     viper.GetString("SESSION_COOKIE_NAME"),
		SessionIssuer:         viper.GetString("SESSION_ISSUER"),
		LoginRateLimit:        viper.GetString("LOGIN_RATE_LIMIT"),
		CurrencyCode:          strings.ToUpper(viper.GetString("CURRENCY_CODE")),
		CORSAllowedOrigins:    splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:         viper.GetString("POSTHOG_API_KEY"),
		FinancialYear:         viper.GetString("FINANCIAL_YEAR"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageBackend {
	case StorageSheets:
		if cfg.SheetID == "" {
			log.Println("Warning: GOOGLE_SHEET_ID not set. Sheets storage will not function.")
		}
		if cfg.SheetsCredentialsFile == "" && (cfg.SheetsClientEmail == "" || cfg.SheetsPrivateKey == "") {
			log.Println("Warning: neither GOOGLE_SHEETS_CREDENTIALS_FILE nor GOOGLE_SHEETS_CLIENT_EMAIL/GOOGLE_SHEETS_PRIVATE_KEY are set.")
		}
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q (expected %q or %q)", cfg.StorageBackend, StorageSheets, StoragePostgres)
	}

	if cfg.AuthPassword == "" {
		log.Println("Warning: AUTH_PASSWORD not set. Every login attempt will be rejected.")
	}

	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	switch {
	case cfg.SessionSecret != "":
	case cfg.IsProduction:
		// Sessions will not survive a restart.
		secret, err := utils.NewSessionSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		cfg.SessionSecret = secret
		log.Println("Warning: SESSION_SECRET environment variable not set. Generated a random key for this process.")
	default:
		cfg.SessionSecret = defaultSessionSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: SESSION_SECRET environment variable not set. Using default insecure key.")
	}

	sessionDurationStr := viper.GetString("SESSION_DURATION")
	sessionDuration, err := time.ParseDuration(sessionDurationStr)
	if err != nil || sessionDuration <= 0 {
		sessionDuration = defaultSessionDuration
		log.Printf("Warning: Invalid value for SESSION_DURATION ('%s'). Defaulting to %s.\n", sessionDurationStr, sessionDuration.String())
	}
	cfg.SessionDuration = sessionDuration

	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "session"
	}
	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = "INR"
	}

	return cfg, nil
}

// normalizePrivateKey turns the escaped newlines commonly used when a PEM key
// is stored in a single-line env var back into real ones.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
