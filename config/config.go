package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	SiteBaseURL string `validate:"required,url"`
	// Turnstile challenge verification
	TurnstileSecret   string `validate:"required"`
	TurnstileEndpoint string `validate:"required,url"`
	// Resend email dispatch
	ResendAPIKey string `validate:"required"`
	FromEmail    string `validate:"required,email"`
	FromName     string
	// Destination mailboxes: one override slot per form category plus a
	// default fallback. Overrides are optional; the default is not.
	MailboxDefault      string `validate:"required,email"`
	MailboxPromo        string `validate:"omitempty,email"`
	MailboxAppointments string `validate:"omitempty,email"`
	MailboxEvents       string `validate:"omitempty,email"`
	MailboxReviews      string `validate:"omitempty,email"`
	// Paths on the site the browser is redirected to after a form post
	SuccessPath string
	ErrorPath   string
	// Outbound call budgets
	VerifyTimeout time.Duration
	SendTimeout   time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env when present (local development); production uses real env
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		SiteBaseURL: strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:3000"), "/"),

		TurnstileSecret:   getEnv("TURNSTILE_SECRET_KEY", ""),
		TurnstileEndpoint: getEnv("TURNSTILE_VERIFY_URL", "https://challenges.cloudflare.com/turnstile/v0/siteverify"),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("MAIL_FROM_EMAIL", ""),
		FromName:     getEnv("MAIL_FROM_NAME", "Velvet & Vine Boutique"),

		MailboxDefault:      getEnv("LEADS_MAILBOX_DEFAULT", ""),
		MailboxPromo:        getEnv("LEADS_MAILBOX_PROMO", ""),
		MailboxAppointments: getEnv("LEADS_MAILBOX_APPOINTMENTS", ""),
		MailboxEvents:       getEnv("LEADS_MAILBOX_EVENTS", ""),
		MailboxReviews:      getEnv("LEADS_MAILBOX_REVIEWS", ""),

		SuccessPath: getEnv("LEADS_SUCCESS_PATH", "/thank-you"),
		ErrorPath:   getEnv("LEADS_ERROR_PATH", "/contact"),

		VerifyTimeout: time.Duration(getEnvInt("VERIFY_TIMEOUT_SECONDS", 5)) * time.Second,
		SendTimeout:   time.Duration(getEnvInt("SEND_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on missing or malformed required configuration so the
// server never attempts outbound calls with empty credentials.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("config: %s failed %q validation (env %s)", fe.Field(), fe.Tag(), envNameFor(fe.Field()))
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func envNameFor(field string) string {
	names := map[string]string{
		"SiteBaseURL":         "SITE_BASE_URL",
		"TurnstileSecret":     "TURNSTILE_SECRET_KEY",
		"TurnstileEndpoint":   "TURNSTILE_VERIFY_URL",
		"ResendAPIKey":        "RESEND_API_KEY",
		"FromEmail":           "MAIL_FROM_EMAIL",
		"MailboxDefault":      "LEADS_MAILBOX_DEFAULT",
		"MailboxPromo":        "LEADS_MAILBOX_PROMO",
		"MailboxAppointments": "LEADS_MAILBOX_APPOINTMENTS",
		"MailboxEvents":       "LEADS_MAILBOX_EVENTS",
		"MailboxReviews":      "LEADS_MAILBOX_REVIEWS",
	}
	if name, ok := names[field]; ok {
		return name
	}
	return field
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
