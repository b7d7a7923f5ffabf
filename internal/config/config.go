package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	Port          string
	DatabaseURL   string
	SQLitePath    string
	LocalTimezone *time.Location
	CheckInterval time.Duration
	SessionSecret string

	InfoBaseURL  string
	InfoTimeout  time.Duration
	OpenAIAPIKey string

	DesktopNotifications bool
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
	NotifyWhatsAppTo     string
}

// Load reads configuration values and prepares defaults where applicable.
func Load() *Config {
	_ = godotenv.Load()

	timezoneName := getenvDefault("LOCAL_TIMEZONE", "Local")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	checkSeconds := ParseIntEnv("CHECK_INTERVAL_SECONDS", 60)
	if checkSeconds <= 0 {
		log.Printf("config: CHECK_INTERVAL_SECONDS must be positive, using 60")
		checkSeconds = 60
	}
	infoSeconds := ParseIntEnv("INFO_TIMEOUT_SECONDS", 15)
	if infoSeconds <= 0 {
		log.Printf("config: INFO_TIMEOUT_SECONDS must be positive, using 15")
		infoSeconds = 15
	}

	return &Config{
		Port:          getenvDefault("PORT", "5000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "medicine_reminder.db"),
		LocalTimezone: location,
		CheckInterval: time.Duration(checkSeconds) * time.Second,
		SessionSecret: getenvDefault("SESSION_SECRET", "medicine_secret_key"),

		InfoBaseURL:  strings.TrimRight(getenvDefault("INFO_BASE_URL", "https://www.1mg.com"), "/"),
		InfoTimeout:  time.Duration(infoSeconds) * time.Second,
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),

		DesktopNotifications: ParseBoolEnv("DESKTOP_NOTIFICATIONS", true),
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		NotifyWhatsAppTo:     os.Getenv("NOTIFY_WHATSAPP_TO"),
	}
}

// WhatsAppEnabled reports whether every Twilio setting needed to forward reminders is present.
func (c *Config) WhatsAppEnabled() bool {
	return c.TwilioAccountSID != "" &&
		c.TwilioAuthToken != "" &&
		c.TwilioWhatsAppNumber != "" &&
		c.NotifyWhatsAppTo != ""
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

// ParseIntEnv returns the integer value for an environment variable or the provided default.
func ParseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as int: %v", key, value, err)
		return def
	}
	return parsed
}

// ParseBoolEnv returns the boolean value for an environment variable or the provided default.
func ParseBoolEnv(key string, def bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as bool: %v", key, value, err)
		return def
	}
	return parsed
}
