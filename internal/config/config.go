package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Unreala9/metabot/internal/models"
)

// Config holds the application configuration
type Config struct {
	TelegramToken string

	// Privileged identities allowed to mutate the Service Demos list
	// and read the audit history. Empty means no admin commands.
	AdminUserIDs []int64

	// Bot mode configuration
	WebhookMode bool   // If true, use webhook mode; if false, use polling mode
	WebhookURL  string // URL for webhook (required if WebhookMode is true)

	// Gemini fallback; empty key disables the generative fallback.
	GeminiAPIKey string

	// Google audit sink. CredentialsFile plus at least one target ID
	// enables it.
	GoogleCredentialsFile string
	SpreadsheetID         string
	DocumentID            string

	// ClickHouse audit mirror (optional).
	UseClickHouse      bool
	ClickHouseHost     string
	ClickHousePort     int
	ClickHouseDatabase string
	ClickHouseUser     string
	ClickHousePassword string
	ClickHouseUseTLS   bool

	// Social links for the Follow Us menu, in display order.
	FollowLinks []models.NamedLink
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	// Telegram Bot Token (required)
	config.TelegramToken = os.Getenv("BOT_TOKEN")
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	// Admin user IDs (optional, comma-separated)
	if adminIDsStr := os.Getenv("ADMIN_USER_IDS"); adminIDsStr != "" {
		for _, idStr := range strings.Split(adminIDsStr, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid user ID in ADMIN_USER_IDS: %s", idStr)
			}
			config.AdminUserIDs = append(config.AdminUserIDs, id)
		}
	}

	// Bot mode configuration
	config.WebhookMode = os.Getenv("WEBHOOK_MODE") == "true"
	if config.WebhookMode {
		config.WebhookURL = os.Getenv("WEBHOOK_URL")
		if config.WebhookURL == "" {
			return nil, fmt.Errorf("WEBHOOK_URL is required when WEBHOOK_MODE is true")
		}
	}

	// Gemini fallback (optional)
	config.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))

	// Google audit sink (optional)
	config.GoogleCredentialsFile = strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	config.SpreadsheetID = strings.TrimSpace(os.Getenv("GSHEET_ID"))
	config.DocumentID = strings.TrimSpace(os.Getenv("GDRIVE_DOC_ID"))

	// ClickHouse audit mirror (optional)
	config.UseClickHouse = os.Getenv("AUDIT_CLICKHOUSE") == "true"
	if config.UseClickHouse {
		config.ClickHouseHost = os.Getenv("CLICKHOUSE_HOST")
		if config.ClickHouseHost == "" {
			return nil, fmt.Errorf("CLICKHOUSE_HOST is required when AUDIT_CLICKHOUSE is true")
		}

		portStr := os.Getenv("CLICKHOUSE_PORT")
		if portStr == "" {
			config.ClickHousePort = 9000 // Default ClickHouse native port
		} else {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return nil, fmt.Errorf("invalid CLICKHOUSE_PORT: %w", err)
			}
			config.ClickHousePort = port
		}

		config.ClickHouseDatabase = getEnv("CLICKHOUSE_DATABASE", "default")
		config.ClickHouseUser = getEnv("CLICKHOUSE_USER", "default")
		config.ClickHousePassword = os.Getenv("CLICKHOUSE_PASSWORD")
		config.ClickHouseUseTLS = os.Getenv("CLICKHOUSE_USE_TLS") == "true"
	}

	config.FollowLinks = []models.NamedLink{
		{Name: "Telegram", URL: getEnv("SOCIAL_TELEGRAM", "https://t.me/")},
		{Name: "Instagram", URL: getEnv("SOCIAL_INSTAGRAM", "https://instagram.com/")},
		{Name: "Google", URL: getEnv("SOCIAL_GOOGLE", "https://google.com/")},
		{Name: "LinkedIn", URL: getEnv("SOCIAL_LINKEDIN", "https://www.linkedin.com/")},
		{Name: "WhatsApp", URL: getEnv("SOCIAL_WHATSAPP", "https://wa.me/918982285510")},
		{Name: "Discord", URL: getEnv("SOCIAL_DISCORD", "https://discord.com/")},
	}

	return config, nil
}

// WhatsAppLink returns the configured WhatsApp follow link, used as the
// default CTA when a landing-page draft carries no explicit link.
func (c *Config) WhatsAppLink() string {
	for _, l := range c.FollowLinks {
		if l.Name == "WhatsApp" {
			return l.URL
		}
	}
	return "https://wa.me/918982285510"
}

// getEnv retrieves environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
