package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Datasource names accepted by DATA_SOURCE.
const (
	SourceStatic = "static"
	SourceSheets = "sheets"
)

// Shelf-life anchors accepted by SHELF_LIFE_ANCHOR.
const (
	AnchorToday       = "today"
	AnchorBalanceDate = "balance_date"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Sheets    SheetsConfig
	Chat      ChatConfig
	AI        AIConfig
	ShelfLife ShelfLifeConfig
	Overview  OverviewConfig
	MongoDB   MongoDBConfig
	Snapshot  SnapshotConfig
	WhatsApp  WhatsAppConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port     string
	LogLevel string
}

// DataConfig selects where dashboard records are read from.
type DataConfig struct {
	Source string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// ChatConfig configures the chat widget relay.
type ChatConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// AIConfig holds settings for the optional assistant responder.
type AIConfig struct {
	AnthropicKey string
	Model        string
}

// ShelfLifeConfig decides which date expiry dates are counted from.
type ShelfLifeConfig struct {
	Anchor string
}

// OverviewConfig carries the fixed figures of the warehouse overview card.
type OverviewConfig struct {
	Onground              int
	PredictedOutbound     int
	InventoryTarget       int
	OperationCostPerDay   int
	OperationCostPerMonth int
}

// MongoDBConfig holds settings for the snapshot archive. An empty URI disables it.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SnapshotConfig holds scheduler-related settings.
type SnapshotConfig struct {
	CronSchedule string
	Timezone     string
}

// WhatsAppConfig contains credentials and options for the Meta WhatsApp Cloud API.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
	BaseURL       string
	APIVersion    string
	ManagerID     string
}

// Enabled reports whether the WhatsApp channel should be wired.
func (w WhatsAppConfig) Enabled() bool {
	return w.AccessToken != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	chatTimeout, err := time.ParseDuration(getenvWithDefault("CHAT_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("CHAT_TIMEOUT: %w", err)
	}

	overview, err := loadOverview()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     getenvWithDefault("APP_PORT", "8080"),
			LogLevel: os.Getenv("LOG_LEVEL"),
		},
		Data: DataConfig{
			Source: getenvWithDefault("DATA_SOURCE", SourceStatic),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		Chat: ChatConfig{
			WebhookURL: os.Getenv("CHAT_WEBHOOK_URL"),
			Timeout:    chatTimeout,
		},
		AI: AIConfig{
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:        getenvWithDefault("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		},
		ShelfLife: ShelfLifeConfig{
			Anchor: getenvWithDefault("SHELF_LIFE_ANCHOR", AnchorToday),
		},
		Overview: overview,
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "warehouse"),
		},
		Snapshot: SnapshotConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 6 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "UTC"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			VerifyToken:   os.Getenv("META_VERIFY_TOKEN"),
			BaseURL:       getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:    getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			ManagerID:     os.Getenv("WHATSAPP_MANAGER_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Data.Source {
	case SourceStatic:
	case SourceSheets:
		if c.Sheets.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided for the sheets data source")
		}
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided for the sheets data source")
		}
	default:
		return fmt.Errorf("unsupported DATA_SOURCE %q", c.Data.Source)
	}

	if c.Chat.Timeout <= 0 {
		return errors.New("CHAT_TIMEOUT must be positive")
	}

	if c.ShelfLife.Anchor != AnchorToday && c.ShelfLife.Anchor != AnchorBalanceDate {
		return fmt.Errorf("unsupported SHELF_LIFE_ANCHOR %q", c.ShelfLife.Anchor)
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty")
	}

	if c.Snapshot.CronSchedule == "" {
		return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
	}

	if c.Snapshot.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.WhatsApp.Enabled() {
		switch {
		case c.WhatsApp.PhoneNumberID == "":
			return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided")
		case c.WhatsApp.VerifyToken == "":
			return errors.New("META_VERIFY_TOKEN must be provided")
		case c.WhatsApp.BaseURL == "":
			return errors.New("WHATSAPP_BASE_URL must not be empty")
		case c.WhatsApp.APIVersion == "":
			return errors.New("WHATSAPP_API_VERSION must not be empty")
		}
	}

	return nil
}

func loadOverview() (OverviewConfig, error) {
	var cfg OverviewConfig
	fields := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{"OVERVIEW_ONGROUND", 3420, &cfg.Onground},
		{"OVERVIEW_PREDICTED_OUTBOUND", 1200, &cfg.PredictedOutbound},
		{"OVERVIEW_INVENTORY_TARGET", 4000, &cfg.InventoryTarget},
		{"OVERVIEW_COST_PER_DAY", 15000, &cfg.OperationCostPerDay},
		{"OVERVIEW_COST_PER_MONTH", 450000, &cfg.OperationCostPerMonth},
	}

	for _, f := range fields {
		value, err := getenvInt(f.key, f.fallback)
		if err != nil {
			return OverviewConfig{}, err
		}
		*f.dst = value
	}

	return cfg, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
