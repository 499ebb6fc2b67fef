package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Conversation ConversationConfig
	Pricing      PricingConfig
	Quotation    QuotationConfig
	IRP          IRPConfig
	Database     DatabaseConfig
}

type AppConfig struct {
	Port        string
	Environment string
	LogFilePath string
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Environment, "production")
}

type ConversationConfig struct {
	Strategy      string // "linear" or "keyword"
	LookupTimeout time.Duration
	SessionTTL    time.Duration
}

type PricingConfig struct {
	Strategy            string // "strict" or "random"
	BaseRateABps        int
	BaseRateBBps        int
	BaseRateCBps        int // also used for any grade without its own rate
	FixedLoadingBps     int
	RandomLoadingMaxBps int
}

type QuotationConfig struct {
	FinalizeTTL time.Duration
	SaveTTL     time.Duration
	ExpiryCron  string
}

type IRPConfig struct {
	// RegisteredIntermediaries maps intermediary ID to display name. Nil means
	// the built-in registry.
	RegisteredIntermediaries map[string]string
	GradeCacheSize           int
	GradeCacheTTL            time.Duration
}

type DatabaseConfig struct {
	Region                string
	Endpoint              string
	AccessKeyID           string
	SecretAccessKey       string
	QuotationsTable       string
	CompanyAddressesTable string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		App: AppConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "logs/bond-quotation.log"),
		},
		Conversation: ConversationConfig{
			Strategy:      getEnv("CONVERSATION_STRATEGY", "linear"),
			LookupTimeout: getEnvAsDuration("LOOKUP_TIMEOUT", 5*time.Second),
			SessionTTL:    getEnvAsDuration("SESSION_TTL", time.Hour),
		},
		Pricing: PricingConfig{
			Strategy:            getEnv("PRICING_STRATEGY", "strict"),
			BaseRateABps:        getEnvAsInt("BASE_RATE_A_BPS", 200),
			BaseRateBBps:        getEnvAsInt("BASE_RATE_B_BPS", 250),
			BaseRateCBps:        getEnvAsInt("BASE_RATE_C_BPS", 300),
			FixedLoadingBps:     getEnvAsInt("FIXED_LOADING_BPS", 20),
			RandomLoadingMaxBps: getEnvAsInt("RANDOM_LOADING_MAX_BPS", 50),
		},
		Quotation: QuotationConfig{
			FinalizeTTL: getEnvAsDuration("QUOTATION_FINALIZE_TTL", 30*24*time.Hour),
			SaveTTL:     getEnvAsDuration("QUOTATION_SAVE_TTL", 48*time.Hour),
			ExpiryCron:  getEnv("QUOTATION_EXPIRY_CRON", "@hourly"),
		},
		IRP: IRPConfig{
			RegisteredIntermediaries: parseIntermediaries(os.Getenv("REGISTERED_INTERMEDIARIES")),
			GradeCacheSize:           getEnvAsInt("GRADE_CACHE_SIZE", 256),
			GradeCacheTTL:            getEnvAsDuration("GRADE_CACHE_TTL", 5*time.Minute),
		},
		Database: DatabaseConfig{
			Region:                getEnv("AWS_REGION", "us-east-1"),
			Endpoint:              getEnv("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:           getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:       getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			QuotationsTable:       getEnv("QUOTATIONS_TABLE", "quotations"),
			CompanyAddressesTable: getEnv("COMPANY_ADDRESSES_TABLE", "company_addresses"),
		},
	}
}

// parseIntermediaries reads "INT-100:Acme Brokers,INT-300" into an ID→name map.
func parseIntermediaries(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := map[string]string{}
	for _, entry := range strings.Split(raw, ",") {
		id, name, _ := strings.Cut(entry, ":")
		id = strings.ToUpper(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		out[id] = strings.TrimSpace(name)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return fallback
}
