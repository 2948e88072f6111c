package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	DBDSN   string
	LogFile string

	// BaseURL is the public origin used when building shareable catalog
	// links embedded in WhatsApp messages.
	BaseURL string

	// CountryCode is prefixed to normalized phone numbers in wa.me links.
	CountryCode string

	// AdminEmails gates the admin dashboard. Injected here instead of a
	// hard-coded list in the handlers.
	AdminEmails []string

	Kafka KafkaConfig
}

type KafkaConfig struct {
	Brokers []string // empty disables event publishing
	Topic   string
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DBDSN:       getEnv("DB_DSN", "catalogo.db"),
		LogFile:     getEnv("LOG_FILE", ""),
		BaseURL:     strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		CountryCode: getEnv("WHATSAPP_COUNTRY_CODE", "55"),
		AdminEmails: splitList(getEnv("ADMIN_EMAILS", "")),
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "catalog-events"),
		},
	}

	log.Printf("[config] PORT=%s ENV=%s DB_DSN=%s BASE_URL=%s admins=%d kafka=%v",
		cfg.Port, cfg.Env, cfg.DBDSN, cfg.BaseURL, len(cfg.AdminEmails), len(cfg.Kafka.Brokers) > 0)
	return cfg
}

// IsAdmin reports whether an email is on the configured allow-list.
func (c Config) IsAdmin(email string) bool {
	for _, a := range c.AdminEmails {
		if strings.EqualFold(a, email) {
			return true
		}
	}
	return false
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
