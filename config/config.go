package config

import (
	"log"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string
	LogLevel    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DBType == "" {
		cfg.DBType = detectDBType(cfg.PostgresURL, cfg.MongoURL)
	}
	return cfg
}

// detectDBType derives the storage mode once at startup: a usable Postgres
// URL wins, then Mongo, otherwise the seeded in-memory demo store.
func detectDBType(postgresURL, mongoURL string) string {
	if isValidURL(postgresURL) {
		return "postgres"
	}
	if isValidURL(mongoURL) {
		return "mongo"
	}
	return "demo"
}

// isValidURL rejects empty values and the placeholder values that ship in
// .env.example so a half-configured environment still boots in demo mode.
func isValidURL(raw string) bool {
	if raw == "" || raw == "your_postgres_url_here" || raw == "your_mongo_url_here" || raw == "demo" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
