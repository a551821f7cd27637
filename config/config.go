package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultInitialBalance = "1000.00"

type Config struct {
	ServerPort     string
	DBDriver       string
	DatabaseDSN    string
	KafkaBroker    string
	KafkaTopic     string
	KafkaGroupID   string
	KafkaUsername  string
	KafkaPassword  string
	AccessSecret   string
	BaseURL        string
	InitialBalance decimal.Decimal
}

func LoadConfig() Config {
	wd, _ := os.Getwd()
	log.Println("WD =", wd)

	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: .env not loaded:", err)
		}
	}

	return Config{
		ServerPort:     envOr("SERVER_PORT", ":3000"),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DatabaseDSN:    envOr("DATABASE_DSN", "unipay.db"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		KafkaTopic:     envOr("KAFKA_TOPIC", "unipay.events"),
		KafkaGroupID:   envOr("KAFKA_GROUP_ID", "unipay-notify"),
		KafkaUsername:  os.Getenv("KAFKA_USERNAME"),
		KafkaPassword:  os.Getenv("KAFKA_PASSWORD"),
		AccessSecret:   os.Getenv("ACCESS_SECRET"),
		BaseURL:        envOr("BASE_URL", "*"),
		InitialBalance: parseBalance(os.Getenv("INITIAL_BALANCE")),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBalance(raw string) decimal.Decimal {
	if raw == "" {
		raw = defaultInitialBalance
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		log.Printf("invalid INITIAL_BALANCE %q, using %s", raw, defaultInitialBalance)
		return decimal.RequireFromString(defaultInitialBalance)
	}
	return v
}
