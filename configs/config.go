package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	MongoURI string
	DBName   string
	Port     string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal().Msg("missing env: MONGO_URI")
	}

	return &Config{
		MongoURI: uri,
		DBName:   getEnv("DB_NAME", "FoodDeliveryApp"),
		Port:     getEnv("PORT", "8000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
