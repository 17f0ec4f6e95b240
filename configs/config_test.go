package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("PORT")

	cfg := LoadConfig()

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "FoodDeliveryApp", cfg.DBName)
	assert.Equal(t, "8000", cfg.Port)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("DB_NAME", "staging")
	t.Setenv("PORT", "9000")

	cfg := LoadConfig()

	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "staging", cfg.DBName)
	assert.Equal(t, "9000", cfg.Port)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")

	assert.Equal(t, "value", getEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SOME_MISSING_KEY", "fallback"))
}
