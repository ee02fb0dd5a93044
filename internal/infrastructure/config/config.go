// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (optional airport reference store)
	PostgresDSN string

	// Redis search cache
	RedisAddr      string
	RedisPassword  string
	SearchCacheTTL time.Duration

	// Flight lookup API
	FlightAPIBaseURL string
	FlightAPIKey     string
	FlightAPILimit   int

	// Weather API
	WeatherAPIBaseURL string
	WeatherAPIKey     string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "aerolog"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		SearchCacheTTL: time.Duration(getEnvAsInt("SEARCH_CACHE_TTL_MINUTES", 10)) * time.Minute,

		FlightAPIBaseURL: getEnv("FLIGHT_API_BASE_URL", "https://api.aviationstack.com/v1/flights"),
		FlightAPIKey:     getEnv("FLIGHT_API_KEY", ""),
		FlightAPILimit:   getEnvAsInt("FLIGHT_API_LIMIT", 5),

		WeatherAPIBaseURL: getEnv("WEATHER_API_BASE_URL", "https://api.weatherapi.com/v1"),
		WeatherAPIKey:     getEnv("WEATHER_API_KEY", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
