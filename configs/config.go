package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort    int
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBNameTest string
	RedisHost  string
	RedisPort  int

	// Token signing configuration. The secret is loaded once at startup and
	// passed to the token service; it is never rotated at runtime.
	JWTSecret       string
	TokenTTLMinutes int

	// When true, GET /api/todos/:id rejects non-owners with 403, matching
	// update/delete. Off by default to preserve the original behavior where
	// any authenticated account can read any todo by id.
	StrictTodoOwnership bool
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	return Config{
		AppPort:             envInt("APP_PORT", 3004),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              envInt("DB_PORT", 5432),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBNameTest:          os.Getenv("DB_NAME_TEST"),
		RedisHost:           os.Getenv("REDIS_HOST"),
		RedisPort:           envInt("REDIS_PORT", 6379),
		JWTSecret:           envString("JWT_SECRET", "secret"),
		TokenTTLMinutes:     envInt("TOKEN_TTL_MINUTES", 60),
		StrictTodoOwnership: os.Getenv("STRICT_TODO_OWNERSHIP") == "true",
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
