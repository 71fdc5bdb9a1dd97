package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	BackendFirebase = "firebase"
	BackendPostgres = "postgres"
)

type Config struct {
	AppPort            string
	AppMode            string
	LogMode            string
	LogLevel           string
	Backend            string
	EnforceRoomCreator bool
	FunctionTarget     string

	FirebaseCredentialsFile string
	FirebaseProjectID       string
	FirebaseDatabaseURL     string
	FirebaseAPIKey          string
	IdentityToolkitURL      string
	GoogleClientID          string
	GoogleRequestURI        string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:            getEnv("APP_PORT", "5000"),
		AppMode:            getEnv("APP_MODE", "debug"),
		LogMode:            getEnv("LOG_MODE", "development"),
		LogLevel:           getEnv("LOG_LEVEL", ""),
		Backend:            getEnv("BACKEND", BackendFirebase),
		EnforceRoomCreator: getEnvAsBool("ENFORCE_ROOM_CREATOR", false),
		FunctionTarget:     getEnv("FUNCTION_TARGET", "Chat"),

		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseDatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
		FirebaseAPIKey:          getEnv("FIREBASE_API_KEY", ""),
		IdentityToolkitURL:      getEnv("IDENTITY_TOOLKIT_URL", "https://identitytoolkit.googleapis.com/v1"),
		GoogleClientID:          getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleRequestURI:        getEnv("GOOGLE_REQUEST_URI", "http://localhost"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "quickchat"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisEnabled:  getEnvAsBool("REDIS_ENABLED", false),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
	}
}

// Validate checks that the settings required by the selected backend are present.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFirebase:
		if c.FirebaseDatabaseURL == "" {
			return fmt.Errorf("FIREBASE_DATABASE_URL is required for the %s backend", c.Backend)
		}
		if c.FirebaseAPIKey == "" {
			return fmt.Errorf("FIREBASE_API_KEY is required for the %s backend", c.Backend)
		}
	case BackendPostgres:
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required for the %s backend", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}

// DatabaseURL returns the Postgres connection string for pgx.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
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

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
