package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBDriver       string
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	SQLitePath     string
	DBMaxOpenConns int
	DBMaxIdleConns int
	ServerPort     string
	GinMode        string
	LogLevel       string
	LogFormat      string
	CORSOrigins    []string
	SeedData       bool
	SwaggerEnabled bool
}

var defaults = map[string]any{
	"DB_DRIVER":         "postgres",
	"DATABASE_URL":      "",
	"DB_HOST":           "localhost",
	"DB_PORT":           "5432",
	"DB_USER":           "postgres",
	"DB_PASSWORD":       "postgres",
	"DB_NAME":           "trivia",
	"DB_SSLMODE":        "disable",
	"SQLITE_PATH":       "trivia.db",
	"DB_MAX_OPEN_CONNS": 10,
	"DB_MAX_IDLE_CONNS": 5,
	"SERVER_PORT":       "5000",
	"GIN_MODE":          "release",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
	"CORS_ORIGINS":      "*",
	"SEED_DATA":         false,
	"SWAGGER_ENABLED":   true,
}

// Load reads .env (if present) into the process environment and resolves
// every setting from the environment, falling back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	return &Config{
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		DBMaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		ServerPort:     v.GetString("SERVER_PORT"),
		GinMode:        v.GetString("GIN_MODE"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		SeedData:       v.GetBool("SEED_DATA"),
		SwaggerEnabled: v.GetBool("SWAGGER_ENABLED"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
