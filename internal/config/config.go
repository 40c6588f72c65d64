package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	DBPath          string
	PhotoPath       string
	LogLevel        string
	LogFile         string
	AnthropicAPIKey string
	AnthropicModel  string
}

// Load reads configuration from the environment, with a .env file (if
// present) filling in unset variables first.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:      getEnv("WHEREIS_ADDR", ":8080"),
		DBPath:          getEnv("DB_PATH", "whereis.db"),
		PhotoPath:       getEnv("PHOTO_PATH", "photos"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
