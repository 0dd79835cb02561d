package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIBaseURL is the campus answer service, e.g. http://localhost:8000.
	APIBaseURL string
	// HomeDir holds preferences, chat history, logs, and the PDF cache.
	HomeDir        string
	HTTPTimeoutSec int
	Environment    string
}

// Load reads configuration from environment variables or a .env file.
func Load() (Config, error) {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	home := getEnv("CAMPUSQA_HOME", "")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(userHome, ".campusqa")
	}

	return Config{
		APIBaseURL:     strings.TrimRight(getEnv("CAMPUSQA_API_URL", "http://localhost:8000"), "/"),
		HomeDir:        home,
		HTTPTimeoutSec: getEnvAsInt("CAMPUSQA_HTTP_TIMEOUT", 30),
		Environment:    env,
	}, nil
}

func (c Config) PrefsPath() string     { return filepath.Join(c.HomeDir, "prefs.yaml") }
func (c Config) HistoryDBPath() string { return filepath.Join(c.HomeDir, "history.db") }
func (c Config) LogPath() string       { return filepath.Join(c.HomeDir, "campusqa.log") }
func (c Config) PDFCacheDir() string   { return filepath.Join(c.HomeDir, "cache", "pdf") }
func (c Config) DownloadDir() string   { return filepath.Join(c.HomeDir, "downloads") }

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
