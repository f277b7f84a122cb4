package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	APIBaseURL     string
	OverrideDBPath string
	MediaDir       string
	MediaBaseURL   string
	JWTSecret      []byte
	LogLevel       string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
		APIBaseURL:     must(os.Getenv("API_BASE_URL"), "API_BASE_URL"),
		OverrideDBPath: getenv("OVERRIDE_DB_PATH", "menu-client.db"),
		MediaDir:       getenv("MEDIA_DIR", "media"),
		MediaBaseURL:   getenv("MEDIA_BASE_URL", "/media"),
		JWTSecret:      []byte(must(os.Getenv("JWT_SECRET"), "JWT_SECRET")),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}
}
