package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	RedisPass   string
	AdminToken  string
	HTTPPort    string
	CORSOrigins string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "moviestream"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASSWORD", ""),
		AdminToken:  getEnv("ADMIN_TOKEN", "admin_secret_token_12345"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s is not set, using default value\n", key)
		return def
	}
	return v
}
