package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	CookieTTL time.Duration
}

func LoadConfig() *Config {
	// .env is optional; real env vars win either way
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cookieDays, err := strconv.Atoi(getEnv("JWT_COOKIE_EXPIRE", "30"))
	if err != nil || cookieDays <= 0 {
		cookieDays = 30
	}

	return &Config{
		Env:       getEnv("APP_ENV", "development"),
		DBSource:  getEnv("DB_SOURCE", "restaurant.db"),
		Port:      getEnv("PORT", "5000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,
		CookieTTL: time.Duration(cookieDays) * 24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
