package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	Port           string
	RedisAddr      string
	RedisPassword  string
	RedisDB        string
	AppAuthKey     string
	AppEncKey      string
	EmailHost      string
	EmailPort      string
	EmailUsername  string
	EmailPassword  string
	EmailFrom      string
	SnapshotSpec   string
	SnapshotTZ     string
	StorageDir     string
	StorageBaseURL string
	APP_ENV        string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		Port:           os.Getenv("APP_PORT"),
		RedisAddr:      getEnvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvDefault("REDIS_DB", "0"),
		AppAuthKey:     os.Getenv("APP_AUTH_KEY"),
		AppEncKey:      os.Getenv("APP_ENC_KEY"),
		EmailHost:      os.Getenv("EMAIL_HOST"),
		EmailPort:      os.Getenv("EMAIL_PORT"),
		EmailUsername:  os.Getenv("EMAIL_USERNAME"),
		EmailPassword:  os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:      os.Getenv("EMAIL_USERNAME"),
		SnapshotSpec:   getEnvDefault("STATS_SNAPSHOT_SPEC", "59 23 * * *"),
		SnapshotTZ:     getEnvDefault("STATS_SNAPSHOT_TZ", "Local"),
		StorageDir:     getEnvDefault("STORAGE_DIR", "./uploads"),
		StorageBaseURL: getEnvDefault("STORAGE_BASE_URL", "/uploads"),
		APP_ENV:        os.Getenv("APP_ENV"),
	}

}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var LoadENV = LoadEnv()
