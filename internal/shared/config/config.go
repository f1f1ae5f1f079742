package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is loaded once at startup and never mutated afterwards
type Config struct {
	Port         string
	Env          string
	LogLevel     string
	UploadFolder string
	MaxUploadMB  int

	OCRProvider       string
	OCRTimeout        time.Duration
	TesseractPath     string
	TesseractLanguage string
	TesseractPSM      int

	OCRSpaceAPIKey     string
	GoogleVisionAPIKey string
	OpenAIKey          string
	OpenAIOCRModel     string
	OpenAIBaseURL      string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	return FromEnv()
}

// FromEnv builds the config from the process environment, applying defaults
func FromEnv() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		UploadFolder: getEnv("UPLOAD_FOLDER", "uploads"),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 10),

		OCRProvider:       strings.ToLower(getEnv("OCR_PROVIDER", "tesseract")),
		OCRTimeout:        time.Duration(getEnvInt("OCR_TIMEOUT_SECONDS", 60)) * time.Second,
		TesseractPath:     getEnv("TESSERACT_PATH", "tesseract"),
		TesseractLanguage: getEnv("TESSERACT_LANGUAGE", "eng"),
		TesseractPSM:      getEnvInt("TESSERACT_PSM", 3),

		OCRSpaceAPIKey:     os.Getenv("OCRSPACE_API_KEY"),
		GoogleVisionAPIKey: os.Getenv("GOOGLE_VISION_API_KEY"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIOCRModel:     getEnv("OPENAI_OCR_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
	}

	return cfg
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", key).Str("value", v).Int("default", fallback).Msg("invalid integer env value, using default")
		return fallback
	}
	return n
}
