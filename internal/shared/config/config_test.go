package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL", "UPLOAD_FOLDER", "MAX_UPLOAD_MB", "OCR_PROVIDER",
		"OCR_TIMEOUT_SECONDS", "TESSERACT_PATH", "TESSERACT_LANGUAGE", "TESSERACT_PSM", "OPENAI_OCR_MODEL", "OPENAI_BASE_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.UploadFolder != "uploads" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.OCRProvider != "tesseract" || cfg.TesseractLanguage != "eng" || cfg.TesseractPSM != 3 {
		t.Errorf("unexpected OCR defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.OpenAIBaseURL != "" {
		t.Errorf("LogLevel = %q, OpenAIBaseURL = %q", cfg.LogLevel, cfg.OpenAIBaseURL)
	}
	if cfg.OCRTimeout != 60*time.Second {
		t.Errorf("OCRTimeout = %v", cfg.OCRTimeout)
	}
	if cfg.MaxUploadBytes() != 10*1024*1024 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes())
	}
	if cfg.IsProduction() {
		t.Error("default env reported as production")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("UPLOAD_FOLDER", "/var/tmp/certs")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("OCR_PROVIDER", "Google_Vision")
	t.Setenv("TESSERACT_PSM", "not-a-number")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")

	cfg := FromEnv()

	if cfg.Port != "9000" || !cfg.IsProduction() || cfg.UploadFolder != "/var/tmp/certs" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.MaxUploadBytes() != 2*1024*1024 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes())
	}
	if cfg.OCRProvider != "google_vision" {
		t.Errorf("OCRProvider = %q", cfg.OCRProvider)
	}
	if cfg.LogLevel != "debug" || cfg.OpenAIBaseURL != "http://localhost:11434/v1" {
		t.Errorf("LogLevel = %q, OpenAIBaseURL = %q", cfg.LogLevel, cfg.OpenAIBaseURL)
	}
	if cfg.TesseractPSM != 3 {
		t.Errorf("invalid TESSERACT_PSM should fall back to 3, got %d", cfg.TesseractPSM)
	}
}
