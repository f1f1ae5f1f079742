package main

import (
	"errors"
	"testing"

	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/core/ocr"
	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/shared/config"
)

func TestNewOCRProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantName string
		wantErr  bool
	}{
		{name: "default", cfg: config.Config{}, wantName: "Tesseract OCR"},
		{name: "tesseract", cfg: config.Config{OCRProvider: "tesseract"}, wantName: "Tesseract OCR"},
		{name: "ocrspace", cfg: config.Config{OCRProvider: "ocrspace", OCRSpaceAPIKey: "k"}, wantName: "OCR.space"},
		{name: "ocrspace without key", cfg: config.Config{OCRProvider: "ocrspace"}, wantErr: true},
		{name: "google vision", cfg: config.Config{OCRProvider: "google_vision", GoogleVisionAPIKey: "k"}, wantName: "Google Cloud Vision"},
		{name: "google vision without key", cfg: config.Config{OCRProvider: "google_vision"}, wantErr: true},
		{name: "openai", cfg: config.Config{OCRProvider: "openai", OpenAIKey: "sk"}, wantName: "OpenAI Vision"},
		{name: "openai without key", cfg: config.Config{OCRProvider: "openai"}, wantErr: true},
		{name: "unknown", cfg: config.Config{OCRProvider: "abbyy"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			p, err := newOCRProvider(&cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got provider %v", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.GetProviderName() != tt.wantName {
				t.Errorf("provider = %q, want %q", p.GetProviderName(), tt.wantName)
			}
		})
	}
}

func TestNewOCRProviderGosseractWithoutTag(t *testing.T) {
	_, err := newOCRProvider(&config.Config{OCRProvider: "gosseract"})
	if err != nil && !errors.Is(err, ocr.ErrGosseractNotEnabled) {
		t.Fatalf("unexpected error: %v", err)
	}
}
