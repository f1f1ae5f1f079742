package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/core/ocr"
	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/core/upload"
	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/modules/certificate/handlers"
	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/certificate-ocr-be/cmd/api/docs"
)

// @title Certificate OCR API
// @version 1.0
// @description Extracts enrolment number, name, degree, year, division and institution from certificate images.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env, cfg.LogLevel)
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("🚀 Starting certificate-ocr api")

	ocrProvider, err := newOCRProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.OCRProvider).Msg("Failed to initialize OCR provider")
	}
	ocrService := ocr.NewService(ocrProvider)

	localStorage, err := upload.NewLocalProvider(cfg.UploadFolder, cfg.MaxUploadBytes())
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadFolder).Msg("Failed to initialize upload storage")
	}
	uploadService := upload.NewService(localStorage)

	log.Info().Str("provider", ocrService.GetProviderName()).Msg("🔍 Using OCR provider")
	log.Info().Str("provider", uploadService.GetProviderName()).Str("dir", localStorage.Dir()).Msg("📁 Upload storage ready")

	extractHandler := handlers.NewExtractHandler(ocrService, uploadService)
	healthHandler := handlers.NewHealthHandler(ocrService, localStorage.Dir())

	app := fiber.New(fiber.Config{
		AppName:   "Certificate OCR API",
		BodyLimit: int(cfg.MaxUploadBytes()),
	})

	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler.GetHealth)
	app.Post("/extract", extractHandler.Extract)

	go func() {
		log.Info().Msgf("✅ certificate-ocr running at :%s", cfg.Port)
		log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("🛑 Shutting down certificate-ocr...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Msg("👋 Goodbye!")
}

// newOCRProvider picks the text source named by OCR_PROVIDER
func newOCRProvider(cfg *config.Config) (ocr.Provider, error) {
	switch cfg.OCRProvider {
	case "", "tesseract":
		return ocr.NewTesseractProvider(cfg.TesseractPath, cfg.TesseractLanguage, cfg.TesseractPSM), nil
	case "gosseract":
		p, err := ocr.NewGosseractProvider(cfg.TesseractLanguage, cfg.TesseractPSM)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ocrspace":
		if cfg.OCRSpaceAPIKey == "" {
			return nil, fmt.Errorf("OCRSPACE_API_KEY is required for the ocrspace provider")
		}
		return ocr.NewOCRSpaceProvider(cfg.OCRSpaceAPIKey, cfg.OCRTimeout), nil
	case "google_vision", "google":
		if cfg.GoogleVisionAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_VISION_API_KEY is required for the google_vision provider")
		}
		return ocr.NewGoogleVisionProvider(cfg.GoogleVisionAPIKey, cfg.OCRTimeout), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return ocr.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIOCRModel, cfg.OpenAIBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown OCR provider %q", cfg.OCRProvider)
	}
}
