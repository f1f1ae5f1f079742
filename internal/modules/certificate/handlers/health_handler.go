package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/core/ocr"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	ocrService *ocr.Service
	uploadDir  string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ocrService *ocr.Service, uploadDir string) *HealthHandler {
	return &HealthHandler{ocrService: ocrService, uploadDir: uploadDir}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive and the upload directory is usable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	status, code := "ok", fiber.StatusOK
	if info, err := os.Stat(h.uploadDir); err != nil || !info.IsDir() {
		status, code = "degraded", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"service":      "certificate-ocr",
		"ocr_provider": h.ocrService.GetProviderName(),
	})
}
