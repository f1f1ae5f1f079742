package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/core/certificate"
	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/core/ocr"
	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/core/upload"
	"github.com/MuhamadAgungGumelar/certificate-ocr-be/internal/shared/utils"
)

const (
	errNoFilePart     = "No file part in the request"
	errNoSelectedFile = "No selected file"
)

// ExtractHandler handles certificate field extraction
type ExtractHandler struct {
	ocrService    *ocr.Service
	uploadService *upload.Service
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(ocrService *ocr.Service, uploadService *upload.Service) *ExtractHandler {
	return &ExtractHandler{
		ocrService:    ocrService,
		uploadService: uploadService,
	}
}

// ExtractResponse is the success body of POST /extract
type ExtractResponse struct {
	ExtractedData *certificate.Record `json:"extracted_data"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Extract godoc
// @Summary Extract fields from a certificate image
// @Description Upload a certificate or degree image, run OCR on it and return the recognised fields. Fields that cannot be found are returned as "Not Found".
// @Tags Extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Certificate image"
// @Success 200 {object} ExtractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *fiber.Ctx) error {
	fileHeader, msg := formFile(c, "file")
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
	}

	stored, err := h.uploadService.Save(fileHeader)
	if err != nil {
		utils.LogError("❌ Failed to store upload", err, map[string]interface{}{
			"file_name": fileHeader.Filename,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to store uploaded file"})
	}
	defer func() {
		if err := stored.Remove(); err != nil {
			utils.LogWarn("⚠️ Failed to remove upload", map[string]interface{}{
				"path":  stored.Path,
				"error": err.Error(),
			})
		}
	}()

	utils.LogInfo("📸 Processing certificate image", map[string]interface{}{
		"file_name": stored.Name,
		"size_kb":   float64(stored.Size) / 1024,
		"provider":  h.ocrService.GetProviderName(),
	})

	result, err := h.ocrService.ExtractText(c.UserContext(), stored.Path)
	if err != nil {
		utils.LogError("❌ OCR extraction failed", err, map[string]interface{}{
			"file_name": stored.Name,
		})

		var ocrErr *ocr.OCRError
		if errors.As(err, &ocrErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: ocrErr.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to extract text from image"})
	}

	record := certificate.Extract(result.Text)

	utils.LogInfo("✅ Certificate processed", map[string]interface{}{
		"file_name":    stored.Name,
		"text_length":  len(result.Text),
		"fields_found": record.Found(),
	})

	return c.JSON(ExtractResponse{ExtractedData: record})
}

// formFile returns the uploaded file for key, or the client error message when
// there is no such part or the part carries no filename.
func formFile(c *fiber.Ctx, key string) (*multipart.FileHeader, string) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errNoFilePart
	}

	if files := form.File[key]; len(files) > 0 {
		if files[0].Filename == "" {
			return nil, errNoSelectedFile
		}
		return files[0], ""
	}

	// A part sent with an empty filename is parsed as a plain form value
	if _, ok := form.Value[key]; ok {
		return nil, errNoSelectedFile
	}

	return nil, errNoFilePart
}
