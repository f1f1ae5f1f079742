//go:build gosseract

package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// GosseractProvider runs Tesseract in-process through the libtesseract binding.
// It requires the "gosseract" build tag and the tesseract development headers:
//
//	go build -tags gosseract ./cmd/api
type GosseractProvider struct {
	language string
	psm      int
}

// NewGosseractProvider creates an in-process Tesseract provider
func NewGosseractProvider(language string, psm int) (*GosseractProvider, error) {
	if language == "" {
		language = "eng"
	}
	if psm <= 0 {
		psm = int(gosseract.PSM_AUTO)
	}
	return &GosseractProvider{language: language, psm: psm}, nil
}

// ExtractText recognises the image with a fresh client per call; gosseract clients are not safe for concurrent use
func (p *GosseractProvider) ExtractText(ctx context.Context, imagePath string) (*OCRResult, error) {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(p.language); err != nil {
		return nil, fmt.Errorf("gosseract set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(p.psm)); err != nil {
		return nil, fmt.Errorf("gosseract set page segmentation: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("gosseract set image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("gosseract recognise: %w", err)
	}

	return &OCRResult{
		Text:       text,
		Confidence: 0.90,
	}, nil
}

// GetProviderName returns the name of the provider
func (p *GosseractProvider) GetProviderName() string {
	return "Tesseract (gosseract)"
}
