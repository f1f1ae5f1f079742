package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// TesseractProvider implements OCR by running the tesseract CLI
type TesseractProvider struct {
	tesseractPath string
	language      string
	psm           int
	runner        Runner
}

// NewTesseractProvider creates a new Tesseract OCR provider.
// An empty path defaults to "tesseract" on PATH and an empty language to "eng".
func NewTesseractProvider(path, language string, psm int) *TesseractProvider {
	if path == "" {
		path = "tesseract"
	}
	if language == "" {
		language = "eng"
	}
	if psm <= 0 {
		psm = 3 // fully automatic page segmentation
	}

	return &TesseractProvider{
		tesseractPath: path,
		language:      language,
		psm:           psm,
		runner:        execRunner{},
	}
}

// WithRunner swaps the command runner, used by tests
func (p *TesseractProvider) WithRunner(r Runner) *TesseractProvider {
	p.runner = r
	return p
}

// ExtractText runs `tesseract <image> stdout -l <lang> --psm <n>` and returns stdout
func (p *TesseractProvider) ExtractText(ctx context.Context, imagePath string) (*OCRResult, error) {
	args := []string{imagePath, "stdout", "-l", p.language, "--psm", strconv.Itoa(p.psm)}

	stdout, stderr, err := p.runner.Run(ctx, p.tesseractPath, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("tesseract interrupted: %w", ctxErr)
		}
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			return nil, fmt.Errorf("tesseract command failed: %w", err)
		}
		return nil, fmt.Errorf("tesseract command failed: %w: %s", err, truncate(msg, 512))
	}

	// Tesseract doesn't report a page confidence on stdout
	return &OCRResult{
		Text:       string(stdout),
		Confidence: 0.90,
	}, nil
}

// GetProviderName returns the name of the provider
func (p *TesseractProvider) GetProviderName() string {
	return "Tesseract OCR"
}
