//go:build !gosseract

package ocr

import "context"

// GosseractProvider is unavailable in this build
type GosseractProvider struct{}

// NewGosseractProvider always fails without the gosseract build tag
func NewGosseractProvider(language string, psm int) (*GosseractProvider, error) {
	return nil, ErrGosseractNotEnabled
}

func (p *GosseractProvider) ExtractText(ctx context.Context, imagePath string) (*OCRResult, error) {
	return nil, ErrGosseractNotEnabled
}

func (p *GosseractProvider) GetProviderName() string {
	return "Tesseract (gosseract)"
}
