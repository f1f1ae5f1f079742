package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/h2non/filetype"
)

// Provider interface for OCR engines
type Provider interface {
	// ExtractText reads the image at imagePath and returns the recognised text
	ExtractText(ctx context.Context, imagePath string) (*OCRResult, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}

// OCRResult contains the extracted text and metadata
type OCRResult struct {
	Text       string  `json:"text"`       // Raw extracted text, may be empty
	Confidence float64 `json:"confidence"` // OCR confidence score (0-1)
	Provider   string  `json:"provider"`
}

// ErrUnsupportedImage is returned when the uploaded file is not a recognised image
var ErrUnsupportedImage = errors.New("unsupported image format")

// ErrGosseractNotEnabled is returned when the binary was built without -tags gosseract
var ErrGosseractNotEnabled = errors.New("gosseract support not enabled; rebuild with -tags gosseract")

// OCRError marks a failure of the text source itself. It is the only error the
// request handler reports as an OCR failure.
type OCRError struct {
	Provider string
	Err      error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("An error occurred during OCR processing: %v", e.Err)
}

func (e *OCRError) Unwrap() error {
	return e.Err
}

// headerSize is enough for filetype to match every image signature it knows
const headerSize = 262

// Service wraps the OCR provider
type Service struct {
	provider Provider
}

// NewService creates a new OCR service with the given provider
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// ExtractText checks that imagePath holds an image and runs the configured provider on it.
// Any failure is returned as *OCRError. Empty text is a successful result.
func (s *Service) ExtractText(ctx context.Context, imagePath string) (*OCRResult, error) {
	name := s.provider.GetProviderName()

	if err := checkImage(imagePath); err != nil {
		return nil, &OCRError{Provider: name, Err: err}
	}

	result, err := s.provider.ExtractText(ctx, imagePath)
	if err != nil {
		return nil, &OCRError{Provider: name, Err: err}
	}
	if result == nil {
		result = &OCRResult{}
	}
	result.Provider = name

	return result, nil
}

// GetProviderName returns the name of the current provider
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}

func checkImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := f.Read(head)
	if err != nil || n == 0 {
		return ErrUnsupportedImage
	}

	if !filetype.IsImage(head[:n]) {
		return ErrUnsupportedImage
	}
	return nil
}
