package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const ocrSpaceEndpoint = "https://api.ocr.space/parse/image"

// OCRSpaceProvider implements OCR using OCR.space API
type OCRSpaceProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewOCRSpaceProvider creates a new OCR.space provider
func NewOCRSpaceProvider(apiKey string, timeout time.Duration) *OCRSpaceProvider {
	return &OCRSpaceProvider{
		apiKey:   apiKey,
		endpoint: ocrSpaceEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// WithEndpoint points the provider at another parse URL
func (p *OCRSpaceProvider) WithEndpoint(endpoint string) *OCRSpaceProvider {
	p.endpoint = endpoint
	return p
}

// GetProviderName returns the provider name
func (p *OCRSpaceProvider) GetProviderName() string {
	return "OCR.space"
}

type ocrSpaceResponse struct {
	ParsedResults []struct {
		ParsedText        string `json:"ParsedText"`
		FileParseExitCode int    `json:"FileParseExitCode"`
		ErrorMessage      string `json:"ErrorMessage"`
	} `json:"ParsedResults"`
	OCRExitCode           int             `json:"OCRExitCode"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage,omitempty"` // string or []string
}

// ExtractText uploads the image to the OCR.space parse endpoint
func (p *OCRSpaceProvider) ExtractText(ctx context.Context, imagePath string) (*OCRResult, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("ocrspace API key not configured")
	}

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}

	fields := map[string]string{
		"apikey":    p.apiKey,
		"language":  "eng",
		"OCREngine": "2",
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", k, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocrspace request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocrspace error (status: %d): %s", resp.StatusCode, truncate(string(body), 512))
	}

	var ocrResp ocrSpaceResponse
	if err := json.Unmarshal(body, &ocrResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if ocrResp.IsErroredOnProcessing {
		return nil, fmt.Errorf("ocrspace processing error: %s", ocrSpaceMessage(ocrResp.ErrorMessage))
	}

	if ocrResp.OCRExitCode != 1 {
		return nil, fmt.Errorf("ocrspace exit code: %d", ocrResp.OCRExitCode)
	}

	if len(ocrResp.ParsedResults) == 0 {
		return &OCRResult{}, nil
	}

	// OCR.space doesn't provide confidence score
	return &OCRResult{
		Text:       ocrResp.ParsedResults[0].ParsedText,
		Confidence: 0.85,
	}, nil
}

func ocrSpaceMessage(raw json.RawMessage) string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return single
	}
	return "unknown error"
}
