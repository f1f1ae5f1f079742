package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const googleVisionEndpoint = "https://vision.googleapis.com/v1/images:annotate"

// GoogleVisionProvider implements OCR using Google Cloud Vision API
type GoogleVisionProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewGoogleVisionProvider creates a new Google Vision OCR provider
func NewGoogleVisionProvider(apiKey string, timeout time.Duration) *GoogleVisionProvider {
	return &GoogleVisionProvider{
		apiKey:   apiKey,
		endpoint: googleVisionEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// WithEndpoint points the provider at another annotate URL
func (p *GoogleVisionProvider) WithEndpoint(endpoint string) *GoogleVisionProvider {
	p.endpoint = endpoint
	return p
}

// GetProviderName returns the provider name
func (p *GoogleVisionProvider) GetProviderName() string {
	return "Google Cloud Vision"
}

type visionRequest struct {
	Requests []visionRequestItem `json:"requests"`
}

type visionRequestItem struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionImage struct {
	Content string `json:"content"` // base64 encoded image
}

type visionFeature struct {
	Type string `json:"type"`
}

type visionResponse struct {
	Responses []struct {
		FullTextAnnotation *struct {
			Text  string `json:"text"`
			Pages []struct {
				Confidence float64 `json:"confidence"`
			} `json:"pages"`
		} `json:"fullTextAnnotation,omitempty"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error,omitempty"`
	} `json:"responses"`
}

// ExtractText sends the image to the DOCUMENT_TEXT_DETECTION feature
func (p *GoogleVisionProvider) ExtractText(ctx context.Context, imagePath string) (*OCRResult, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("google vision API key not configured")
	}

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	reqBody := visionRequest{
		Requests: []visionRequestItem{{
			Image:    visionImage{Content: base64.StdEncoding.EncodeToString(imageData)},
			Features: []visionFeature{{Type: "DOCUMENT_TEXT_DETECTION"}},
		}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", p.endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google vision request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google vision error (status: %d): %s", resp.StatusCode, truncate(string(body), 512))
	}

	var visionResp visionResponse
	if err := json.Unmarshal(body, &visionResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(visionResp.Responses) == 0 {
		return nil, fmt.Errorf("no response from Google Vision")
	}

	first := visionResp.Responses[0]
	if first.Error != nil {
		return nil, fmt.Errorf("google vision API error: %s", first.Error.Message)
	}

	if first.FullTextAnnotation == nil {
		return &OCRResult{}, nil
	}

	confidence := 0.95
	if pages := first.FullTextAnnotation.Pages; len(pages) > 0 && pages[0].Confidence > 0 {
		confidence = pages[0].Confidence
	}

	return &OCRResult{
		Text:       first.FullTextAnnotation.Text,
		Confidence: confidence,
	}, nil
}
