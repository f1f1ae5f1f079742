package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/h2non/filetype"
	openai "github.com/sashabaranov/go-openai"
)

const transcribePrompt = `You are an OCR engine. Transcribe every piece of text visible in the image exactly as printed, ` +
	`line by line, preserving the original wording, spelling, numbers and punctuation. ` +
	`Do not summarise, translate, correct or explain. Output only the transcribed text.`

// OpenAIProvider uses a vision-capable chat model as the text source
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI vision OCR provider. baseURL may be empty.
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GetProviderName returns the provider name
func (p *OpenAIProvider) GetProviderName() string {
	return "OpenAI Vision"
}

// ExtractText asks the model for a verbatim transcription of the image
func (p *OpenAIProvider) ExtractText(ctx context.Context, imagePath string) (*OCRResult, error) {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	mime := "image/png"
	if kind, err := filetype.Match(imageData); err == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(imageData))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: transcribePrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: "Transcribe this document."},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailHigh},
					},
				},
			},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("openai error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	text = strings.TrimPrefix(text, "```text")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return &OCRResult{
		Text:       strings.TrimSpace(text),
		Confidence: 0.80,
	}, nil
}
