package upload

import (
	"fmt"
	"mime/multipart"
)

// Service provides scratch storage for uploads with provider switching
type Service struct {
	provider Provider
}

// NewService creates a new upload service
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Save stores the uploaded file using the configured provider.
// Callers own the returned file and must Remove it.
func (s *Service) Save(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("upload provider not configured")
	}
	if fileHeader == nil {
		return nil, fmt.Errorf("no file to store")
	}

	return s.provider.Save(fileHeader)
}

// GetProviderName returns the current provider name
func (s *Service) GetProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.GetProviderName()
}
