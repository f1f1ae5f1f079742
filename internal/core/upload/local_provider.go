package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalProvider stores uploads under a server-local directory
type LocalProvider struct {
	basePath string
	maxSize  int64
}

// NewLocalProvider creates the upload directory if needed.
// maxSize of 0 disables the size check.
func NewLocalProvider(basePath string, maxSize int64) (*LocalProvider, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalProvider{
		basePath: abs,
		maxSize:  maxSize,
	}, nil
}

// Dir returns the absolute upload directory
func (p *LocalProvider) Dir() string {
	return p.basePath
}

// Save copies the uploaded file to <dir>/<id>_<sanitised name>
func (p *LocalProvider) Save(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	if p.maxSize > 0 && fileHeader.Size > p.maxSize {
		return nil, fmt.Errorf("file size exceeds maximum allowed size: %d bytes", p.maxSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return p.save(src, fileHeader.Filename)
}

func (p *LocalProvider) save(src io.Reader, filename string) (*StoredFile, error) {
	name := SanitizeFilename(filename)
	path := filepath.Join(p.basePath, uuid.New().String()[:8]+"_"+name)

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	stored := &StoredFile{Path: path, Name: name}

	size, err := io.Copy(out, src)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = stored.Remove()
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	stored.Size = size
	return stored, nil
}

// GetProviderName returns the provider name
func (p *LocalProvider) GetProviderName() string {
	return "Local Storage"
}
