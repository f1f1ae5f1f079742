package upload

import (
	"errors"
	"mime/multipart"
	"os"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StoredFile is an upload written to scratch storage for the lifetime of one request
type StoredFile struct {
	Path string `json:"path"`      // Absolute path on local disk
	Name string `json:"file_name"` // Sanitised client filename
	Size int64  `json:"size"`
}

// Remove deletes the stored file. A file that is already gone is not an error.
func (f *StoredFile) Remove() error {
	if f == nil || f.Path == "" {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Provider defines scratch storage for uploaded files
type Provider interface {
	// Save writes the multipart file to storage
	Save(fileHeader *multipart.FileHeader) (*StoredFile, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// toASCII decomposes accented letters and drops whatever is left outside ASCII.
// Transformers are stateful, so a new chain is built per call.
func toASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// SanitizeFilename reduces a client supplied filename to a safe basename:
// ASCII letters, digits, '_', '.' and '-' only, with path separators treated as
// word breaks and leading or trailing dots and underscores stripped.
// A name with nothing left becomes "upload".
func SanitizeFilename(name string) string {
	ascii := toASCII(name)
	ascii = strings.NewReplacer("/", " ", "\\", " ").Replace(ascii)
	ascii = strings.Join(strings.Fields(ascii), "_")
	ascii = unsafeChars.ReplaceAllString(ascii, "")
	ascii = strings.Trim(ascii, "._")

	if ascii == "" {
		return "upload"
	}
	return ascii
}
