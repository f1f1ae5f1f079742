package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubRunner struct {
	stdout, stderr []byte
	err            error
	name           string
	args           []string
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	return s.stdout, s.stderr, s.err
}

func TestTesseractProvider(t *testing.T) {
	t.Run("passes image and options", func(t *testing.T) {
		r := &stubRunner{stdout: []byte("Enrolment No.: 1 Dc: 2\n")}
		p := NewTesseractProvider("", "", 0).WithRunner(r)

		res, err := p.ExtractText(context.Background(), "/tmp/cert.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Text != "Enrolment No.: 1 Dc: 2\n" {
			t.Errorf("Text = %q", res.Text)
		}
		if r.name != "tesseract" {
			t.Errorf("command = %q, want tesseract", r.name)
		}
		want := "/tmp/cert.png stdout -l eng --psm 3"
		if got := strings.Join(r.args, " "); got != want {
			t.Errorf("args = %q, want %q", got, want)
		}
	})

	t.Run("custom binary and language", func(t *testing.T) {
		r := &stubRunner{}
		p := NewTesseractProvider("/usr/local/bin/tesseract", "eng+hin", 6).WithRunner(r)
		if _, err := p.ExtractText(context.Background(), "a.jpg"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.name != "/usr/local/bin/tesseract" {
			t.Errorf("command = %q", r.name)
		}
		if got := strings.Join(r.args, " "); got != "a.jpg stdout -l eng+hin --psm 6" {
			t.Errorf("args = %q", got)
		}
	})

	t.Run("command failure carries stderr", func(t *testing.T) {
		r := &stubRunner{stderr: []byte("Error in pixReadStream: Unknown format\n"), err: errors.New("exit status 1")}
		_, err := NewTesseractProvider("", "", 0).WithRunner(r).ExtractText(context.Background(), "bad.png")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "Unknown format") {
			t.Errorf("error %q does not include stderr", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := &stubRunner{err: errors.New("signal: killed")}
		_, err := NewTesseractProvider("", "", 0).WithRunner(r).ExtractText(ctx, "a.png")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}
