package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestTextPlain(t *testing.T) {
	got, err := Text("resume.txt", []byte("Skills: Python, SQL"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Skills: Python, SQL" {
		t.Errorf("got %q", got)
	}
}

func TestTextUnknownExtensionFallsBackToPlain(t *testing.T) {
	got, err := Text("notes", []byte("plain content"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "plain content" {
		t.Errorf("got %q", got)
	}
}

func TestTextRejectsBinaryWithUnknownExtension(t *testing.T) {
	_, err := Text("payload.bin", []byte{0x00, 0x01, 0x02, 0xFF})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text("resume.pdf", []byte("not a real pdf"))
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

func TestTextCorruptDocx(t *testing.T) {
	_, err := Text("resume.docx", []byte("not a zip archive"))
	if err == nil {
		t.Fatal("expected error for corrupt docx")
	}
}

func TestStripXMLTags(t *testing.T) {
	content := `<w:p><w:r><w:t>Skills: Go, SQL</w:t></w:r></w:p><w:p><w:r><w:t>Education: B.Tech</w:t></w:r></w:p>`
	got := stripXMLTags(content)
	if !strings.Contains(got, "Skills: Go, SQL") {
		t.Errorf("missing first paragraph: %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected paragraph break, got %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("tags not stripped: %q", got)
	}
}
