package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateReportSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	report := NewGenerateReport(NewWriterOutput(&stdout, &stderr))
	report.AddLocale("ru", "public/products", 42)
	report.AddLocale("en", "public/en/products", 42)
	report.Render()

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected one line per locale, got %d: %q", len(lines), stdout.String())
	}
	if lines[0] != "✓ Generated 42 RU product pages in public/products/" {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if lines[1] != "✓ Generated 42 EN product pages in public/en/products/" {
		t.Errorf("Unexpected second line %q", lines[1])
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected empty stderr, got %q", stderr.String())
	}
}

func TestGenerateReportFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	report := NewGenerateReport(NewWriterOutput(&stdout, &stderr))
	report.AddLocale("ru", "public/products", 3)
	report.Fail(errors.New("catalog unavailable"))
	report.Render()

	if stdout.Len() != 0 {
		t.Errorf("Expected no success output, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "✗ Generation failed after") || !strings.Contains(stderr.String(), "catalog unavailable") {
		t.Errorf("Unexpected stderr %q", stderr.String())
	}
}

func TestOutputColors(t *testing.T) {
	o := &Output{enableColors: true}
	if got := o.Green("ok"); got != "\033[32mok\033[0m" {
		t.Errorf("Unexpected green %q", got)
	}
	if got := NewWriterOutput(&bytes.Buffer{}, &bytes.Buffer{}).Red("x"); got != "x" {
		t.Errorf("Expected plain text, got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(250 * time.Millisecond); got != "250ms" {
		t.Errorf("Expected 250ms, got %q", got)
	}
	if got := formatDuration(1500 * time.Millisecond); got != "1.5s" {
		t.Errorf("Expected 1.5s, got %q", got)
	}
}
