package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/khanhnv2901/pqcheck/internal/checker"
	"github.com/khanhnv2901/pqcheck/internal/pqc"
	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want outputFormat
	}{
		{"", formatText},
		{"text", formatText},
		{"JSON", formatJSON},
		{" yaml ", formatYAML},
		{"yml", formatYAML},
	}
	for _, tt := range tests {
		got, err := parseOutputFormat(tt.in)
		if err != nil {
			t.Fatalf("parseOutputFormat(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := parseOutputFormat("xml"); !errors.Is(err, sharedErrors.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriteStructuredYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeStructured(&buf, formatYAML, pqc.Assess("ML-KEM-768", "", "")); err != nil {
		t.Fatalf("writeStructured: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded["pqStatus"] != "green" {
		t.Fatalf("expected pqStatus green, got %v", decoded["pqStatus"])
	}
	crypto, ok := decoded["cryptography"].(map[string]any)
	if !ok {
		t.Fatalf("missing cryptography section: %v", decoded)
	}
	if crypto["signature"] != nil {
		t.Fatalf("expected absent signature to be null, got %v", crypto["signature"])
	}
}

func TestWriteStructuredText(t *testing.T) {
	if err := writeStructured(&bytes.Buffer{}, formatText, nil); !errors.Is(err, sharedErrors.ErrUnsupportedFormat) {
		t.Fatalf("expected text to be rejected by writeStructured, got %v", err)
	}
}

func TestPrintReportFailure(t *testing.T) {
	disableColor(t)

	report := checker.FailureReport("gone.example", checker.SourceProbe, errors.New("no such host"))
	var buf bytes.Buffer
	printReport(&buf, report)
	out := buf.String()

	for _, want := range []string{
		"gone.example  [ERROR]  source=probe",
		"Error:         no such host",
		"Connection failed, Domain might not exist",
		"Key exchange:  absent",
		"Verdict:       RED (Not PQ Ready)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	printSummary(&buf, checker.Summary{Total: 3, Green: 1, Yellow: 1, Red: 1, Errors: 1})
	want := "3 target(s): green 1  yellow 1  red 1  errors 1\n"
	if buf.String() != want {
		t.Fatalf("printSummary = %q, want %q", buf.String(), want)
	}
}
