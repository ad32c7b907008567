package cmd

import (
	"testing"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

func TestFormatStatusWithColor(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name   string
		status string
		want   string
	}{
		{name: "ready", status: "READY", want: "READY"},
		{name: "error", status: "ERROR", want: "ERROR"},
		{name: "in progress", status: "IN_PROGRESS", want: "IN_PROGRESS"},
		{name: "unknown", status: "pending", want: "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatStatusWithColor(tt.status); got != tt.want {
				t.Fatalf("formatStatusWithColor(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestFormatVerdictWithColor(t *testing.T) {
	disableColor(t)

	tests := []struct {
		verdict pqc.Readiness
		want    string
	}{
		{pqc.Green, "GREEN (PQ Ready)"},
		{pqc.Yellow, "YELLOW (Classical TLS 1.3)"},
		{pqc.Red, "RED (Not PQ Ready)"},
	}
	for _, tt := range tests {
		if got := formatVerdictWithColor(tt.verdict); got != tt.want {
			t.Errorf("formatVerdictWithColor(%s) = %q, want %q", tt.verdict, got, tt.want)
		}
	}
}

func TestFormatStrengthWithColor(t *testing.T) {
	disableColor(t)
	for _, s := range []pqc.Strength{pqc.StrengthQuantum, pqc.StrengthHybrid, pqc.StrengthClassical} {
		if got := formatStrengthWithColor(s); got != string(s) {
			t.Errorf("formatStrengthWithColor(%s) = %q", s, got)
		}
	}
}
