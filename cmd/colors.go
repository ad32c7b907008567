package cmd

import (
	"strings"

	"github.com/fatih/color"

	"github.com/khanhnv2901/pqcheck/internal/checker"
	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
	colorBold    = color.New(color.Bold).SprintFunc()
)

func formatStatusWithColor(status string) string {
	switch strings.ToUpper(status) {
	case checker.StatusReady:
		return colorSuccess(status)
	case checker.StatusError:
		return colorError(status)
	case checker.StatusInProgress:
		return colorWarn(status)
	default:
		return status
	}
}

// formatVerdictWithColor renders a verdict as "GREEN (PQ Ready)" in its color.
func formatVerdictWithColor(r pqc.Readiness) string {
	text := strings.ToUpper(string(r)) + " (" + r.Label() + ")"
	switch r {
	case pqc.Green:
		return colorSuccess(text)
	case pqc.Yellow:
		return colorWarn(text)
	default:
		return colorError(text)
	}
}

func formatStrengthWithColor(s pqc.Strength) string {
	switch s {
	case pqc.StrengthQuantum:
		return colorSuccess(string(s))
	case pqc.StrengthHybrid:
		return colorInfo(string(s))
	default:
		return colorWarn(string(s))
	}
}
