package cmd

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// disableColor turns off ANSI escapes for the duration of a test.
func disableColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = original
	})
}

// preserveConfig restores the shared CLI config and viper state after a test.
// Flags stay bound to cliConfig fields, so the value is restored in place.
func preserveConfig(t *testing.T) {
	t.Helper()
	saved := *cliConfig
	t.Cleanup(func() {
		*cliConfig = saved
		viper.Reset()
	})
}

// runCommand invokes cmd.RunE with captured output.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})
	err := cmd.RunE(cmd, args)
	return buf.String(), err
}
