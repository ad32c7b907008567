package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/khanhnv2901/pqcheck/internal/checker"
	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration, upstream endpoints and classifier details",
	Long: `Display pqcheck configuration information including:
  - Configuration file in use
  - Default source and timeouts
  - Lookup source endpoints
  - Platform information`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		configExists := "✓ (loaded)"
		if configPath == "" {
			configExists = "✗ (using defaults)"
			configPath = "~/" + configName + ".yaml"
			if homeDir, err := os.UserHomeDir(); err == nil {
				configPath = filepath.Join(homeDir, configName+".yaml")
			}
		}

		table := pqc.DefaultTable()
		patternCount := 0
		for _, role := range catalogRoles {
			for _, family := range catalogFamilies {
				patternCount += len(table.Patterns(role, family))
			}
		}

		// Get output writer (for testing support)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "pqcheck System Information")
		fmt.Fprintln(out, "==========================")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Platform:          %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "Version:           %s\n", Version)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Configuration File:   %s %s\n", configPath, configExists)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Defaults:")
		fmt.Fprintf(out, "  Source:             %s (available: %v)\n", cliConfig.Defaults.Source, checker.SourceNames())
		fmt.Fprintf(out, "  Timeout:            %ds\n", cliConfig.Defaults.TimeoutSecs)
		fmt.Fprintf(out, "  Output Format:      %s\n", cliConfig.Defaults.Format)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Lookup Source:")
		fmt.Fprintf(out, "  CT Log:             %s\n", cliConfig.Sources.CTLogURL)
		fmt.Fprintf(out, "  TLS Observatory:    %s\n", cliConfig.Sources.ObservatoryURL)
		fmt.Fprintf(out, "  Observatory Wait:   %ds\n", cliConfig.Sources.ObservatoryWaitSecs)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Classifier:")
		fmt.Fprintf(out, "  Patterns:           %d\n", patternCount)
		fmt.Fprintf(out, "  Reference Schemes:  %d\n", len(pqc.Reference()))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To change defaults, create ~/.pqcheck.yaml with e.g.:")
		fmt.Fprintln(out, "  defaults:")
		fmt.Fprintln(out, "    source: lookup")
		fmt.Fprintln(out, "    timeout_secs: 15")

		return nil
	},
}
