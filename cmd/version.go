package cmd

import (
	"crypto/tls"
	"fmt"
	"io"
	"runtime"
	buildinfo "runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/khanhnv2901/pqcheck/cmd.Version=..." at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// minGoVersion is the first toolchain whose crypto/tls reports the negotiated
// key exchange group (ConnectionState.CurveID) to the probe.
const minGoVersion = "go1.25"

// probeGroups are the post-quantum hybrid groups crypto/tls offers by default.
var probeGroups = []tls.CurveID{tls.X25519MLKEM768}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the pqcheck version. With --verbose, also print build metadata and the TLS capabilities of this binary.",
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		out := cmd.OutOrStdout()

		if !verbose {
			fmt.Fprintf(out, "pqcheck version %s\n", Version)
			return
		}
		printBuildInfo(out)
	},
}

func printBuildInfo(out io.Writer) {
	modulePath := "unknown"
	if info, ok := buildinfo.ReadBuildInfo(); ok && info.Main.Path != "" {
		modulePath = info.Main.Path
	}

	fmt.Fprintln(out, "pqcheck Version Information:")
	fmt.Fprintf(out, "  Version:      %s\n", Version)
	fmt.Fprintf(out, "  Git Commit:   %s\n", GitCommit)
	fmt.Fprintf(out, "  Build Date:   %s\n", BuildDate)
	fmt.Fprintf(out, "  Module:       %s\n", modulePath)
	fmt.Fprintf(out, "  Go Version:   %s (requires %s or newer)\n", runtime.Version(), minGoVersion)
	fmt.Fprintf(out, "  OS/Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  Probe Groups: %s\n", groupNames(probeGroups))
}

func groupNames(groups []tls.CurveID) string {
	names := ""
	for i, g := range groups {
		if i > 0 {
			names += ", "
		}
		names += g.String()
	}
	return names
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "Show build metadata and TLS capabilities")
}
