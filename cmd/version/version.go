// Package version prints build metadata
package version

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time using ldflags, e.g.
//
//	go build -ldflags "-X paylist/cmd/version.Version=1.2.0"
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("paylist %s\n", Version)
		cmd.Printf("  Build date: %s\n", BuildDate)
		cmd.Printf("  Git commit: %s\n", GitCommit)
		cmd.Printf("  Go version: %s\n", runtime.Version())
	},
}
