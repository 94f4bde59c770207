// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"paylist/internal/config"
	"paylist/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands. It is replaced with
	// the configured logger before any subcommand runs.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the resolved application configuration, available to
	// subcommands after PersistentPreRunE has run.
	Cfg *config.Config

	// SharedFlags holds flag values common to multiple commands
	SharedFlags = CommonFlags{}

	cfgFile string
	verbose bool

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "paylist",
		Short: "Generate bank transfer lists from pasted invoice and business-trip tables.",
		Long: `paylist converts invoice and business-trip tables, pasted or exported from
a spreadsheet, into the semicolon-delimited transfer list the bank's bulk
import expects. Amounts are normalized, reimbursement instructions are
resolved to employee accounts, and rows that do not qualify are reported.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to paylist!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfigFile(cfgFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}

			Cfg = cfg
			Log = config.NewLogger(cfg)
			return nil
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default searches $HOME/.paylist, .paylist, .)")
	Cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Invoice table file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output transfer file (default: date-stamped name)")
}
