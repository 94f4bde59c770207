// Package generate handles transfer-list generation from table files
package generate

import (
	"time"

	"github.com/spf13/cobra"

	"paylist/cmd/root"
	"paylist/internal/fileutils"
	"paylist/internal/generator"
	"paylist/internal/logging"
	"paylist/internal/tabular"
)

var tripsFile string

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a bank transfer list from invoice and business-trip tables",
	Long: `Generate reads an invoice table file and, optionally, a business-trip table
file, runs both through the transfer pipelines and writes the bank transfer
list. Without --output the file gets the date-stamped name the bank import
expects.`,
	Run: generateFunc,
}

func init() {
	Cmd.Flags().StringVarP(&tripsFile, "trips", "t", "", "Business-trip table file (optional)")
}

func generateFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Generate command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatalf("No invoice file given, use --input")
	}

	invoiceData, err := fileutils.ReadTextFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading invoice file: %v", err)
	}

	tripData := ""
	if tripsFile != "" {
		tripData, err = fileutils.ReadTextFile(tripsFile)
		if err != nil {
			root.Log.Fatalf("Error reading business-trip file: %v", err)
		}
	}

	opts, err := generator.OptionsFromConfig(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Invalid configuration: %v", err)
	}

	gen := generator.New(opts, root.Log)
	result, err := gen.Generate(invoiceData, tripData)
	if err != nil {
		root.Log.Fatalf("Error generating transfer list: %v", err)
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = generator.OutputFileName(time.Now())
	}

	if err := tabular.WriteTransfersToFile(output, result.Transfers, opts.OutputDelimiter); err != nil {
		root.Log.Fatalf("Error writing transfer file: %v", err)
	}

	total, err := result.Total()
	if err != nil {
		root.Log.Fatalf("Error totaling transfers: %v", err)
	}

	root.Log.Info("Transfer list generated successfully!",
		logging.Field{Key: logging.FieldOutputFile, Value: output},
		logging.Field{Key: logging.FieldCount, Value: len(result.Transfers)},
		logging.Field{Key: logging.FieldSkipped, Value: len(result.Skipped)},
		logging.Field{Key: logging.FieldTotal, Value: total.StringFixed(2)})
}
