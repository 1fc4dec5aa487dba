package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/tisense/sensorkit/internal/ingest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.csv>",
	Short: "Validate a CSV file of sensor readings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := ingest.ValidateFile(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
