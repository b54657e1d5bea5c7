package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MeKo-Tech/zscan"
)

// formatsCmd lists the supported symbology catalog.
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported barcode symbologies",
	Long: `List the barcode symbologies zscan knows about.

Examples:
  zscan formats
  zscan formats --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := zscan.FormatNames()
		output, _ := cmd.Flags().GetString("output")

		switch output {
		case "json":
			data, err := json.MarshalIndent(names, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(data))
		case "yaml":
			data, err := yaml.Marshal(names)
			if err != nil {
				return err
			}
			cmd.Print(string(data))
		case "text":
			for _, name := range names {
				cmd.Println(name)
			}
		default:
			return fmt.Errorf("unknown output format: %s", output)
		}
		return nil
	},
}

func init() {
	formatsCmd.Flags().String("output", "text", "output format (text, json, yaml)")

	rootCmd.AddCommand(formatsCmd)
}
