package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// addOutputFlag registers the --output flag read by printOutput.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", outputJSON, "Output format (json|yaml)")
}

// printOutput writes v to the command's stdout in the format chosen with --output.
func printOutput(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("output")
	w := cmd.OutOrStdout()

	switch format {
	case outputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("could not encode json output: %w", err)
		}
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint: mnd
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("could not encode yaml output: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("could not flush yaml output: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	return nil
}
