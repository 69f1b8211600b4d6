package main

import (
	"fmt"

	"github.com/phanxgames/wrapped"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a dataset and list every problem",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDataset()
		if err != nil {
			return err
		}
		if err := d.Validate(); err != nil {
			problems := wrapped.ValidationErrors(err)
			for _, p := range problems {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return fmt.Errorf("dataset has %d problem(s)", len(problems))
		}
		source := dataPath
		if source == "" {
			source = "embedded dataset"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", source)
		return nil
	},
}
