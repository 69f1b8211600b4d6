package main

import (
	"errors"
	"fmt"

	"github.com/phanxgames/wrapped"
	"github.com/spf13/cobra"
)

var errNoSlides = errors.New("dataset produced no slides")

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the slide list with progress percentages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDataset()
		if err != nil {
			return err
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("invalid dataset: %w", err)
		}
		entries := wrapped.Outline(d)
		if len(entries) == 0 {
			return errNoSlides
		}
		out := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(out, "%2d  %-28s %5.1f%%\n", e.Index+1, e.Title, e.Progress*100)
		}
		return nil
	},
}
