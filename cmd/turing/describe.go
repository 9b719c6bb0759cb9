package main

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <machine>",
	Short: "Print a readable summary of a machine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := turing.New(args[0])
		if err != nil {
			return err
		}
		report := tui.Report(filepath.Base(args[0]), m.Description())

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		}
		width, _ := cmd.Flags().GetInt("width")
		render, err := tui.NewRenderer(width)
		if err != nil {
			return err
		}
		out, err := render(report)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("raw", false, "Print markdown without rendering")
	describeCmd.Flags().Int("width", 0, "Word wrap width of the rendered report")
}
