package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/trace"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <machine>",
	Short: "Export the state diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the machine's states and transitions.
With --tape the machine is run first and the states it visited are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tapePath, _ := cmd.Flags().GetString("tape")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")

		recorder := &trace.Recorder{}
		m, err := turing.New(args[0],
			turing.WithTapeFile(tapePath),
			turing.WithLifecycleHooks(recorder.Hooks()),
		)
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if cmd.Flags().Changed("tape") {
			ctx, done := signalContext(cmd)
			defer done()
			_, err := runner.NewRunner(runner.WithMaxSteps(maxSteps)).Run(ctx, m)
			if err != nil && !errors.Is(err, runner.ErrStepLimit) {
				return err
			}
			overlay = cli.Overlay(recorder)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(m.Description(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("tape", "t", "", "Run on this tape and highlight visited states")
	graphCmd.Flags().Int("max-steps", 100_000, "Step cap for the highlighted run")
}
