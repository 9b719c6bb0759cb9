package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "turing",
	Short:         "Turing is a single-tape Turing machine emulator",
	Long:          `Turing runs machines described in a small text format over integer tapes and reports whether the input is accepted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), turing.Version)
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// signalContext derives a context cancelled on SIGINT/SIGTERM and reports the signal on exit.
func signalContext(cmd *cobra.Command) (*cli.SignalContext, func()) {
	ctx := cli.NewSignalContext(cmd.Context())
	return ctx, func() {
		if sig := ctx.Signal(); sig != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "\nInterrupted by %v\n", sig)
		}
		ctx.Cancel()
	}
}
