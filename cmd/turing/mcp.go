package main

import (
	"os"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts an MCP server on standard input/output exposing the run_machine and
describe_machine tools. Logs go to stderr so they never corrupt the JSON-RPC stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		maxCells, _ := cmd.Flags().GetInt("max-tape-cells")
		debug, _ := cmd.Flags().GetBool("debug")

		logger := logging.New(logging.LevelFor(debug))
		srv := mcp.NewServer(
			mcp.WithMaxSteps(maxSteps),
			mcp.WithMaxTapeCells(maxCells),
			mcp.WithLogger(logger),
		)

		ctx, done := signalContext(cmd)
		defer done()

		logger.Info("starting turing MCP server (stdio)")
		return srv.Serve(ctx, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Int("max-steps", mcp.DefaultMaxSteps, "Step cap for every tool run")
	mcpCmd.Flags().Int("max-tape-cells", mcp.DefaultMaxTapeCells, "Largest initial tape a tool run may build (0 for no limit)")
	mcpCmd.Flags().Bool("debug", false, "Enable debug logging")
}
