package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a machine on a tape",
	Long: `Loads a machine configuration and an optional tape, runs the machine until no
transition applies and prints the final state and whether the input is accepted.

Flags given on the command line override the values of --profile.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}
		flags := cmd.Flags()
		opts.MachinePath, _ = flags.GetString("machine")
		opts.TapePath, _ = flags.GetString("tape")
		opts.Display, _ = flags.GetBool("display")
		opts.Debug, _ = flags.GetBool("debug")
		opts.MaxSteps, _ = flags.GetInt("max-steps")
		opts.JSON, _ = flags.GetBool("json")
		opts.RedisURL, _ = flags.GetString("redis")
		opts.RunID, _ = flags.GetString("run-id")

		if path, _ := flags.GetString("profile"); path != "" {
			profile, err := cli.LoadProfile(path)
			if err != nil {
				return err
			}
			profile.Apply(&opts, flags.Changed)
		}

		ctx, done := signalContext(cmd)
		defer done()
		return cli.Execute(ctx, opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("machine", "m", "", "Machine configuration file")
	runCmd.Flags().StringP("tape", "t", "", "Tape file (defaults to a single blank cell)")
	runCmd.Flags().Bool("display", false, "Print every step and the final tape")
	runCmd.Flags().Bool("debug", false, "Enable debug logging (implies --display)")
	runCmd.Flags().Int("max-steps", 0, "Stop after this many steps (0 means no limit)")
	runCmd.Flags().Bool("json", false, "Print the result as JSON")
	runCmd.Flags().String("profile", "", "YAML run profile")
	runCmd.Flags().String("redis", "", "Record the result in Redis (redis://host:port/db)")
	runCmd.Flags().String("run-id", "", "Identifier of the recorded run (random by default)")
}
