package main

import (
	"fmt"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <machine>",
	Short: "Check a machine configuration",
	Long: `Parses the configuration and reports likely mistakes: transitions to undeclared
states, states unreachable from s0 and accepting states that can never be reached.
Findings are warnings unless --strict is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := turing.New(args[0])
		if err != nil {
			return err
		}

		issues := validator.ValidateDescription(m.Description())
		out := cmd.OutOrStdout()
		if len(issues) == 0 {
			fmt.Fprintln(out, "Machine is valid! ✅")
			return nil
		}
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return validator.Err(issues)
		}
		for _, issue := range issues {
			fmt.Fprintf(out, "warning [%s]: %s\n", issue.Kind, issue.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Fail when any issue is found")
}
