// SPDX-License-Identifier: MIT

// Command validate checks that C is the product of A and B.
//
// Usage:
//
//	validate <path_to_A> <path_to_B> <path_to_C>
//
// The command takes no flags: every argument, including ones that start with
// '-', is a path. The shapes, the Ok/Error verdict and the largest absolute
// difference are printed on stdout. The exit status is non-zero only when the files cannot
// be loaded or their shapes do not allow the check; a failed check still
// exits 0.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/matcheck/validate"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path_to_A> <path_to_B> <path_to_C>",
		Short: "Recompute A·B and compare it with C (tolerance 1e-3)",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("got %d: %w", len(args), validate.ErrArguments)
			}
			return nil
		},
		// Every argument is a path, even one starting with '-'.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := validate.New(validate.WithOutput(cmd.OutOrStdout())).Run(args...)
			return err
		},
	}
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "validate:", err)
		os.Exit(1)
	}
}
