// SPDX-License-Identifier: MIT

// Command matgen writes a matrix-product workload for validate to check.
//
// Usage:
//
//	matgen matmul <dim> <ts> [--dir DIR] [--prefix NAME]
//	matgen matvec <dim> <ts> [--dir DIR] [--prefix NAME]
//
// dim is the matrix order and ts the tile height; ts must divide dim.
// Three files are written: <prefix>_A.mat, <prefix>_B.mat, <prefix>_C.mat.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/matcheck/generate"
	"github.com/spf13/cobra"
)

type genFlags struct {
	dir    string
	prefix string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "matgen",
		Short:         "Generate deterministic matrix-product workloads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newKindCmd(generate.KindMatmul, "A (dim×dim) · B (dim×dim)", generate.Matmul),
		newKindCmd(generate.KindMatvec, "A (dim×dim) · x (dim×1)", generate.Matvec),
	)

	return root
}

func newKindCmd(kind, what string, build func(dim, ts int) (*generate.Workload, error)) *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   kind + " <dim> <ts>",
		Short: "Write " + what + " and its product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("dim: %w", err)
			}
			ts, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("ts: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "# Initializing data")
			fmt.Fprintln(out, "# Starting algorithm")
			w, err := build(dim, ts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "# Finished algorithm...")

			paths, err := w.Save(f.dir, f.prefix)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(out, "# wrote", p)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&f.dir, "dir", ".", "output directory")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "file name prefix (default: "+kind+")")

	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "matgen:", err)
		os.Exit(1)
	}
}
