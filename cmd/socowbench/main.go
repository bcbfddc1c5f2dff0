// Package main implements the socowbench CLI tool.
//
// socowbench drives allocation workloads against the socow vector and
// reports how often blocks were allocated, shared, forked and freed. It is
// the quickest way to see whether an inline capacity suits a workload:
// a good choice keeps promotions and block allocations near zero.
//
// Usage:
//
//	socowbench run                         # Run the built-in workload
//	socowbench run -w workload.yaml        # Run a workload file
//	socowbench run -w workload.yaml -p 8   # Up to 8 scenarios at once
//	socowbench version                     # Show version information
//
// A workload file looks like:
//
//	requires: v0.1.0
//	scenarios:
//	  - name: spill
//	    inline: 4
//	    elements: 5
//	    clones: 4
//	    mutations: 2
//	    iterations: 1000
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/socow/vec"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "socowbench",
		Short: "Allocation workloads for the small-buffer copy-on-write vector",
		Long: `socowbench runs YAML-described workloads against the socow vector and
reports block allocation, fork and promotion counts per run.

Every scenario builds a vector, clones it, mutates every clone and checks
that the original never observed the writes. A run fails if it did.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := vec.GetInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "socowbench version %s (%s)\n", info.Version, info.Design)
		},
	}
}
