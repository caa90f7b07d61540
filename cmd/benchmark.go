package cmd

import "github.com/spf13/cobra"

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Benchmark raw key-generation throughput (not implemented)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return ErrNotImplemented
	},
}
