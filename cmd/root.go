// Package cmd wires the cobra CLI surface to the config loader and
// the search driver: a "generate" subcommand (also the default when
// no subcommand is given) and an unimplemented "benchmark" stub.
package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vanityssh",
	Short: "Generate a vanity Ed25519 SSH key pair",
	Long: `vanityssh searches for an Ed25519 SSH key pair whose public key,
private key, or fingerprint contains a configured set of keywords.

Keywords and search policy are read from a YAML config file: the path
given by -c/--config, or config.yaml / config.yml in the working
directory. Running with no subcommand is equivalent to "generate".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(benchmarkCmd)
}

// SetVersion sets the version string for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. The returned error, if any, should
// be mapped to a process exit code with ExitCode.
func Execute() error {
	return rootCmd.Execute()
}
