package cmd

import "testing"

func TestRootCmdRegistersSubcommands(t *testing.T) {
	t.Parallel()

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "benchmark"} {
		if !names[want] {
			t.Errorf("rootCmd is missing subcommand %q", want)
		}
	}
}

func TestRootCmdDefaultsToGenerate(t *testing.T) {
	t.Parallel()

	if rootCmd.RunE == nil {
		t.Fatal("rootCmd.RunE is nil: running with no subcommand would no-op")
	}
}

func TestSetVersion(t *testing.T) {
	// Mutates rootCmd.Version, a package-level value shared across tests.
	SetVersion("v1.2.3")
	if rootCmd.Version != "v1.2.3" {
		t.Errorf("rootCmd.Version = %q, want %q", rootCmd.Version, "v1.2.3")
	}
}
