package main

import (
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "crawlctl" {
			t.Errorf("expected use 'crawlctl', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		subcommands := cmd.Commands()
		if len(subcommands) == 0 {
			t.Error("expected subcommands")
		}

		// Check for setup and doctor commands
		hasSetup := false
		hasDoctor := false
		for _, sub := range subcommands {
			if sub.Use == "setup" {
				hasSetup = true
			}
			if sub.Use == "doctor" {
				hasDoctor = true
			}
		}
		if !hasSetup {
			t.Error("expected setup subcommand")
		}
		if !hasDoctor {
			t.Error("expected doctor subcommand")
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestGetVerboseFlag tests verbose flag retrieval.
func TestGetVerboseFlag(t *testing.T) {
	t.Parallel()

	t.Run("returns false by default", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()
		if getVerboseFlag(cmd) {
			t.Error("expected verbose to default to false")
		}
	})

	t.Run("returns true when set", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()
		if err := cmd.PersistentFlags().Set("verbose", "true"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}
		if !getVerboseFlag(cmd) {
			t.Error("expected verbose to be true")
		}
	})
}
