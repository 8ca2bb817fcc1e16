package main

import (
	"os"
	"testing"

	"pagereport/internal/cmd"
)

func TestVersionVariables(t *testing.T) {
	// Test that version variables are properly defined
	if Version == "" {
		t.Error("Version should not be empty string")
	}

	if BuildTime == "" {
		t.Error("BuildTime should not be empty string")
	}

	// Test setting version info
	cmd.SetVersionInfo(Version, BuildTime)
}

func TestMainWithHelp(t *testing.T) {
	// Save original args and restore after test
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"pagereport", "--help"}

	cmd.SetVersionInfo(Version, BuildTime)

	// Help command should not return an error
	if err := cmd.Execute(); err != nil {
		t.Errorf("cmd.Execute() with help should not return error, got: %v", err)
	}
}

func TestMainWithVersion(t *testing.T) {
	// Save original args
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"pagereport", "--version"}

	cmd.SetVersionInfo("1.0.0-test", "2024-01-01T00:00:00Z")

	// Execute should return without error for version command
	if err := cmd.Execute(); err != nil {
		t.Logf("Execute with version returned: %v", err)
	}
}
