package main

import (
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	Version, GitCommit = "0.1.0-test", "abc123"
	defer func() { Version, GitCommit = origVersion, origCommit }()

	cmd, out := newTestCmd()
	versionCmd.Run(cmd, nil)

	for _, want := range []string{"Censo 0.1.0-test", "Git Commit: abc123", "Layouts: 2024, 2025 (default 2025)", "Go Version: go"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"validate": false, "layout": false, "reference": false,
		"history": false, "watch": false, "version": false, "completion": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q is not registered", name)
		}
	}
}
