package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), "prog", []string{"card", "--bogus", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "usage: prog") {
		t.Errorf("expected usage on stdout, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("expected empty stderr, got %q", stderr.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := [][]string{
		{"card", "A"},
		{"--bogus", "card", "A", "B"},
	}

	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), "prog", args, &stdout, &stderr)
		if code != 1 {
			t.Errorf("%v: expected exit code 1, got %d", args, code)
		}
		if stdout.Len() != 0 {
			t.Errorf("%v: expected empty stdout, got %q", args, stdout.String())
		}
		if !strings.Contains(stderr.String(), "\nusage: prog") {
			t.Errorf("%v: expected usage on stderr, got %q", args, stderr.String())
		}
	}
}

func TestRunBadConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, appName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("Server = ["), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), "prog", []string{"card", "A", "B"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "couldn't read config file") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "usage:") {
		t.Errorf("config errors must not print usage, got %q", stderr.String())
	}
}

func TestRunConnectionFailure(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PULSE_SERVER", filepath.Join(t.TempDir(), "no-such-socket"))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), "prog", []string{"card", "A", "B"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "unknown error: couldn't connect to audio server") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}
