package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestFatalErrorMessage(t *testing.T) {
	c := &fakeContext{errText: "Invalid argument"}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", fatalf("card %s not found", "x"), "card x not found"},
		{"server", serverErrorf(c, "couldn't switch profile"), "couldn't switch profile: Invalid argument"},
		{"usage", usageErrorf("too few arguments"), "too few arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.err.Error())
			}
		})
	}
}

func TestFatalErrorEmptyServerText(t *testing.T) {
	c := &fakeContext{}
	err := serverErrorf(c, "unknown error")
	if err.Error() != "unknown error" {
		t.Errorf("expected no suffix without server text, got %q", err.Error())
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, "prog", fatalf("couldn't switch profile"))
	if buf.String() != "couldn't switch profile\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	report(&buf, "prog", usageErrorf("unknown flag: --x"))
	out := buf.String()
	if !strings.HasPrefix(out, "unknown flag: --x\nusage: prog ") {
		t.Errorf("expected message followed by usage, got %q", out)
	}

	buf.Reset()
	report(&buf, "prog", errors.Wrap(usageErrorf("too few arguments"), "parse"))
	if !strings.Contains(buf.String(), "usage: prog") {
		t.Errorf("wrapped usage errors should still print usage, got %q", buf.String())
	}
}
