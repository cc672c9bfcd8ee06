// Released under an MIT license. See LICENSE.

package options

import (
	"testing"
)

func TestScript(t *testing.T) {
	ParseArgs([]string{"-t", "--closures=stack", "script.lum"}, true)

	if Script() != "script.lum" || Interactive() {
		t.Fatalf("expected a non-interactive script, got %q", Script())
	}

	if !Trace() || Closures() != "stack" {
		t.Fatal("expected tracing with stack closures")
	}
}

func TestCommand(t *testing.T) {
	ParseArgs([]string{"--config=lum.yaml", "-c", "(+ 1 2)"}, true)

	if Command() != "(+ 1 2)" || Config() != "lum.yaml" || Interactive() {
		t.Fatalf("expected a non-interactive command, got %q", Command())
	}

	if Trace() || Closures() != "" {
		t.Fatal("expected no tracing and the default closure mode")
	}
}

func TestInteractive(t *testing.T) {
	for _, tc := range []struct {
		argv     []string
		terminal bool
		expected bool
	}{
		{nil, true, true},
		{nil, false, false},
		{[]string{"-i"}, true, false},
		{[]string{"-i"}, false, true},
		{[]string{"-it"}, false, true},
	} {
		ParseArgs(tc.argv, tc.terminal)

		if Interactive() != tc.expected {
			t.Errorf("%v (terminal: %v): expected interactive to be %v",
				tc.argv, tc.terminal, tc.expected)
		}
	}
}
