package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func newTestRepl() (*replSession, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return newReplSession(&out, &errOut), &out, &errOut
}

func TestReplPrintsResultsAndKeepsBindings(t *testing.T) {
	repl, out, errOut := newTestRepl()
	for _, line := range []string{
		"let add = fn(a, b) { a + b };",
		"let x = 40",
		"add(x, 2)",
		`"monkey"`,
		"[1, 2]",
	} {
		if repl.handle(line) {
			t.Fatalf("%q should not exit", line)
		}
	}
	if want := "42\n\"monkey\"\n[1, 2]\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

func TestReplErrorsDoNotResetEnvironment(t *testing.T) {
	repl, out, errOut := newTestRepl()
	repl.handle("let a = 1;")
	repl.handle("let = 2;")
	repl.handle("a + true")
	repl.handle("a")
	if out.String() != "1\n" {
		t.Fatalf("unexpected stdout %q", out.String())
	}
	for _, want := range []string{
		"parse error: unexpected token: expected IDENT, got =",
		"error: type mismatch: integer + boolean",
	} {
		if !strings.Contains(errOut.String(), want) {
			t.Fatalf("expected stderr to contain %q, got %q", want, errOut.String())
		}
	}
}

func TestReplPutsSharesOutput(t *testing.T) {
	repl, out, _ := newTestRepl()
	repl.handle(`puts("hi")`)
	if out.String() != "hi\nnull\n" {
		t.Fatalf("unexpected stdout %q", out.String())
	}
}

func TestReplCommands(t *testing.T) {
	repl, out, errOut := newTestRepl()
	repl.handle("let b = [1]; let a = 2;")

	repl.handle(":env")
	if out.String() != "a = 2\nb = [1]\n" {
		t.Fatalf("unexpected :env output %q", out.String())
	}

	out.Reset()
	repl.handle(":ast 1 + 2 * 3")
	if out.String() != "(1 + (2 * 3));\n" {
		t.Fatalf("unexpected :ast output %q", out.String())
	}

	out.Reset()
	repl.handle(":tokens let x")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "LET") || !strings.HasPrefix(lines[2], "EOF") {
		t.Fatalf("unexpected :tokens output %q", out.String())
	}

	repl.handle(":ast let")
	repl.handle(":nope")
	if !strings.Contains(errOut.String(), "parse error") || !strings.Contains(errOut.String(), "unknown command :nope") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}

	if !repl.handle(":quit") {
		t.Fatalf(":quit should exit")
	}
}

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"let f = fn(x) {", true},
		{"let f = fn(x) {\nx", true},
		{"let f = fn(x) {\nx\n}", false},
		{"[1, 2", true},
		{"let = 1", false},
		{"1 +", true},
		{":ast fn() {", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := needsMoreInput(tc.src); got != tc.want {
			t.Fatalf("needsMoreInput(%q) = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := historyPath(""); got != "" {
		t.Fatalf("empty setting should disable history, got %q", got)
	}
	if got := historyPath(".monkey_history"); got != filepath.Join(home, ".monkey_history") {
		t.Fatalf("unexpected relative history path %q", got)
	}
	abs := filepath.Join(home, "elsewhere", "hist")
	if got := historyPath(abs); got != abs {
		t.Fatalf("absolute history path should be kept, got %q", got)
	}
}
