package interpreter

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"monkey/interpreter-go/pkg/parser"
	"monkey/interpreter-go/pkg/runtime"
)

type fixtureFile struct {
	Description string        `yaml:"description"`
	Cases       []fixtureCase `yaml:"cases"`
}

type fixtureCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Expect struct {
		Inspect    *string  `yaml:"inspect"`
		Kind       string   `yaml:"kind"`
		Stdout     []string `yaml:"stdout"`
		ParseError string   `yaml:"parse_error"`
		Error      *struct {
			Kind    string `yaml:"kind"`
			Message string `yaml:"message"`
		} `yaml:"error"`
	} `yaml:"expect"`
}

// testingT captures the subset of testing.T used by fixture helpers.
type testingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

func fixturePaths(t testingT, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		paths = append(paths, filepath.Join(root, entry.Name()))
	}
	sort.Strings(paths)
	return paths
}

func readFixtureFile(t testingT, path string) fixtureFile {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var file fixtureFile
	if err := dec.Decode(&file); err != nil {
		t.Fatalf("parse fixture %s: %v", path, err)
	}
	if len(file.Cases) == 0 {
		t.Fatalf("fixture %s has no cases", path)
	}
	return file
}

// runFixtureCase evaluates one case in a fresh interpreter and checks every
// expectation it declares.
func runFixtureCase(t testingT, c fixtureCase) {
	t.Helper()
	program, err := parser.ParseProgram(c.Source)
	if c.Expect.ParseError != "" {
		if err == nil {
			t.Fatalf("expected parse error %q", c.Expect.ParseError)
		}
		if err.Error() != c.Expect.ParseError {
			t.Fatalf("expected parse error %q, got %q", c.Expect.ParseError, err.Error())
		}
		return
	}
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var stdout bytes.Buffer
	result := New(WithOutput(&stdout)).EvaluateProgram(program)

	if c.Expect.Error != nil {
		errVal, ok := runtime.AsError(result)
		if !ok {
			t.Fatalf("expected error %q, got %s", c.Expect.Error.Message, result.Inspect())
		}
		if c.Expect.Error.Kind != "" && string(errVal.ErrKind) != c.Expect.Error.Kind {
			t.Fatalf("expected error kind %s, got %s", c.Expect.Error.Kind, errVal.ErrKind)
		}
		if errVal.Message != c.Expect.Error.Message {
			t.Fatalf("expected error %q, got %q", c.Expect.Error.Message, errVal.Message)
		}
	} else if errVal, ok := runtime.AsError(result); ok {
		t.Fatalf("evaluation error: %s", errVal.Message)
	}

	if c.Expect.Kind != "" && result.Kind().String() != c.Expect.Kind {
		t.Fatalf("expected result kind %s, got %s", c.Expect.Kind, result.Kind())
	}
	if c.Expect.Inspect != nil && result.Inspect() != *c.Expect.Inspect {
		t.Fatalf("expected result %s, got %s", *c.Expect.Inspect, result.Inspect())
	}
	if c.Expect.Stdout != nil {
		got := splitOutputLines(stdout.String())
		if strings.Join(got, "\n") != strings.Join(c.Expect.Stdout, "\n") {
			t.Fatalf("expected stdout %q, got %q", c.Expect.Stdout, got)
		}
	}
}

func splitOutputLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return []string{}
	}
	return strings.Split(out, "\n")
}
