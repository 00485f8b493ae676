package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/driver"
	"monkey/interpreter-go/pkg/interpreter"
	"monkey/interpreter-go/pkg/lexer"
	"monkey/interpreter-go/pkg/parser"
	"monkey/interpreter-go/pkg/printer"
	"monkey/interpreter-go/pkg/runtime"
)

const replHelp = `REPL commands:
  :quit           exit the REPL
  :env            list global bindings
  :tokens <src>   show the tokens of src
  :ast <src>      show src as parsed
  :help           show this help`

func runRepl(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args, " "))
		return 1
	}
	cfg, err := loadConfigFrom(".")
	if err != nil {
		log.WithError(err).Warn("unable to load config; using REPL defaults")
		cfg = driver.DefaultConfig()
	}
	log.SetLevel(cfg.LogLevel)

	fmt.Fprintf(stdout, "%s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", cliToolVersion)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath := historyPath(cfg.REPL.History); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				log.WithError(err).Warn("unable to save REPL history")
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	repl := newReplSession(stdout, stderr)
	for {
		code, ok := readByParseProbe(ln, cfg.REPL.Prompt, cfg.REPL.Continuation)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if repl.handle(code) {
			return 0
		}
	}
}

// historyPath resolves the configured history file against the home
// directory. An empty setting disables history.
func historyPath(setting string) string {
	if setting == "" {
		return ""
	}
	if filepath.IsAbs(setting) {
		return setting
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.WithError(err).Debug("no home directory; REPL history disabled")
		return ""
	}
	return filepath.Join(home, setting)
}

// readByParseProbe keeps prompting with the continuation prompt while the
// buffered input only fails to parse because it ended too early.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if needsMoreInput(src) {
			continue
		}
		return src, true
	}
}

func needsMoreInput(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	_, err := parser.ParseProgram(src)
	return err != nil && parser.IsIncomplete(err)
}

// replSession evaluates REPL input against one persistent global
// environment.
type replSession struct {
	session *driver.Session
	out     io.Writer
	errOut  io.Writer
}

func newReplSession(out, errOut io.Writer) *replSession {
	return &replSession{
		session: driver.NewSession(interpreter.WithOutput(out)),
		out:     out,
		errOut:  errOut,
	}
}

// handle runs one complete input and reports whether the REPL should exit.
func (r *replSession) handle(code string) bool {
	trimmed := strings.TrimSpace(code)
	if strings.HasPrefix(trimmed, ":") {
		return r.command(trimmed)
	}

	program, err := parser.ParseProgram(code)
	if err != nil {
		fmt.Fprintf(r.errOut, "parse error: %v\n", err)
		return false
	}
	result := r.session.Interpreter().EvaluateProgram(program)
	if errVal, ok := runtime.AsError(result); ok {
		fmt.Fprintf(r.errOut, "error: %s\n", errVal.Message)
		return false
	}
	if endsWithLet(program) {
		return false
	}
	fmt.Fprintln(r.out, result.Inspect())
	return false
}

func (r *replSession) command(line string) bool {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(name) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(r.out, replHelp)
	case ":env":
		env := r.session.Interpreter().GlobalEnvironment()
		for _, key := range env.Keys() {
			val, _ := env.Get(key)
			fmt.Fprintf(r.out, "%s = %s\n", key, val.Inspect())
		}
	case ":tokens":
		for _, tok := range lexer.Tokenize(rest) {
			fmt.Fprintf(r.out, "%-8s %q\n", tok.Kind, tok.Literal)
		}
	case ":ast":
		program, err := parser.ParseProgram(rest)
		if err != nil {
			fmt.Fprintf(r.errOut, "parse error: %v\n", err)
			return false
		}
		fmt.Fprintln(r.out, printer.Print(program))
	default:
		fmt.Fprintf(r.errOut, "unknown command %s. Type :help for commands.\n", name)
	}
	return false
}

func endsWithLet(program *ast.Program) bool {
	if len(program.Statements) == 0 {
		return true
	}
	_, ok := program.Statements[len(program.Statements)-1].(*ast.LetStatement)
	return ok
}
