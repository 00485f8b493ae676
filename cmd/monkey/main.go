package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"monkey/interpreter-go/pkg/driver"
	"monkey/interpreter-go/pkg/interpreter"
	"monkey/interpreter-go/pkg/runtime"
)

const cliToolVersion = "monkey 0.1.0-dev"

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	log = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log.SetOutput(stderr)
	if len(args) == 0 {
		return runRepl(nil)
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage(stdout)
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "repl":
		return runRepl(args[1:])
	default:
		if strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(stderr, "unknown flag %s\n", args[0])
			printUsage(stderr)
			return 1
		}
		return runEntry(args)
	}
}

func runEntry(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}

	cfg, err := loadConfigFrom(".")
	if err != nil {
		if len(args) == 0 {
			fmt.Fprintf(stderr, "failed to load config: %v\n", err)
			return 1
		}
		log.WithError(err).Warn("unable to load config; falling back to direct file execution")
		cfg = driver.DefaultConfig()
	}
	log.SetLevel(cfg.LogLevel)

	entry := cfg.Entry
	if len(args) == 1 {
		entry = strings.TrimSpace(args[0])
	}
	if entry == "" {
		fmt.Fprintf(stderr, "monkey run requires a source file (no entry in %s)\n", driver.ConfigFileName)
		return 1
	}
	return executeEntry(entry)
}

func executeEntry(entry string) int {
	log.WithField("entry", entry).Debug("running script")
	src, err := driver.ReadSource(entry)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load program: %v\n", err)
		return 1
	}

	session := driver.NewSession(interpreter.WithOutput(stdout))
	result, err := session.Run(src)
	if err != nil {
		fmt.Fprintf(stderr, "parse error: %v\n", err)
		return 1
	}
	if errVal, ok := runtime.AsError(result); ok {
		fmt.Fprintf(stderr, "runtime error: %s\n", errVal.Message)
		return 1
	}
	return 0
}

// loadConfigFrom finds and loads the nearest monkey.yml. A missing file is
// not an error and yields the defaults.
func loadConfigFrom(start string) (*driver.Config, error) {
	path, err := driver.FindConfig(start)
	if err != nil {
		if errors.Is(err, driver.ErrConfigNotFound) {
			log.Debug("no monkey.yml found; using defaults")
			return driver.DefaultConfig(), nil
		}
		return nil, err
	}
	cfg, err := driver.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("loaded config")
	return cfg, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  monkey                 start the REPL")
	fmt.Fprintln(w, "  monkey repl")
	fmt.Fprintln(w, "  monkey run [file.mk]   run a script, or the entry from monkey.yml")
	fmt.Fprintln(w, "  monkey <file.mk>")
	fmt.Fprintln(w, "  monkey --version")
}
