// Command lox is the interpreter's entry point: a thin wrapper around
// package cli that reads the source file and exits with the code
// spec.md §6 specifies. Grounded on the teacher's main.go
// (runFile/runPrompt), split so the orchestration logic lives in an
// importable, testable package instead of main.
package main

import (
	"fmt"
	"os"

	"github.com/loxwalk/lox/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := cli.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}

	if cfg.Command == "repl" {
		return cli.REPL(os.Stdout, os.Stderr)
	}

	source, err := os.ReadFile(cfg.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read file %q: %v\n", cfg.Path, err)
		return cli.ExitUsage
	}

	return cli.Run(cfg, string(source), os.Stdout, os.Stderr)
}
