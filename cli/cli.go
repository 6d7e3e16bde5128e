// Package cli dispatches the tokenize/parse/evaluate/run/repl
// subcommands, orchestrating the lex/parse/eval pipeline and mapping
// errors to exit codes, grounded on the teacher's main.go
// (runFile/runPrompt/newRunner) but rewritten to return an exit code
// instead of calling os.Exit directly, so the whole driver is
// testable without a subprocess.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/loxwalk/lox/eval"
	"github.com/loxwalk/lox/lex"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/parse"
	"github.com/loxwalk/lox/printer"
	"github.com/loxwalk/lox/token"
)

const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitSyntax  = 65
	ExitRuntime = 70
)

// Config is the parsed command line: a subcommand and, for every
// subcommand but repl, the source file path.
type Config struct {
	Command string
	Path    string
}

// ParseArgs parses os.Args[1:]-shaped arguments into a Config. It
// returns an error for a missing/unknown command or missing file path
// (spec.md §6 "Usage error"); the caller maps that to exit code 1.
func ParseArgs(args []string) (Config, error) {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) < 1 {
		return Config{}, fmt.Errorf("usage: lox <tokenize|parse|evaluate|run|repl> [filename]")
	}

	command := rest[0]
	switch command {
	case "repl":
		return Config{Command: command}, nil
	case "tokenize", "parse", "evaluate", "run":
		if len(rest) < 2 {
			return Config{}, fmt.Errorf("usage: lox %s <filename>", command)
		}
		return Config{Command: command, Path: rest[1]}, nil
	default:
		return Config{}, fmt.Errorf("unknown command: %s", command)
	}
}

// Run executes cfg against source, writing to stdout/stderr, and
// returns the process exit code spec.md §6's table specifies.
func Run(cfg Config, source string, stdout, stderr io.Writer) int {
	switch cfg.Command {
	case "tokenize":
		return runTokenize(source, stdout, stderr)
	case "parse":
		return runParse(source, stdout, stderr)
	case "evaluate":
		return runEvaluate(source, stdout, stderr)
	case "run":
		return runProgram(source, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", cfg.Command)
		return ExitUsage
	}
}

func runTokenize(source string, stdout, stderr io.Writer) int {
	tokens, errs := lex.Scan(source)
	for _, tok := range tokens {
		fmt.Fprintln(stdout, formatToken(tok))
	}
	reportErrs(stderr, errs)
	if len(errs) > 0 {
		return ExitSyntax
	}
	return ExitOK
}

func runParse(source string, stdout, stderr io.Writer) int {
	tokens, lexErrs := lex.Scan(source)

	stmts, parseErrs := parse.Parse(tokens)

	if len(parseErrs) == 1 && parse.IsMissingSemicolon(parseErrs[0]) {
		if expr, err := parse.ParseSingleExpression(tokens); err == nil {
			fmt.Fprintln(stdout, printer.Expr(expr))
			reportErrs(stderr, lexErrs)
			return exitFor(lexErrs, nil)
		}
	}

	for _, stmt := range stmts {
		fmt.Fprintln(stdout, printer.Stmt(stmt))
	}
	reportErrs(stderr, lexErrs)
	reportErrs(stderr, parseErrs)
	return exitFor(lexErrs, parseErrs)
}

func runEvaluate(source string, stdout, stderr io.Writer) int {
	tokens, lexErrs := lex.Scan(source)

	stmts, parseErrs := parse.Parse(tokens)

	if len(parseErrs) == 1 && parse.IsMissingSemicolon(parseErrs[0]) {
		if expr, err := parse.ParseSingleExpression(tokens); err == nil {
			value, _, rerr := eval.Eval(expr, eval.NewEnv())
			if rerr != nil {
				fmt.Fprintln(stderr, rerr.Error())
				return ExitRuntime
			}
			fmt.Fprintln(stdout, eval.Format(value))
			reportErrs(stderr, lexErrs)
			return exitFor(lexErrs, nil)
		}
	}

	if len(parseErrs) > 0 {
		reportErrs(stderr, lexErrs)
		reportErrs(stderr, parseErrs)
		return exitFor(lexErrs, parseErrs)
	}

	if code := exitFor(lexErrs, nil); code != ExitOK {
		reportErrs(stderr, lexErrs)
		return code
	}

	if _, rerr := eval.ExecProgram(stmts, eval.NewEnv(), stdout); rerr != nil {
		fmt.Fprintln(stderr, rerr.Error())
		return ExitRuntime
	}
	return ExitOK
}

func runProgram(source string, stdout, stderr io.Writer) int {
	tokens, lexErrs := lex.Scan(source)

	stmts, parseErrs := parse.Parse(tokens)
	if len(parseErrs) > 0 {
		// run aborts on the first syntax error (spec.md §7).
		reportErrs(stderr, lexErrs)
		fmt.Fprintln(stderr, parseErrs[0].Error())
		return exitFor(lexErrs, parseErrs[:1])
	}

	if code := exitFor(lexErrs, nil); code != ExitOK {
		reportErrs(stderr, lexErrs)
		return code
	}

	if _, rerr := eval.ExecProgram(stmts, eval.NewEnv(), stdout); rerr != nil {
		fmt.Fprintln(stderr, rerr.Error())
		return ExitRuntime
	}
	return ExitOK
}

func exitFor(lexErrs, parseErrs []*loxerr.Diagnostic) int {
	if len(lexErrs) > 0 || len(parseErrs) > 0 {
		return ExitSyntax
	}
	return ExitOK
}

func reportErrs(stderr io.Writer, errs []*loxerr.Diagnostic) {
	for _, e := range errs {
		fmt.Fprintln(stderr, e.Error())
	}
}

// formatToken renders one line of `tokenize` output (spec.md §6):
// simple tokens as `<KIND> <lexeme> null`, strings as
// `STRING "<value>" <value>`, numbers as `NUMBER <lexeme> <double>`
// with at least one fractional digit, and EOF as `EOF  null`.
func formatToken(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "EOF  null"
	case token.STRING:
		return fmt.Sprintf("STRING \"%s\" %s", tok.Literal, tok.Literal)
	case token.NUMBER:
		return fmt.Sprintf("NUMBER %s %s", tok.Lexeme, formatDouble(tok.Literal.(float64)))
	default:
		return fmt.Sprintf("%s %s null", tok.Kind, tok.Lexeme)
	}
}

func formatDouble(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
