package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"msdscript/ast"
	"msdscript/corpus"
	"msdscript/interpreter"
	"msdscript/parser"
)

const appName = "msdscript"

const usageText = `usage: msdscript MODE [-file PATH | PATH] [-root DIR] [-v]

Modes (exactly one):
  --help           Print this message.
  --test           Run the built-in self checks.
  --interp         Evaluate the input and print the resulting value.
  --print          Print the input in fully parenthesized form.
  --pretty-print   Print the input in minimally parenthesized, aligned form.
  --repl           Start an interactive session.
  --check          Parse every .msd file under -root and report failures.

The expression is read from standard input unless -file is given.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main with its process state passed in. It returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usageText) }

	var (
		help, selfTest, interp, literal, pretty, repl, check bool
		sourcePath, rootPath                                 string
		verbose                                              bool
	)
	fs.BoolVar(&help, "help", false, "print usage")
	fs.BoolVar(&selfTest, "test", false, "run the built-in self checks")
	fs.BoolVar(&interp, "interp", false, "evaluate and print the value")
	fs.BoolVar(&literal, "print", false, "print the literal form")
	fs.BoolVar(&pretty, "pretty-print", false, "print the pretty form")
	fs.BoolVar(&repl, "repl", false, "start an interactive session")
	fs.BoolVar(&check, "check", false, "parse every .msd file under -root")
	fs.StringVar(&sourcePath, "file", "", "Path to an msdscript source file")
	fs.StringVar(&rootPath, "root", "", "Directory scanned by --check (defaults to the current directory)")
	fs.BoolVar(&verbose, "v", false, "verbose diagnostics on stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger := newLogger(stderr, verbose)

	// Allow positional argument as shorthand.
	if sourcePath == "" && fs.NArg() > 0 {
		sourcePath = fs.Arg(0)
	}

	modes := map[string]bool{
		"help":         help,
		"test":         selfTest,
		"interp":       interp,
		"print":        literal,
		"pretty-print": pretty,
		"repl":         repl,
		"check":        check,
	}
	mode := ""
	for name, set := range modes {
		if !set {
			continue
		}
		if mode != "" {
			fmt.Fprintln(stderr, "ERROR: only one mode may be given")
			fs.Usage()
			return 1
		}
		mode = name
	}
	if mode == "" {
		fmt.Fprintln(stderr, "ERROR: no mode given")
		fs.Usage()
		return 1
	}
	logger.WithField("mode", mode).Debug("starting")

	switch mode {
	case "help":
		fmt.Fprint(stdout, usageText)
		return 0
	case "test":
		return runSelfTest(stdout, stderr)
	case "repl":
		return runRepl(stdout, stderr, logger)
	case "check":
		return runCheck(rootPath, stdout, stderr, logger)
	}

	e, err := readExpr(sourcePath, stdin, logger)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}
	out, err := render(mode, e)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func readExpr(sourcePath string, stdin io.Reader, logger *log.Logger) (ast.Expr, error) {
	if sourcePath == "" {
		logger.WithField("source", "<stdin>").Debug("reading input")
		return parser.ParseReader("<stdin>", stdin)
	}
	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("resolve source path: %w", err)
	}
	logger.WithField("source", absSource).Debug("reading input")
	return parser.ParseFile(absSource)
}

// render produces the output of one of the expression modes.
func render(mode string, e ast.Expr) (string, error) {
	switch mode {
	case "interp":
		v, err := interpreter.Interp(e, interpreter.EmptyEnv())
		if err != nil {
			return "", err
		}
		return v.String(), nil
	case "print":
		return ast.String(e), nil
	case "pretty-print":
		return ast.PrettyString(e), nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

func runCheck(rootPath string, stdout, stderr io.Writer, logger *log.Logger) int {
	if rootPath == "" {
		rootPath = "."
	}
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: resolve root path: %v\n", err)
		return 1
	}
	idx, err := corpus.BuildIndex(absRoot)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: failed to index %s: %v\n", absRoot, err)
		return 1
	}
	for _, path := range idx.Paths() {
		if perr, failed := idx.Failures[path]; failed {
			logger.WithField("file", path).Warn("parse failed")
			fmt.Fprintf(stdout, "FAIL %s: %v\n", path, perr)
			continue
		}
		logger.WithField("file", path).Debug("parsed")
	}
	total := len(idx.Exprs) + len(idx.Failures)
	fmt.Fprintf(stdout, "%d files checked, %d failed\n", total, len(idx.Failures))
	if !idx.OK() {
		return 1
	}
	return 0
}
