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
	log "github.com/sirupsen/logrus"

	"msdscript/parser"
)

const (
	historyFile = ".msdscript_history"
	promptMain  = "msd> "
	promptCont  = "...> "
)

const replHelp = `REPL commands:
  :interp   Evaluate each expression (default)
  :print    Print each expression in literal form
  :pretty   Pretty-print each expression
  :help     Show this message
  :quit     Exit the REPL
`

func runRepl(stdout, stderr io.Writer, logger *log.Logger) int {
	fmt.Fprintln(stdout, "msdscript REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	logger.WithField("history", histPath).Debug("repl started")

	mode := "interp"
	for {
		src, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(stdout)
			break
		}
		line := strings.TrimSpace(src)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			next, quit := replCommand(strings.ToLower(line), mode, stdout)
			if quit {
				return 0
			}
			mode = next
			ln.AppendHistory(line)
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		e, err := parser.Parse(src)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			continue
		}
		out, err := render(mode, e)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			continue
		}
		fmt.Fprintln(stdout, out)
	}

	return 0
}

// replCommand applies a ":" command and returns the output mode to continue
// with. quit is set by :quit.
func replCommand(cmd, mode string, stdout io.Writer) (next string, quit bool) {
	switch cmd {
	case ":quit":
		return mode, true
	case ":help":
		fmt.Fprint(stdout, replHelp)
		return mode, false
	case ":interp":
		return "interp", false
	case ":print":
		return "print", false
	case ":pretty":
		return "pretty-print", false
	default:
		fmt.Fprintln(stdout, "unknown command. Type :help for commands.")
		return mode, false
	}
}

// readByParseProbe reads lines until they form an expression that either
// parses or fails for a reason other than running out of input. ok is false
// at end of input.
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
			// Ctrl+C drops whatever was typed so far.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}
		if needsMore(src) {
			continue
		}
		return src, true
	}
}

// needsMore reports whether src failed to parse only because it ended early.
func needsMore(src string) bool {
	_, err := parser.Parse(src)
	var perr *parser.ParseError
	return errors.As(err, &perr) && perr.Incomplete
}
