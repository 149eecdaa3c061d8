// Command lisp loads and evaluates little Lisp programs, or reads them
// interactively.
//
//	lisp [-config file] [-log-level level] [-e expr] [file... [-]]
//
// Files are loaded into one session. With no file, or when the last
// argument is "-", a read-eval-print loop follows.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	lisp "github.com/nukata/little-lisp-in-go"
	"github.com/nukata/little-lisp-in-go/internal/config"
)

const helpText = `commands:
  :help          show this help
  :quit          leave (as does Ctrl-D)
  :reset         forget every definition
  :tree <expr>   print an expression as a tree without evaluating it
`

func main() {
	configPath := flag.String("config", "", "YAML settings (default ~/"+config.DefaultFile+")")
	expr := flag.String("e", "", "evaluate `expr`, print the result and exit")
	logLevel := flag.String("log-level", "", "override log_level (debug, info, warn, error)")
	flag.Parse()
	os.Exit(run(*configPath, *logLevel, *expr, flag.Args()))
}

func run(configPath, logLevel, expr string, args []string) int {
	cfg, err := config.Load(configPath)
	if err == nil {
		err = overrideLevel(&cfg, logLevel)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	ip, err := newSession(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if expr != "" {
		if !evalAndPrint(ip, expr, os.Stdout, os.Stderr) {
			return 1
		}
		return 0
	}
	interactive := len(args) == 0
	if n := len(args); n > 0 && args[n-1] == "-" {
		args, interactive = args[:n-1], true
	}
	for _, fileName := range args {
		if err := load(ip, fileName); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if interactive {
		return readEvalPrintLoop(ip, cfg)
	}
	return 0
}

// overrideLevel replaces the configured log level unless level is empty.
func overrideLevel(cfg *config.Config, level string) error {
	if level == "" {
		return nil
	}
	cfg.LogLevel = level
	_, err := cfg.Level()
	return err
}

// newSession builds an interpreter from the settings and evaluates the
// prelude into it.
func newSession(cfg config.Config, logOut io.Writer) (*lisp.Interpreter, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	ip := lisp.NewInterpreter(lisp.WithMaxDepth(cfg.MaxDepth), lisp.WithLogger(logger))
	for i, src := range cfg.Prelude {
		if _, err := ip.EvalString(src); err != nil {
			return nil, fmt.Errorf("prelude %d: %w", i+1, err)
		}
	}
	return ip, nil
}

// load evaluates a source file in the session.
func load(ip *lisp.Interpreter, fileName string) error {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	if len(lisp.Tokenize(string(src))) == 0 {
		return nil
	}
	if _, err := ip.EvalString(string(src)); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}

func evalAndPrint(ip *lisp.Interpreter, src string, out, errOut io.Writer) bool {
	v, err := ip.EvalString(src)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	fmt.Fprintln(out, v)
	return true
}

// readEvalPrintLoop repeats read-eval-print until end of input.
func readEvalPrintLoop(ip *lisp.Interpreter, cfg config.Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		src, ok := readExpression(ln, cfg.Prompt, cfg.ContinuePrompt)
		if !ok {
			fmt.Println("Goodbye")
			break
		}
		line := strings.TrimSpace(src)
		if line == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if strings.HasPrefix(line, ":") {
			if quit := command(ip, line, os.Stdout); quit {
				break
			}
			continue
		}
		evalAndPrint(ip, src, os.Stdout, os.Stdout)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// readExpression reads lines until they hold complete expressions.
// It returns false at end of input.
func readExpression(ln *liner.State, prompt1, prompt2 string) (string, bool) {
	var b strings.Builder
	for {
		prompt := prompt1
		if b.Len() > 0 {
			prompt = prompt2
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil { // Ctrl-C drops the pending input.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

// incomplete reports whether src stops inside a list.
func incomplete(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	tokens := lisp.Tokenize(src)
	if len(tokens) == 0 {
		return false
	}
	_, err := lisp.NewParser(tokens).ParseAll()
	return errors.Is(err, lisp.ErrUnexpectedEOF)
}

// command runs a REPL command and reports whether the loop should end.
func command(ip *lisp.Interpreter, line string, out io.Writer) (quit bool) {
	name, arg, _ := strings.Cut(line, " ")
	switch name {
	case ":quit", ":exit":
		return true
	case ":help":
		fmt.Fprint(out, helpText)
	case ":reset":
		ip.Reset()
		fmt.Fprintln(out, "environment reset")
	case ":tree":
		exp, err := lisp.Read(arg)
		if err != nil {
			fmt.Fprintln(out, err)
			return false
		}
		lisp.WriteTree(out, exp)
	default:
		fmt.Fprintf(out, "unknown command %s; try :help\n", name)
	}
	return false
}
