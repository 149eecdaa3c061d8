package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nukata/little-lisp-in-go/internal/config"
)

func TestIncomplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"", false},
		{"(+ 1 2)", false},
		{"(define f (lambda (x)", true},
		{"(define f (lambda (x)\n  x))", false},
		{")", false},
		{":tree (a", false},
	}
	for _, tt := range tests {
		if got := incomplete(tt.src); got != tt.want {
			t.Errorf("incomplete(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestSessionPrelude(t *testing.T) {
	cfg := config.Default()
	cfg.Prelude = []string{"(define pi 3.14)"}
	var logs bytes.Buffer
	ip, err := newSession(cfg, &logs)
	if err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	if !evalAndPrint(ip, "(* pi 2)", &out, &errOut) {
		t.Fatalf("failed: %s", errOut.String())
	}
	if out.String() != "6.28\n" {
		t.Errorf("printed %q", out.String())
	}
	if evalAndPrint(ip, "(nothing)", &out, &errOut) {
		t.Error("unbound name succeeded")
	}
	if !strings.Contains(errOut.String(), "nothing not found") {
		t.Errorf("error output %q", errOut.String())
	}

	cfg.Prelude = []string{"(oops"}
	if _, err := newSession(cfg, &logs); err == nil {
		t.Error("broken prelude accepted")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fact.lisp")
	src := "(define fact (lambda (n)\n  (if (<= n 1) 1 (* n (fact (- n 1))))))\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	ip, err := newSession(config.Default(), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if err := load(ip, path); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if !evalAndPrint(ip, "(fact 10)", &out, &out) || out.String() != "3628800\n" {
		t.Errorf("(fact 10) printed %q", out.String())
	}
}

func TestCommand(t *testing.T) {
	ip, err := newSession(config.Default(), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if command(ip, ":tree (+ 1 2)", &out) {
		t.Error(":tree quit")
	}
	if want := "symbol: +\n number: 1\n number: 2\n"; out.String() != want {
		t.Errorf(":tree printed %q, want %q", out.String(), want)
	}

	ip.EvalString("(define x 1)")
	out.Reset()
	command(ip, ":reset", &out)
	if _, ok := ip.Env.Lookup("x"); ok {
		t.Error("x survived :reset")
	}
	if !command(ip, ":quit", &out) {
		t.Error(":quit did not quit")
	}
}

func TestOverrideLevel(t *testing.T) {
	cfg := config.Default()
	if err := overrideLevel(&cfg, ""); err != nil || cfg.LogLevel != "warn" {
		t.Errorf("empty override: %q, %v", cfg.LogLevel, err)
	}
	if err := overrideLevel(&cfg, "debug"); err != nil || cfg.LogLevel != "debug" {
		t.Errorf("debug override: %q, %v", cfg.LogLevel, err)
	}
	if err := overrideLevel(&cfg, "loud"); err == nil {
		t.Error("unknown level accepted")
	}

	cfg = config.Default()
	overrideLevel(&cfg, "debug")
	var logs bytes.Buffer
	ip, err := newSession(cfg, &logs)
	if err != nil {
		t.Fatal(err)
	}
	ip.EvalString("(define x 1)")
	if !strings.Contains(logs.String(), "msg=define") {
		t.Errorf("no debug log with -log-level debug: %q", logs.String())
	}
}
