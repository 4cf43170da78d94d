package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arshidkv12/monkey/internal/config"
)

func runSession(t *testing.T, cfg *config.Config, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	Start(in, &out, cfg)
	return out.String()
}

func TestEvaluatesExpressions(t *testing.T) {
	out := runSession(t, nil, "5 + 5;")

	if !strings.Contains(out, "10") {
		t.Errorf("output does not contain result:\n%s", out)
	}
}

func TestPrintsDiagnostics(t *testing.T) {
	out := runSession(t, nil, "5 + true;")

	if !strings.Contains(out, "type mismatch: INTEGER + BOOLEAN") {
		t.Errorf("output does not contain the runtime error:\n%s", out)
	}
}

func TestSessionSurvivesErrors(t *testing.T) {
	out := runSession(t, nil, "5 / 0;", "1 + 1;")

	if !strings.Contains(out, "division by zero") {
		t.Errorf("output does not contain the first line's error:\n%s", out)
	}
	if !strings.Contains(out, "2") {
		t.Errorf("output does not contain the second line's result:\n%s", out)
	}
}

func TestNullIsSilentByDefault(t *testing.T) {
	out := runSession(t, nil, "if (false) { 10; };")

	if strings.Contains(out, "null") {
		t.Errorf("null result should not be printed by default:\n%s", out)
	}
}

func TestPrintNullConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Banner = false
	cfg.PrintNull = true

	out := runSession(t, cfg, "if (false) { 10; };")

	if !strings.Contains(out, "null") {
		t.Errorf("null result should be printed with print_null:\n%s", out)
	}
}

func TestCustomPrompt(t *testing.T) {
	cfg := config.Default()
	cfg.Banner = false
	cfg.Prompt = "monkey> "

	out := runSession(t, cfg, "1;")

	if !strings.HasPrefix(out, "monkey> ") {
		t.Errorf("output does not start with the configured prompt:\n%s", out)
	}
}
