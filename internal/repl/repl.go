// Package repl implements the interactive read-eval-print loop.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arshidkv12/monkey/internal/config"
	"github.com/arshidkv12/monkey/internal/evaluator"
	"github.com/arshidkv12/monkey/internal/lexer"
	"github.com/arshidkv12/monkey/internal/parser"
	"github.com/arshidkv12/monkey/internal/pipeline"
)

// Start reads lines from in, runs each through the full pipeline and prints
// either the diagnostics or the result. Each line is an independent program:
// the language has no bindings, so no state survives between lines.
func Start(in io.Reader, out io.Writer, cfg *config.Config) {
	if cfg == nil {
		cfg = config.Default()
	}

	if cfg.Banner {
		fmt.Fprintln(out, "monkey — expression language REPL (ctrl-d to exit)")
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		ctx := pipeline.NewPipelineContext(line)
		ctx.FilePath = "<repl>"
		ctx = pipeline.New(
			&lexer.LexerProcessor{},
			&parser.ParserProcessor{},
			&evaluator.EvaluatorProcessor{},
		).Run(ctx)

		if len(ctx.Errors) > 0 {
			for _, err := range ctx.Errors {
				fmt.Fprintf(out, "%s\n", err.Error())
			}
			continue
		}

		result, ok := ctx.Result.(evaluator.Object)
		if !ok || result == nil {
			continue
		}
		if result == evaluator.NULL && !cfg.PrintNull {
			continue
		}
		fmt.Fprintln(out, result.Inspect())
	}
}
