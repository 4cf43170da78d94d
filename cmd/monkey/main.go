package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/arshidkv12/monkey/internal/config"
	"github.com/arshidkv12/monkey/internal/evaluator"
	"github.com/arshidkv12/monkey/internal/lexer"
	"github.com/arshidkv12/monkey/internal/parser"
	"github.com/arshidkv12/monkey/internal/pipeline"
	"github.com/arshidkv12/monkey/internal/repl"
)

func main() {
	var (
		evalSource = flag.StringP("eval", "e", "", "evaluate the given source text and exit")
		configPath = flag.String("config", "", "path to monkey.yaml (default: ./monkey.yaml if present)")
		quiet      = flag.BoolP("quiet", "q", false, "suppress the REPL banner")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: monkey [flags] [script]\n\n")
		fmt.Fprintf(os.Stderr, "Without a script, reads from stdin; on a terminal this starts the REPL.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *quiet {
		cfg.Banner = false
	}

	if *evalSource != "" {
		os.Exit(run(*evalSource, "<eval>", cfg))
	}

	if args := flag.Args(); len(args) > 0 {
		sourceCode, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading source file: %s\n", err)
			os.Exit(1)
		}
		os.Exit(run(string(sourceCode), args[0], cfg))
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		repl.Start(os.Stdin, os.Stdout, cfg)
		return
	}

	// Piped input: treat all of stdin as one program.
	sourceCode, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %s\n", err)
		os.Exit(1)
	}
	os.Exit(run(string(sourceCode), "<stdin>", cfg))
}

func loadConfig(path string) *config.Config {
	if path == "" {
		path = config.Find(".")
	}
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return cfg
}

func run(sourceCode, filePath string, cfg *config.Config) int {
	ctx := pipeline.NewPipelineContext(sourceCode)
	ctx.FilePath = filePath

	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&evaluator.EvaluatorProcessor{},
	).Run(ctx)

	if len(ctx.Errors) > 0 {
		for _, err := range ctx.Errors {
			fmt.Fprintf(os.Stderr, "- %s\n", err.Error())
		}
		return 1
	}

	if result, ok := ctx.Result.(evaluator.Object); ok && result != nil {
		if result != evaluator.NULL || cfg.PrintNull {
			fmt.Println(result.Inspect())
		}
	}
	return 0
}
