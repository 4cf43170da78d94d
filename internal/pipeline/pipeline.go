package pipeline

import (
	"github.com/arshidkv12/monkey/internal/diagnostics"
	"github.com/arshidkv12/monkey/internal/token"
)

// PipelineContext carries the state threaded through the processing stages:
// source text in, token stream, AST and diagnostics out.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream *token.Stream

	// AstRoot is the parsed program. Typed loosely so this package does not
	// depend on the ast package; consumers type-assert to *ast.Program.
	AstRoot interface{}

	// Result is the final evaluated object, set by the evaluator processor.
	Result interface{}

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{SourceCode: sourceCode}
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages keep running after earlier errors so one
// pass collects diagnostics from every stage; stages that cannot work on a
// broken context skip themselves.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
