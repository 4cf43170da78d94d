package evaluator

import (
	"github.com/arshidkv12/monkey/internal/ast"
	"github.com/arshidkv12/monkey/internal/diagnostics"
	"github.com/arshidkv12/monkey/internal/pipeline"
	"github.com/arshidkv12/monkey/internal/token"
)

type EvaluatorProcessor struct{}

// Process runs the evaluator over the parsed program. Runtime errors become
// R001 diagnostics; the final value is stored on the context for the caller.
func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrR001, token.Token{}, "evaluator: AST root is not a program"))
		return ctx
	}

	result := EvalProgram(program)
	if err, ok := result.(*Error); ok {
		diag := diagnostics.NewError(
			diagnostics.ErrR001,
			token.Token{Line: err.Line, Column: err.Column},
			"%s", err.Message,
		)
		diag.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, diag)
		return ctx
	}

	ctx.Result = result
	return ctx
}
