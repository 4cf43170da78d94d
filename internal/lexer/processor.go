package lexer

import (
	"github.com/arshidkv12/monkey/internal/diagnostics"
	"github.com/arshidkv12/monkey/internal/pipeline"
	"github.com/arshidkv12/monkey/internal/token"
)

type LexerProcessor struct{}

// Process lexes ctx.SourceCode into a buffered token stream. Illegal tokens
// are reported as diagnostics but the stream is still produced so the parser
// can surface further errors in the same run.
func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	stream := NewTokenStream(l)

	for _, tok := range stream.Tokens() {
		if tok.Type != token.ILLEGAL {
			continue
		}
		if msg, ok := tok.Literal.(string); ok && msg != tok.Lexeme {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL001, tok, "invalid integer literal %q: %s", tok.Lexeme, msg))
		} else {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL001, tok, "illegal character %q", tok.Lexeme))
		}
	}

	ctx.TokenStream = stream
	return ctx
}
