package pipeline

import (
	"github.com/funvibe/regexeze/internal/lexer"
	"github.com/funvibe/regexeze/internal/parser"
)

// TokenizerStage wraps internal/lexer as a Processor.
type TokenizerStage struct{}

func (TokenizerStage) Process(ctx *PipelineContext) *PipelineContext {
	toks, err := lexer.Tokenize(ctx.SourceCode)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Tokens = toks
	return ctx
}

// TranslatorStage wraps internal/parser as a Processor.
type TranslatorStage struct{}

func (TranslatorStage) Process(ctx *PipelineContext) *PipelineContext {
	translated, err := parser.Translate(ctx.SourceCode, ctx.Tokens)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Translated = translated
	return ctx
}

// NewTranslationPipeline builds the standard tokenize-then-translate
// pipeline used by the compile/translate entry points.
func NewTranslationPipeline() *Pipeline {
	return New(TokenizerStage{}, TranslatorStage{})
}
