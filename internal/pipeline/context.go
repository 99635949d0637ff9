package pipeline

import (
	"github.com/funvibe/regexeze/internal/token"
)

// PipelineContext holds the data passed between pipeline stages: the
// source text going in, the token stream and translated regex coming out.
type PipelineContext struct {
	SourceCode string
	FilePath   string // source file path, if a caller sets it; Compile and Translate leave it empty

	Tokens     []token.Token
	Translated string

	Err error
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}
