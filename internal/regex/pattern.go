// Package regex wraps the translated Regexeze output in a compiled pattern
// object and exposes the thin compile/translate/search/match surface that
// delegates the actual matching to Go's stdlib regexp engine.
package regex

import (
	"regexp"
	"sync"

	"github.com/google/uuid"

	"github.com/funvibe/regexeze/internal/pipeline"
)

// CompiledPattern is the result of Compile: the translated regex text and a
// uuid identifying this particular compilation, plus a lazily built
// *regexp.Regexp for Search/Match.
type CompiledPattern struct {
	ID       uuid.UUID
	Source   string // original Regexeze source
	Pattern  string // translated regex text

	once     sync.Once
	compiled *regexp.Regexp
	compErr  error
}

// Compile translates source and wraps the result in a CompiledPattern. It
// does not yet build the underlying *regexp.Regexp — that happens lazily on
// first Search/Match, per RE2's own compile-on-use idiom.
func Compile(source string) (*CompiledPattern, error) {
	ctx := pipeline.NewTranslationPipeline().Run(pipeline.NewPipelineContext(source))
	if ctx.Err != nil {
		return nil, ctx.Err
	}
	return &CompiledPattern{
		ID:      uuid.New(),
		Source:  source,
		Pattern: ctx.Translated,
	}, nil
}

// Translate returns just the translated regex text for source.
func Translate(source string) (string, error) {
	ctx := pipeline.NewTranslationPipeline().Run(pipeline.NewPipelineContext(source))
	if ctx.Err != nil {
		return "", ctx.Err
	}
	return ctx.Translated, nil
}

func (p *CompiledPattern) regexp() (*regexp.Regexp, error) {
	p.once.Do(func() {
		p.compiled, p.compErr = regexp.Compile(p.Pattern)
	})
	return p.compiled, p.compErr
}

// Search reports whether target contains a match for the compiled pattern.
func (p *CompiledPattern) Search(target string) (bool, error) {
	re, err := p.regexp()
	if err != nil {
		return false, err
	}
	return re.MatchString(target), nil
}

// Match reports whether target matches the compiled pattern and, if it
// does, the full match plus every capture group (positional and named).
func (p *CompiledPattern) Match(target string) (*MatchResult, error) {
	re, err := p.regexp()
	if err != nil {
		return nil, err
	}
	loc := re.FindStringSubmatchIndex(target)
	if loc == nil {
		return nil, nil
	}
	groups := re.FindStringSubmatch(target)
	names := re.SubexpNames()

	result := &MatchResult{
		Full:   groups[0],
		Groups: groups,
		Named:  make(map[string]string),
	}
	for i, name := range names {
		if name != "" && i < len(groups) {
			result.Named[name] = groups[i]
		}
	}
	return result, nil
}

// Search compiles pattern and reports whether target contains a match.
func Search(pattern, target string) (bool, error) {
	cp, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return cp.Search(target)
}

// Match compiles pattern and reports the match details for target, or nil
// if it does not match.
func Match(pattern, target string) (*MatchResult, error) {
	cp, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return cp.Match(target)
}

// MatchResult is the outcome of a successful Match call.
type MatchResult struct {
	Full   string
	Groups []string
	Named  map[string]string
}
