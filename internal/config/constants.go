package config

// SourceFileExt is the canonical extension used when writing a new source file.
const SourceFileExt = ".rgz"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".rgz", ".regexeze"}

// Structural tokens. These are reserved keywords: none of them can be bound
// as a group name.
const (
	ExprTok      = "expr"
	ColonTok     = ":"
	SemicolonTok = ";"
	OpenBracket  = "["
	CloseBracket = "]"
	CommaTok     = ","
	AnyCharTok   = "any_char"
	SetFlagsTok  = "set_flags"
)

// Quantifier keywords.
const (
	ForTok        = "for"
	OrTok         = "or"
	ZeroOrMore    = "zero_or_more"
	OneOrMore     = "one_or_more"
	ZeroOrOne     = "zero_or_one"
	UpToTok       = "up_to"
	InfinityTok   = "infinity"
	GreedyTok     = "greedy"
	NotGreedyTok  = "not_greedy"
)

// Character class keywords.
const (
	OfTok        = "of"
	OrOfTok      = "or_of"
	FromTok      = "from"
	ToTok        = "to"
	OrFromTok    = "or_from"
	ExceptTok    = "except"
	OrExceptTok  = "or_except"
)

// Anchors.
const (
	StartOfStringTok = "start_of_string"
	EndOfStringTok   = "end_of_string"
)

// Special character keywords and the symbols they expand to.
var SpecialCharSet = map[string]string{
	"new_line":          `\n`,
	"tab":               `\t`,
	"carriage_return":   `\r`,
	"page_break":        `\f`,
	"vertical_space":    `\v`,
	"digit":             `\d`,
	"non_digit":         `\D`,
	"whitespace":        `\s`,
	"non_whitespace":    `\S`,
	"alphanumeric":      `\w`,
	"non_alphanumeric":  `\W`,
}

// UnmodifiableSpecialCharSet are anchors: they accept no modifier at all.
var UnmodifiableSpecialCharSet = map[string]string{
	StartOfStringTok: "^",
	EndOfStringTok:   "$",
}

// FlagSet maps flag keywords to their single-letter PCRE flag code.
var FlagSet = map[string]string{
	"ignore_case":  "i",
	"locale":       "L",
	"multiline":    "m",
	"any_char_all": "s",
	"unicode":      "u",
}

// AuxiliaryCharacterSet is the set of tokens that are reserved grammar
// keywords and therefore cannot be bound as a group name, beyond the
// special-char and flag keywords above.
var AuxiliaryCharacterSet = map[string]bool{
	ExprTok:          true,
	ColonTok:         true,
	SemicolonTok:     true,
	OpenBracket:      true,
	CloseBracket:     true,
	CommaTok:         true,
	AnyCharTok:       true,
	SetFlagsTok:      true,
	ForTok:           true,
	OrTok:            true,
	ZeroOrMore:       true,
	OneOrMore:        true,
	ZeroOrOne:        true,
	UpToTok:          true,
	InfinityTok:      true,
	GreedyTok:        true,
	NotGreedyTok:     true,
	OfTok:            true,
	OrOfTok:          true,
	FromTok:          true,
	ToTok:            true,
	OrFromTok:        true,
	ExceptTok:        true,
	OrExceptTok:      true,
	StartOfStringTok: true,
	EndOfStringTok:   true,
}

// IsReservedKeyword reports whether tok can never be used as a group name.
func IsReservedKeyword(tok string) bool {
	if AuxiliaryCharacterSet[tok] {
		return true
	}
	if _, ok := SpecialCharSet[tok]; ok {
		return true
	}
	if _, ok := FlagSet[tok]; ok {
		return true
	}
	return false
}
