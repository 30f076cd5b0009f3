package token

// Kind represents the category of a markup token.
type Kind uint8

const (
	// Invalid indicates a zero-value token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Text is a maximal span of ordinary characters.
	Text
	// Whitespace is a single space.
	Whitespace

	// Newline is a run of '\n'.
	Newline
	// Hash is a run of '#'.
	Hash
	// Star is a run of '*'.
	Star
	// Backtick is a run of '`'.
	Backtick
	// Dash is a run of '-'.
	Dash

	// Plus represents '+'.
	Plus
	// Underscore represents '_'.
	Underscore
	// Exclamation represents '!'.
	Exclamation
	// Tilde represents '~'.
	Tilde
	// VerticalLine represents '|'.
	VerticalLine
	// Caret represents '^'.
	Caret
	// LeftParen represents '('.
	LeftParen
	// RightParen represents ')'.
	RightParen
	// LeftBracket represents '['.
	LeftBracket
	// RightBracket represents ']'.
	RightBracket
	// GreaterThan represents '>'.
	GreaterThan
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Text:         "Text",
	Whitespace:   "Whitespace",
	Newline:      "Newline",
	Hash:         "Hash",
	Star:         "Star",
	Backtick:     "Backtick",
	Dash:         "Dash",
	Plus:         "Plus",
	Underscore:   "Underscore",
	Exclamation:  "Exclamation",
	Tilde:        "Tilde",
	VerticalLine: "VerticalLine",
	Caret:        "Caret",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	GreaterThan:  "GreaterThan",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Repeatable reports whether consecutive characters of this kind collapse into one token.
func (k Kind) Repeatable() bool {
	switch k {
	case Newline, Hash, Star, Backtick, Dash:
		return true
	default:
		return false
	}
}

// RepeatableKind maps a run character to its token kind.
func RepeatableKind(ch byte) (Kind, bool) {
	switch ch {
	case '\n':
		return Newline, true
	case '#':
		return Hash, true
	case '*':
		return Star, true
	case '`':
		return Backtick, true
	case '-':
		return Dash, true
	default:
		return Invalid, false
	}
}

// PunctKind maps a single-character punctuation byte to its token kind.
func PunctKind(ch byte) (Kind, bool) {
	switch ch {
	case '+':
		return Plus, true
	case '_':
		return Underscore, true
	case '!':
		return Exclamation, true
	case '~':
		return Tilde, true
	case '|':
		return VerticalLine, true
	case '^':
		return Caret, true
	case '(':
		return LeftParen, true
	case ')':
		return RightParen, true
	case '[':
		return LeftBracket, true
	case ']':
		return RightBracket, true
	case '>':
		return GreaterThan, true
	default:
		return Invalid, false
	}
}
