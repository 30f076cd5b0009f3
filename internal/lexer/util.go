package lexer

// isTextBreaker reports whether ch ends a running Text token.
// Spaces, '#', '-', '+', '~', '^' and '>' only start tokens at the
// beginning of a run; inside a word they stay literal.
func isTextBreaker(ch byte) bool {
	switch ch {
	case '\n', '*', '`', '_', '!', '|', '[', ']', '(', ')':
		return true
	default:
		return false
	}
}
