package token

// Stream is a buffered token stream. The lexer fills it up front so the
// parser can look arbitrarily far ahead without re-lexing.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next returns the next token and advances the stream. Once the underlying
// buffer is exhausted it keeps returning the final EOF token.
func (s *Stream) Next() Token {
	if s.pos >= len(s.tokens) {
		if len(s.tokens) == 0 {
			return Token{Type: EOF}
		}
		return s.tokens[len(s.tokens)-1]
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *Stream) Peek(n int) []Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}

// Tokens returns the full underlying buffer.
func (s *Stream) Tokens() []Token {
	return s.tokens
}
