package linker

import "bytes"

type TokenKind = uint8

const (
	TokenEOF TokenKind = iota
	TokenInvalid
	TokenNewline
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenComment
	TokenCommand
	TokenLiteral
)

var tokenKindNames = [...]string{
	TokenEOF:     "eof",
	TokenInvalid: "invalid",
	TokenNewline: "newline",
	TokenLParen:  "(",
	TokenRParen:  ")",
	TokenLBrace:  "{",
	TokenRBrace:  "}",
	TokenComment: "comment",
	TokenCommand: "command",
	TokenLiteral: "literal",
}

func TokenKindName(kind TokenKind) string {
	if int(kind) < len(tokenKindNames) {
		return tokenKindNames[kind]
	}
	return "unknown"
}

// Token is a span over the script bytes. The lexeme is never copied;
// Text slices it back out of the source buffer.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

func (t Token) Text(contents []byte) []byte {
	return contents[t.Start:t.End]
}

// Position is derived from newline tokens alone and is only consulted
// when building a diagnostic.
type Position struct {
	Line int
	Col  int
}

// The four directives the stub grammar knows. A literal is reclassified
// as a command here, once, at scan time; the parser dispatches on text.
var scriptCommands = map[string]bool{
	"OUTPUT_FORMAT": true,
	"INPUT":         true,
	"GROUP":         true,
	"AS_NEEDED":     true,
}

type scanner struct {
	contents []byte
	pos      int
}

// next returns one token and advances past it. After an EOF token the
// scanner must not be called again.
func (s *scanner) next() Token {
	for s.pos < len(s.contents) && (s.contents[s.pos] == ' ' || s.contents[s.pos] == '\t') {
		s.pos++
	}

	start := s.pos
	if s.pos == len(s.contents) {
		return Token{Kind: TokenEOF, Start: start, End: start}
	}

	switch c := s.contents[s.pos]; c {
	case '\n':
		s.pos++
		return Token{Kind: TokenNewline, Start: start, End: s.pos}
	case '\r':
		if s.pos+1 < len(s.contents) && s.contents[s.pos+1] == '\n' {
			s.pos += 2
			return Token{Kind: TokenNewline, Start: start, End: s.pos}
		}
		s.pos++
		return Token{Kind: TokenInvalid, Start: start, End: s.pos}
	case '(':
		s.pos++
		return Token{Kind: TokenLParen, Start: start, End: s.pos}
	case ')':
		s.pos++
		return Token{Kind: TokenRParen, Start: start, End: s.pos}
	case '{':
		s.pos++
		return Token{Kind: TokenLBrace, Start: start, End: s.pos}
	case '}':
		s.pos++
		return Token{Kind: TokenRBrace, Start: start, End: s.pos}
	}

	if bytes.HasPrefix(s.contents[s.pos:], []byte("/*")) {
		return s.scanComment(start)
	}

	return s.scanLiteral(start)
}

func (s *scanner) scanComment(start int) Token {
	end := bytes.Index(s.contents[s.pos+2:], []byte("*/"))
	if end == -1 {
		// No closing marker: the comment runs to the end of the buffer.
		s.pos = len(s.contents)
		return Token{Kind: TokenComment, Start: start, End: s.pos}
	}
	s.pos += 2 + end + 2
	return Token{Kind: TokenComment, Start: start, End: s.pos}
}

func (s *scanner) scanLiteral(start int) Token {
	for s.pos < len(s.contents) {
		switch s.contents[s.pos] {
		case ' ', '(', ')', '\n':
			goto done
		case '\r':
			if s.pos+1 < len(s.contents) && s.contents[s.pos+1] == '\n' {
				goto done
			}
			// Stray carriage return poisons the whole run.
			s.pos++
			return Token{Kind: TokenInvalid, Start: start, End: s.pos}
		}
		s.pos++
	}

done:
	tok := Token{Kind: TokenLiteral, Start: start, End: s.pos}
	if scriptCommands[string(tok.Text(s.contents))] {
		tok.Kind = TokenCommand
	}
	return tok
}

// scanTokens tokenizes the whole buffer up front, producing the token
// sequence and the parallel position index. Scanning stops at the first
// invalid token; there is no resynchronization. On clean input the
// sequence ends with exactly one zero-length EOF token.
func scanTokens(contents []byte) ([]Token, []Position) {
	s := scanner{contents: contents}

	var toks []Token
	var positions []Position

	line := 0
	lastNewlineEnd := 0

	for {
		tok := s.next()
		toks = append(toks, tok)
		positions = append(positions, Position{Line: line, Col: tok.Start - lastNewlineEnd})

		switch tok.Kind {
		case TokenNewline:
			line++
			lastNewlineEnd = tok.End
		case TokenEOF, TokenInvalid:
			return toks, positions
		}
	}
}
