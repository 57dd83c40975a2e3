package linker

import "testing"

func cursorFixture() (*tokenCursor, []Token) {
	toks := []Token{
		{Kind: TokenCommand, Start: 0, End: 5},
		{Kind: TokenLParen, Start: 6, End: 7},
		{Kind: TokenLiteral, Start: 8, End: 12},
		{Kind: TokenRParen, Start: 13, End: 14},
		{Kind: TokenEOF, Start: 14, End: 14},
	}
	return newTokenCursor(toks), toks
}

func TestCursorNextPeek(t *testing.T) {
	cur, toks := cursorFixture()

	if tok, ok := cur.peek(); !ok || tok != toks[0] {
		t.Fatalf("peek: got %+v, %v", tok, ok)
	}
	// peek must not advance
	if tok, ok := cur.next(); !ok || tok != toks[0] {
		t.Fatalf("next: got %+v, %v", tok, ok)
	}

	for i := 1; i < len(toks); i++ {
		tok, ok := cur.next()
		if !ok || tok != toks[i] {
			t.Fatalf("next %d: got %+v, %v", i, tok, ok)
		}
	}

	if _, ok := cur.next(); ok {
		t.Error("next past the end must report none")
	}
	if _, ok := cur.peek(); ok {
		t.Error("peek past the end must report none")
	}
}

func TestCursorSaveRestore(t *testing.T) {
	cur, toks := cursorFixture()

	cur.next()
	mark := cur.save()
	cur.next()
	cur.next()

	cur.restore(mark)
	if tok, ok := cur.next(); !ok || tok != toks[1] {
		t.Fatalf("after restore: got %+v, %v, want %+v", tok, ok, toks[1])
	}
}

func TestCursorRewindBy(t *testing.T) {
	cur, toks := cursorFixture()

	cur.next()
	cur.next()
	cur.rewindBy(1)
	if tok, _ := cur.peek(); tok != toks[1] {
		t.Fatalf("after rewindBy(1): got %+v, want %+v", tok, toks[1])
	}

	// rewinding past the start clamps to zero
	cur.rewindBy(10)
	if tok, _ := cur.peek(); tok != toks[0] {
		t.Fatalf("after clamped rewind: got %+v, want %+v", tok, toks[0])
	}
}
