package linker

import "fmt"

// LdScript is the parsed form of a linker stub script: the machine type
// an OUTPUT_FORMAT directive implies (MachineTypeNone when the script
// has none) and the libraries the script names, in source order.
type LdScript struct {
	Path        string
	MachineType MachineType
	Entries     []ScriptEntry
}

// ScriptEntry names one library. Entries from an AS_NEEDED block carry
// Needed=false. Name is a view into the script bytes, so the source
// buffer must outlive the result.
type ScriptEntry struct {
	Name   []byte
	Needed bool
}

// ParseLinkerScript recognizes the stub subset of the GNU linker script
// language: OUTPUT_FORMAT, INPUT, GROUP and nested AS_NEEDED. Scanning
// runs to completion before parsing starts. Any malformed input reports
// a diagnostic through ctx.Diags and returns ErrBadScript; the first
// error ends the parse, there is no recovery.
func ParseLinkerScript(ctx *Context, file *File) (*LdScript, error) {
	toks, positions := scanTokens(file.Contents)

	if last := toks[len(toks)-1]; last.Kind == TokenInvalid {
		pos := positions[len(positions)-1]
		ctx.Diags.Report(Diagnostic{
			Path: file.Name,
			Message: fmt.Sprintf("unrecognized bytes %s at line %d, column %d",
				hexEscape(last.Text(file.Contents)), pos.Line, pos.Col),
		})
		return nil, ErrBadScript
	}

	p := scriptParser{
		contents:  file.Contents,
		positions: positions,
		cur:       newTokenCursor(toks),
		sink:      ctx.Diags,
		path:      file.Name,
		script:    &LdScript{Path: file.Name},
	}

	if err := p.run(); err != nil {
		return nil, err
	}
	return p.script, nil
}

type scriptParser struct {
	contents  []byte
	positions []Position
	cur       *tokenCursor
	sink      DiagnosticSink
	path      string
	script    *LdScript
}

func (p *scriptParser) run() error {
	for {
		tok, ok := p.cur.peek()
		if !ok {
			break
		}

		if tok.Kind == TokenComment || tok.Kind == TokenNewline {
			p.cur.next()
			continue
		}
		if tok.Kind != TokenCommand {
			break
		}

		switch string(tok.Text(p.contents)) {
		case "OUTPUT_FORMAT":
			p.cur.next()
			if err := p.parseOutputFormat(); err != nil {
				return err
			}
		case "INPUT", "GROUP":
			p.cur.next()
			if err := p.parseGroup(); err != nil {
				return err
			}
		default:
			// AS_NEEDED is only valid inside INPUT/GROUP.
			return p.unexpected(tok)
		}
	}

	if tok, ok := p.cur.peek(); ok && tok.Kind != TokenEOF {
		return p.unexpected(tok)
	}
	return nil
}

// parseOutputFormat accepts either surface form of the directive, with
// the keyword already consumed:
//
//	OUTPUT_FORMAT(elf64-x86-64)
//
//	OUTPUT_FORMAT
//	{ elf64-x86-64
//	}
func (p *scriptParser) parseOutputFormat() error {
	mark := p.cur.save()
	if format, ok := p.matchParenLiteral(); ok {
		return p.setOutputFormat(format)
	}
	p.cur.restore(mark)

	if _, err := p.expect(TokenNewline); err != nil {
		return err
	}
	if _, err := p.expect(TokenLBrace); err != nil {
		return err
	}
	lit, err := p.expect(TokenLiteral)
	if err != nil {
		return err
	}
	if tok, ok := p.cur.peek(); ok && tok.Kind == TokenNewline {
		p.cur.next()
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return err
	}
	return p.setOutputFormat(string(lit.Text(p.contents)))
}

// matchParenLiteral speculatively consumes `( literal )`. The caller
// restores the cursor when it reports no match.
func (p *scriptParser) matchParenLiteral() (string, bool) {
	tok, ok := p.cur.next()
	if !ok || tok.Kind != TokenLParen {
		return "", false
	}
	lit, ok := p.cur.next()
	if !ok || lit.Kind != TokenLiteral {
		return "", false
	}
	tok, ok = p.cur.next()
	if !ok || tok.Kind != TokenRParen {
		return "", false
	}
	return string(lit.Text(p.contents)), true
}

func (p *scriptParser) setOutputFormat(format string) error {
	mt, ok := GetMachineTypeFromFormat(format)
	if !ok {
		p.sink.Report(Diagnostic{
			Path:    p.path,
			Message: fmt.Sprintf("unknown output format: %s", format),
		})
		return ErrBadScript
	}

	// A later OUTPUT_FORMAT overwrites an earlier one.
	p.script.MachineType = mt
	return nil
}

// parseGroup handles INPUT and GROUP, whose grammar is identical:
// `( item* )` where an item is a library name or an AS_NEEDED block.
// Entries land in the one flat list regardless of nesting.
func (p *scriptParser) parseGroup() error {
	if _, err := p.expect(TokenLParen); err != nil {
		return err
	}

	for {
		tok, ok := p.cur.peek()
		if !ok {
			break
		}

		if tok.Kind == TokenLiteral {
			p.cur.next()
			p.script.Entries = append(p.script.Entries,
				ScriptEntry{Name: tok.Text(p.contents), Needed: true})
			continue
		}

		if tok.Kind == TokenCommand && string(tok.Text(p.contents)) == "AS_NEEDED" {
			p.cur.next()
			if err := p.parseAsNeeded(); err != nil {
				return err
			}
			continue
		}

		break
	}

	_, err := p.expect(TokenRParen)
	return err
}

func (p *scriptParser) parseAsNeeded() error {
	if _, err := p.expect(TokenLParen); err != nil {
		return err
	}

	for {
		tok, ok := p.cur.peek()
		if !ok || tok.Kind != TokenLiteral {
			break
		}
		p.cur.next()
		p.script.Entries = append(p.script.Entries,
			ScriptEntry{Name: tok.Text(p.contents), Needed: false})
	}

	_, err := p.expect(TokenRParen)
	return err
}

// expect consumes one token of the wanted kind or fails the parse,
// leaving the cursor on the offending token for position lookup.
func (p *scriptParser) expect(kind TokenKind) (Token, error) {
	tok, ok := p.cur.peek()
	if !ok || tok.Kind != kind {
		return Token{}, p.unexpected(tok)
	}
	p.cur.next()
	return tok, nil
}

func (p *scriptParser) unexpected(tok Token) error {
	pos := Position{}
	if at := p.cur.save(); at < len(p.positions) {
		pos = p.positions[at]
	}

	p.sink.Report(Diagnostic{
		Path: p.path,
		Message: fmt.Sprintf("unexpected token %s '%s' at line %d, column %d",
			TokenKindName(tok.Kind), tok.Text(p.contents), pos.Line, pos.Col),
	})
	return ErrBadScript
}
