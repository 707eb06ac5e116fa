package tapelang

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"
)

type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Parse reads a program. Variable names are resolved to cells as they are met.
func Parse(name string, source io.Reader) ([]Stmt, *Names, error) {
	p := &parser{
		names: NewNames(),
	}
	p.s.Init(source)
	p.s.Filename = name
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = &ParseError{
				Pos: s.Position,
				Msg: msg,
			}
		}
	}
	p.next()

	var stmts []Stmt
	for p.tok != scanner.EOF && p.err == nil {
		stmt := p.stmt()
		if p.err != nil {
			break
		}
		stmts = append(stmts, stmt)
	}
	if p.err != nil {
		return nil, nil, p.err
	}
	return stmts, p.names, nil
}

type parser struct {
	s     scanner.Scanner
	tok   rune
	names *Names
	err   error
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) fail(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = &ParseError{
		Pos: p.s.Position,
		Msg: fmt.Sprintf(format, args...),
	}
}

func (p *parser) describe() string {
	if p.tok == scanner.EOF {
		return "end of file"
	}
	return strconv.Quote(p.s.TokenText())
}

func (p *parser) expect(tok rune) {
	if p.err != nil {
		return
	}
	if p.tok != tok {
		p.fail("expected %s, got %s", scanner.TokenString(tok), p.describe())
		return
	}
	p.next()
}

func (p *parser) ident(after string) Cell {
	if p.err != nil {
		return 0
	}
	if p.tok != scanner.Ident {
		p.fail("expected variable name after %s, got %s", after, p.describe())
		return 0
	}
	cell := p.names.Resolve(p.s.TokenText())
	p.next()
	return cell
}

func (p *parser) stmt() Stmt {
	if p.tok != scanner.Ident {
		p.fail("expected statement, got %s", p.describe())
		return nil
	}

	switch p.s.TokenText() {

	case "print":
		p.next()
		cell := p.ident("'print'")
		p.expect(';')
		return Print{
			Cell: cell,
		}

	case "input":
		p.next()
		cell := p.ident("'input'")
		p.expect(';')
		return Input{
			Cell: cell,
		}

	case "while":
		p.next()
		cond := p.ident("'while'")
		p.expect('!')
		p.expect('=')
		if p.err == nil && (p.tok != scanner.Int || p.s.TokenText() != "0") {
			p.fail("expected 0 after '!=', got %s", p.describe())
		}
		p.next()
		p.expect('{')
		var body []Stmt
		for p.err == nil && p.tok != '}' {
			if p.tok == scanner.EOF {
				p.fail("expected '}', got end of file")
				break
			}
			body = append(body, p.stmt())
		}
		p.expect('}')
		return While{
			Cond: cond,
			Body: body,
		}

	}

	dest := p.ident("statement start")
	switch p.tok {

	case '+':
		p.next()
		p.expect('=')
		modifier := p.ident("'+='")
		p.expect(';')
		return AddAssign{
			Dest:     dest,
			Modifier: modifier,
		}

	case '-':
		p.next()
		p.expect('=')
		modifier := p.ident("'-='")
		p.expect(';')
		return SubAssign{
			Dest:     dest,
			Modifier: modifier,
		}

	case '=':
		p.next()
		switch p.tok {
		case scanner.Int:
			text := p.s.TokenText()
			value, err := strconv.ParseUint(text, 10, 8)
			if err != nil {
				p.fail("expected number in 0..=255, got %s", strconv.Quote(text))
				return nil
			}
			p.next()
			p.expect(';')
			return SetConst{
				Dest:  dest,
				Value: byte(value),
			}
		case scanner.Ident:
			src := p.ident("'='")
			p.expect(';')
			return Copy{
				Dest: dest,
				Src:  src,
			}
		}
		p.fail("expected number or variable after '=', got %s", p.describe())
		return nil

	}

	p.fail("expected '+=', '-=' or '=' after variable, got %s", p.describe())
	return nil
}
