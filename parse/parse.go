// Package parse builds lossless parse trees for settings documents.
package parse

import (
	"errors"
	"fmt"

	"github.com/pyset-format/go-pyset/cst"
	"github.com/pyset-format/go-pyset/debug"
	"github.com/pyset-format/go-pyset/token"
)

var ErrParse = errors.New("parse error")

// Parse converts a settings document into its lossless tree. Any
// token-valid text parses, not just assignment statements; rendering the
// result reproduces d byte for byte.
func Parse(d []byte) (*cst.Node, error) {
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	p := &parser{toks: toks}
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d tokens into %d statements\n", len(toks), len(doc.Children)-1)
	}
	return doc, nil
}

type parser struct {
	toks []token.Token
	i    int
}

func (p *parser) document() (*cst.Node, error) {
	doc := &cst.Node{Kind: cst.DocumentKind}
	for {
		t := &p.toks[p.i]
		if t.Type == token.TEnd {
			doc.Append(leaf(cst.EndKind, t))
			return doc, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		doc.Append(stmt)
	}
}

func (p *parser) statement() (*cst.Node, error) {
	stmt := &cst.Node{Kind: cst.StatementKind}
	for {
		t := &p.toks[p.i]
		switch t.Type {
		case token.TEnd:
			// last statement may lack a terminator
			return stmt, nil
		case token.TNewline:
			stmt.Append(leaf(cst.NewlineKind, t))
			p.i++
			return stmt, nil
		case token.TLParen, token.TLSquare, token.TLCurl:
			c, err := p.container()
			if err != nil {
				return nil, err
			}
			stmt.Append(c)
		case token.TRParen, token.TRSquare, token.TRCurl:
			return nil, fmt.Errorf("%w: unexpected %q %s", ErrParse, string(t.Bytes), t.Pos)
		default:
			stmt.Append(leaf(leafKind(t.Type), t))
			p.i++
		}
	}
}

func (p *parser) container() (*cst.Node, error) {
	open := &p.toks[p.i]
	var kind cst.Kind
	var closeType token.Type
	switch open.Type {
	case token.TLParen:
		kind, closeType = cst.TupleKind, token.TRParen
	case token.TLSquare:
		kind, closeType = cst.ListKind, token.TRSquare
	case token.TLCurl:
		kind, closeType = cst.DictKind, token.TRCurl
	}
	n := &cst.Node{Kind: kind}
	n.Append(leaf(cst.OpenKind, open))
	p.i++
	sawColon := false
	values := 0
	for {
		t := &p.toks[p.i]
		switch t.Type {
		case token.TEnd:
			return nil, fmt.Errorf("%w: unterminated %q %s", ErrParse, string(open.Bytes), open.Pos)
		case token.TLParen, token.TLSquare, token.TLCurl:
			c, err := p.container()
			if err != nil {
				return nil, err
			}
			n.Append(c)
			values++
		case token.TRParen, token.TRSquare, token.TRCurl:
			if t.Type != closeType {
				return nil, fmt.Errorf("%w: mismatched %q %s", ErrParse, string(t.Bytes), t.Pos)
			}
			n.Append(leaf(cst.CloseKind, t))
			p.i++
			// braces holding values without a single colon are a set
			// display; empty braces stay a dict
			if kind == cst.DictKind && values > 0 && !sawColon {
				n.Kind = cst.SetKind
			}
			return n, nil
		case token.TColon:
			sawColon = true
			n.Append(leaf(cst.ColonKind, t))
			p.i++
		default:
			n.Append(leaf(leafKind(t.Type), t))
			p.i++
			if t.Type != token.TComma {
				values++
			}
		}
	}
}

func leafKind(t token.Type) cst.Kind {
	switch t {
	case token.TName:
		return cst.NameKind
	case token.TNumber:
		return cst.NumberKind
	case token.TString:
		return cst.StringKind
	case token.TEqual:
		return cst.EqualKind
	case token.TComma:
		return cst.CommaKind
	case token.TColon:
		return cst.ColonKind
	case token.TNewline:
		return cst.NewlineKind
	}
	return cst.OpKind
}

func leaf(kind cst.Kind, t *token.Token) *cst.Node {
	return cst.NewLeaf(kind, string(t.Bytes), string(t.Prefix))
}
