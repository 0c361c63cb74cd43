package token

import (
	"errors"
	"fmt"
)

type Type int

const (
	TName Type = iota
	TNumber
	TString
	TComma
	TColon
	TEqual
	TLParen
	TRParen
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TOp
	TNewline
	TEnd
)

func (t Type) String() string {
	return map[Type]string{
		TName:    "TName",
		TNumber:  "TNumber",
		TString:  "TString",
		TComma:   "TComma",
		TColon:   "TColon",
		TEqual:   "TEqual",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TOp:      "TOp",
		TNewline: "TNewline",
		TEnd:     "TEnd",
	}[t]
}

// Token is one lexical token of a settings document. Prefix holds the
// verbatim whitespace and comment bytes between the previous token and this
// one, so that the concatenation of Prefix+Bytes over a token stream
// reproduces the source exactly.
type Token struct {
	Type   Type
	Pos    *Pos
	Prefix []byte
	Bytes  []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrNumber       = errors.New("malformed number")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
