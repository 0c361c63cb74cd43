package token

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Tokenize converts a settings document into its token stream. Whitespace,
// comments, blank lines and in-bracket line breaks are never tokens; they are
// carried as the Prefix of the following token. The stream always ends with a
// TEnd token whose Prefix holds any trailing trivia, so concatenating
// Prefix+Bytes over the result reproduces src byte for byte.
func Tokenize(src []byte) ([]Token, error) {
	t := &tokenizer{d: src, posDoc: &PosDoc{d: src}}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.toks, nil
}

type tokenizer struct {
	d      []byte
	posDoc *PosDoc
	toks   []Token

	i      int  // scan position
	pfx    int  // start of pending prefix
	depth  int  // bracket nesting
	onLine bool // current line emitted a token
}

// multi-character operators, longest first
var ops3 = []string{"**=", "//=", "<<=", ">>=", "..."}
var ops2 = []string{
	"==", "!=", "<=", ">=", "+=", "-=", "*=", "/=", "%=", "@=",
	"&=", "|=", "^=", "**", "//", "<<", ">>", "->", ":=",
}

const opChars = "+-*/%@&|^~<>.;!"

func (t *tokenizer) run() error {
	n := len(t.d)
	for t.i < n {
		c := t.d[t.i]
		switch {
		case c == '\n':
			t.posDoc.nl(t.i)
			if t.depth == 0 && t.onLine {
				t.emit(TNewline, t.i+1)
				t.onLine = false
			} else {
				t.i++
			}
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			t.i++
		case c == '#':
			for t.i < n && t.d[t.i] != '\n' {
				t.i++
			}
		case c == '\\':
			if t.i+1 < n && t.d[t.i+1] == '\n' {
				t.posDoc.nl(t.i + 1)
				t.i += 2
				continue
			}
			return UnexpectedErr(`\`, t.posDoc.Pos(t.i))
		case c == '\'' || c == '"':
			if err := t.scanString(t.i); err != nil {
				return err
			}
		case isDigit(c) || (c == '.' && t.i+1 < n && isDigit(t.d[t.i+1])):
			if err := t.scanNumber(t.i); err != nil {
				return err
			}
		case (c == '+' || c == '-') && t.signStartsNumber():
			if err := t.scanNumber(t.i); err != nil {
				return err
			}
		case c == ',':
			t.emit(TComma, t.i+1)
		case c == ':':
			if t.i+1 < n && t.d[t.i+1] == '=' {
				t.emit(TOp, t.i+2)
			} else {
				t.emit(TColon, t.i+1)
			}
		case c == '=':
			if t.i+1 < n && t.d[t.i+1] == '=' {
				t.emit(TOp, t.i+2)
			} else {
				t.emit(TEqual, t.i+1)
			}
		case c == '(':
			t.depth++
			t.emit(TLParen, t.i+1)
		case c == ')':
			t.closeBracket()
			t.emit(TRParen, t.i+1)
		case c == '[':
			t.depth++
			t.emit(TLSquare, t.i+1)
		case c == ']':
			t.closeBracket()
			t.emit(TRSquare, t.i+1)
		case c == '{':
			t.depth++
			t.emit(TLCurl, t.i+1)
		case c == '}':
			t.closeBracket()
			t.emit(TRCurl, t.i+1)
		default:
			r, sz := utf8.DecodeRune(t.d[t.i:])
			if r == utf8.RuneError && sz <= 1 {
				return UnexpectedErr("bad utf8", t.posDoc.Pos(t.i))
			}
			if isNameStart(r) {
				t.scanName(t.i)
				continue
			}
			if end, ok := t.scanOp(); ok {
				t.emit(TOp, end)
				continue
			}
			return UnexpectedErr(strconv.QuoteRune(r), t.posDoc.Pos(t.i))
		}
	}
	// end marker carries trailing trivia
	t.toks = append(t.toks, Token{
		Type:   TEnd,
		Pos:    t.posDoc.Pos(n),
		Prefix: t.d[t.pfx:n],
	})
	return nil
}

func (t *tokenizer) emit(tt Type, end int) {
	t.toks = append(t.toks, Token{
		Type:   tt,
		Pos:    t.posDoc.Pos(t.i),
		Prefix: t.d[t.pfx:t.i],
		Bytes:  t.d[t.i:end],
	})
	t.i = end
	t.pfx = end
	t.onLine = true
}

func (t *tokenizer) closeBracket() {
	if t.depth > 0 {
		t.depth--
	}
}

// signStartsNumber reports whether a leading + or - at the current position
// begins a signed numeric literal rather than a binary operator: the next
// byte must start a number and the previous token must not be a value.
func (t *tokenizer) signStartsNumber() bool {
	j := t.i + 1
	if j >= len(t.d) {
		return false
	}
	if !isDigit(t.d[j]) && !(t.d[j] == '.' && j+1 < len(t.d) && isDigit(t.d[j+1])) {
		return false
	}
	if len(t.toks) == 0 {
		return true
	}
	switch t.toks[len(t.toks)-1].Type {
	case TName, TNumber, TString, TRParen, TRSquare, TRCurl:
		return false
	}
	return true
}

func (t *tokenizer) scanNumber(start int) error {
	sz, err := number(t.d[start:])
	if err != nil {
		return NewTokenizeErr(err, t.posDoc.Pos(start))
	}
	t.emit(TNumber, start+sz)
	return nil
}

func (t *tokenizer) scanString(start int) error {
	sz, err := quoted(t.d[start:])
	if err != nil {
		return NewTokenizeErr(err, t.posDoc.Pos(start))
	}
	end := start + sz
	// newlines inside triple-quoted strings still count for positions
	for j := t.i; j < end; j++ {
		if t.d[j] == '\n' {
			t.posDoc.nl(j)
		}
	}
	t.emit(TString, end)
	return nil
}

func (t *tokenizer) scanName(start int) {
	end := start
	for end < len(t.d) {
		r, sz := utf8.DecodeRune(t.d[end:])
		if !isNameStart(r) && !unicode.IsDigit(r) {
			break
		}
		end += sz
	}
	// r'...', b"...", etc: prefix letters belong to the string literal
	if end < len(t.d) && (t.d[end] == '\'' || t.d[end] == '"') && stringPrefix(t.d[start:end]) {
		sz, err := quoted(t.d[end:])
		if err == nil {
			send := end + sz
			for j := end; j < send; j++ {
				if t.d[j] == '\n' {
					t.posDoc.nl(j)
				}
			}
			t.emit(TString, send)
			return
		}
	}
	t.emit(TName, end)
}

func (t *tokenizer) scanOp() (int, bool) {
	rest := t.d[t.i:]
	for _, op := range ops3 {
		if len(rest) >= 3 && string(rest[:3]) == op {
			return t.i + 3, true
		}
	}
	for _, op := range ops2 {
		if len(rest) >= 2 && string(rest[:2]) == op {
			return t.i + 2, true
		}
	}
	for j := 0; j < len(opChars); j++ {
		if rest[0] == opChars[j] {
			return t.i + 1, true
		}
	}
	return 0, false
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
