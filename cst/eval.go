package cst

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotLiteral = errors.New("not a literal")

// Eval evaluates a literal subtree back to a Go value: None/True/False,
// int64, float64, string, []any for lists and sets, Tuple for tuples and Map
// for dict literals. Non-literal nodes (bare names, operators, statements)
// fail.
func Eval(n *Node) (any, error) {
	switch n.Kind {
	case NameKind:
		switch n.Text {
		case "None":
			return nil, nil
		case "True":
			return true, nil
		case "False":
			return false, nil
		}
		return nil, fmt.Errorf("%w: name %q", ErrNotLiteral, n.Text)
	case NumberKind:
		return evalNumber(n.Text)
	case StringKind:
		return Unquote(n.Text)
	case ListKind, SetKind:
		return evalElems(n)
	case TupleKind:
		elems, err := evalElems(n)
		if err != nil {
			return nil, err
		}
		return Tuple(elems), nil
	case DictKind:
		return evalDict(n)
	}
	return nil, fmt.Errorf("%w: %s node", ErrNotLiteral, n.Kind)
}

func evalElems(n *Node) ([]any, error) {
	elems := []any{}
	for _, c := range n.Children {
		if c.Leaf() && c.Kind.Separator() {
			continue
		}
		v, err := Eval(c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return elems, nil
}

func evalDict(n *Node) (Map, error) {
	res := Map{}
	kids := n.Children
	i := 0
	for i < len(kids) {
		k := kids[i]
		if k.Kind == OpenKind || k.Kind == CommaKind {
			i++
			continue
		}
		if k.Kind == CloseKind {
			break
		}
		keyVal, err := Eval(k)
		if err != nil {
			return nil, err
		}
		key, ok := keyVal.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string dict key %s", ErrNotLiteral, k.String())
		}
		i++
		if i >= len(kids) || kids[i].Kind != ColonKind {
			return nil, fmt.Errorf("%w: dict entry %q has no value", ErrNotLiteral, key)
		}
		i++
		if i >= len(kids) || kids[i].Kind == CloseKind {
			return nil, fmt.Errorf("%w: dict entry %q has no value", ErrNotLiteral, key)
		}
		val, err := Eval(kids[i])
		if err != nil {
			return nil, err
		}
		i++
		res = append(res, KeyVal{Key: key, Val: val})
	}
	return res, nil
}

func evalNumber(text string) (any, error) {
	s := strings.ReplaceAll(text, "_", "")
	if strings.HasSuffix(s, "j") || strings.HasSuffix(s, "J") {
		return nil, fmt.Errorf("%w: imaginary literal %q", ErrNotLiteral, text)
	}
	body := strings.TrimLeft(s, "+-")
	if len(body) > 1 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			i, err := strconv.ParseInt(s[:len(s)-len(body)]+body[2:], radix(body[1]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: number %q", ErrNotLiteral, text)
			}
			return i, nil
		}
	}
	if strings.ContainsAny(body, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrNotLiteral, text)
		}
		return f, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrNotLiteral, text)
	}
	return i, nil
}

func radix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	}
	return 2
}

// Unquote evaluates a string literal's text, handling prefix letters,
// triple quotes and backslash escapes.
func Unquote(text string) (string, error) {
	raw := false
	i := 0
	for i < len(text) && text[i] != '\'' && text[i] != '"' {
		if text[i] == 'r' || text[i] == 'R' {
			raw = true
		}
		i++
	}
	if i >= len(text) {
		return "", fmt.Errorf("%w: string %q", ErrNotLiteral, text)
	}
	q := text[i]
	body := text[i:]
	switch {
	case len(body) >= 6 && body[1] == q && body[2] == q:
		body = body[3 : len(body)-3]
	case len(body) >= 2:
		body = body[1 : len(body)-1]
	default:
		return "", fmt.Errorf("%w: string %q", ErrNotLiteral, text)
	}
	if raw {
		return body, nil
	}
	return unescape(body)
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch e := s[i]; e {
		case '\n':
			// line continuation inside the literal
		case '\\', '\'', '"':
			sb.WriteByte(e)
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(s[i:j], 8, 32)
			sb.WriteRune(rune(v))
			i = j - 1
		case 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("%w: bad \\x escape", ErrNotLiteral)
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("%w: bad \\x escape", ErrNotLiteral)
			}
			sb.WriteRune(rune(v))
			i += 2
		case 'u', 'U':
			width := 4
			if e == 'U' {
				width = 8
			}
			if i+width >= len(s) {
				return "", fmt.Errorf("%w: bad \\%c escape", ErrNotLiteral, e)
			}
			v, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
			if err != nil {
				return "", fmt.Errorf("%w: bad \\%c escape", ErrNotLiteral, e)
			}
			sb.WriteRune(rune(v))
			i += width
		default:
			// unknown escapes keep the backslash, like the original dialect
			sb.WriteByte('\\')
			sb.WriteByte(e)
		}
	}
	return sb.String(), nil
}
