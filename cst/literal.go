package cst

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Tuple renders as a tuple literal. Plain []any slices render as lists.
type Tuple []any

// KeyVal is one entry of an ordered mapping value.
type KeyVal struct {
	Key string
	Val any
}

// Map is an ordered mapping value; entries render in slice order.
type Map []KeyVal

var ErrValue = errors.New("unsupported value")

// LiteralText renders v in canonical literal form. The result, parsed and
// evaluated as a literal, reconstructs a value equal to v.
func LiteralText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "None", nil
	case bool:
		if x {
			return "True", nil
		}
		return "False", nil
	case string:
		return Quote(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return floatText(float64(x))
	case float64:
		return floatText(x)
	case Tuple:
		return seqText("(", ")", x, len(x) == 1)
	case []any:
		return seqText("[", "]", x, false)
	case Map:
		return mapText(x)
	case map[string]any:
		return mapText(sortedMap(x))
	default:
		return "", fmt.Errorf("%w: %T", ErrValue, v)
	}
}

func floatText(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w: %v has no literal form", ErrValue, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

func seqText(open, close string, elems []any, trailingComma bool) (string, error) {
	var sb strings.Builder
	sb.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		t, err := LiteralText(e)
		if err != nil {
			return "", err
		}
		sb.WriteString(t)
	}
	if trailingComma {
		sb.WriteString(",")
	}
	sb.WriteString(close)
	return sb.String(), nil
}

func mapText(m Map) (string, error) {
	var sb strings.Builder
	sb.WriteString("{")
	for i, kv := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Quote(kv.Key))
		sb.WriteString(": ")
		t, err := LiteralText(kv.Val)
		if err != nil {
			return "", err
		}
		sb.WriteString(t)
	}
	sb.WriteString("}")
	return sb.String(), nil
}

func sortedMap(m map[string]any) Map {
	res := make(Map, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res = append(res, KeyVal{Key: k, Val: m[k]})
	}
	return res
}

// Quote renders s as a string literal, repr style: single quotes unless the
// string contains a single quote and no double quote.
func Quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var sb strings.Builder
	sb.WriteByte(q)
	for _, r := range s {
		switch r {
		case rune(q):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\x%02x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte(q)
	return sb.String()
}

// FromValue builds the subtree rendering v, with prefix placed on the
// subtree's first leaf. Scalars become a single leaf; sequences and mappings
// become full container subtrees.
func FromValue(v any, prefix string) (*Node, error) {
	switch x := v.(type) {
	case Tuple:
		return seqNode(TupleKind, "(", ")", x, prefix, len(x) == 1)
	case []any:
		return seqNode(ListKind, "[", "]", x, prefix, false)
	case Map:
		return mapNode(x, prefix)
	case map[string]any:
		return mapNode(sortedMap(x), prefix)
	default:
		text, err := LiteralText(v)
		if err != nil {
			return nil, err
		}
		return NewLeaf(scalarKind(v), text, prefix), nil
	}
}

func scalarKind(v any) Kind {
	switch v.(type) {
	case string:
		return StringKind
	case nil, bool:
		return NameKind
	}
	return NumberKind
}

func seqNode(kind Kind, open, close string, elems []any, prefix string, trailingComma bool) (*Node, error) {
	n := &Node{Kind: kind}
	n.Append(NewLeaf(OpenKind, open, prefix))
	for i, e := range elems {
		pfx := ""
		if i > 0 {
			n.Append(NewComma())
			pfx = " "
		}
		c, err := FromValue(e, pfx)
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	if trailingComma {
		n.Append(NewComma())
	}
	n.Append(NewLeaf(CloseKind, close, ""))
	return n, nil
}

func mapNode(m Map, prefix string) (*Node, error) {
	n := &Node{Kind: DictKind}
	n.Append(NewLeaf(OpenKind, "{", prefix))
	for i, kv := range m {
		pfx := ""
		if i > 0 {
			n.Append(NewComma())
			pfx = " "
		}
		n.Append(NewLeaf(StringKind, Quote(kv.Key), pfx))
		n.Append(NewColon())
		c, err := FromValue(kv.Val, " ")
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	n.Append(NewLeaf(CloseKind, "}", ""))
	return n, nil
}
