package pyset

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pyset-format/go-pyset/cst"
	"github.com/pyset-format/go-pyset/debug"
)

// defaultElementPrefix indents elements inserted into a previously empty
// container, which offers no sibling style to copy.
const defaultElementPrefix = "\n    "

// AppendValue appends value to the container literal of an assignment
// statement, reproducing the container's local whitespace style. Appending
// never disturbs existing elements; at most a corrective comma is added
// after the last one. For dict settings, value must itself be a mapping and
// its entries are appended pairwise.
func AppendValue(stmt *cst.Node, value any) error {
	name, val, ok := assignment(stmt)
	if !ok {
		return fmt.Errorf("%w: not an assignment statement: %s", ErrNotAContainer, stmt.String())
	}
	switch val.Kind {
	case cst.ListKind, cst.TupleKind:
		return appendToSequence(name, val, value)
	case cst.DictKind:
		return appendToMapping(name, val, value)
	case cst.SetKind:
		return fmt.Errorf("%q: %w", name, ErrSetLiteral)
	default:
		return fmt.Errorf("%q: %w (value is a %s)", name, ErrNotAContainer, val.Kind)
	}
}

func appendToSequence(name string, ct *cst.Node, value any) error {
	prefix := elementPrefix(ct)
	elem, err := cst.FromValue(value, prefix)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	if debug.Append() {
		debug.Logf("append to %s %q with prefix %q\n", ct.Kind, name, prefix)
	}
	ensureComma(ct)
	insertBeforeClose(ct, elem, cst.NewComma())
	return nil
}

func appendToMapping(name string, ct *cst.Node, value any) error {
	pairs, ok := mappingPairs(value)
	if !ok {
		return fmt.Errorf("%q: %w (value is %T)", name, ErrTypeMismatch, value)
	}
	prefix := elementPrefix(ct)
	if debug.Append() {
		debug.Logf("append to dict %q with prefix %q\n", name, prefix)
	}
	ensureComma(ct)
	for _, kv := range pairs {
		val, err := cst.FromValue(kv.Val, " ")
		if err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}
		insertBeforeClose(ct,
			cst.NewLeaf(cst.StringKind, cst.Quote(kv.Key), prefix),
			cst.NewColon(),
			val,
			cst.NewComma())
	}
	return nil
}

func mappingPairs(value any) (cst.Map, bool) {
	switch x := value.(type) {
	case cst.Map:
		return x, true
	case []cst.KeyVal:
		return cst.Map(x), true
	case map[string]any:
		res := make(cst.Map, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res = append(res, cst.KeyVal{Key: k, Val: x[k]})
		}
		return res, true
	}
	return nil, false
}

// elementPrefix discovers the whitespace convention of a container: the
// prefix of the first leaf of its last entry, found by walking backward
// from the closing bracket to the previous comma. An empty container has
// no style to copy and gets the default indentation.
func elementPrefix(ct *cst.Node) string {
	kids := ct.Children
	j := len(kids) - 2 // last child before the closing bracket
	if j < 1 {
		return defaultElementPrefix
	}
	if kids[j].Kind == cst.CommaKind {
		j--
	}
	prefix := defaultElementPrefix
	for ; j >= 1; j-- {
		if kids[j].Kind == cst.CommaKind {
			break
		}
		prefix = kids[j].LeafPrefix()
	}
	return prefix
}

// ensureComma appends a separator after the container's last entry if it
// does not already have one, so new entries can follow without producing a
// parse error.
func ensureComma(ct *cst.Node) {
	kids := ct.Children
	j := len(kids) - 2
	if j < 1 || kids[j].Kind == cst.CommaKind {
		return
	}
	ct.Insert(len(kids)-1, cst.NewComma())
}

func insertBeforeClose(ct *cst.Node, nodes ...*cst.Node) {
	for _, n := range nodes {
		ct.Insert(len(ct.Children)-1, n)
	}
}
