package cst

import (
	"io"
	"strings"
)

type Kind int

const (
	// interior kinds
	DocumentKind Kind = iota
	StatementKind
	ListKind
	TupleKind
	DictKind
	SetKind
	// leaf kinds
	NameKind
	NumberKind
	StringKind
	OpKind
	CommaKind
	ColonKind
	EqualKind
	OpenKind
	CloseKind
	NewlineKind
	EndKind
)

func (k Kind) String() string {
	return map[Kind]string{
		DocumentKind:  "Document",
		StatementKind: "Statement",
		ListKind:      "List",
		TupleKind:     "Tuple",
		DictKind:      "Dict",
		SetKind:       "Set",
		NameKind:      "Name",
		NumberKind:    "Number",
		StringKind:    "String",
		OpKind:        "Op",
		CommaKind:     "Comma",
		ColonKind:     "Colon",
		EqualKind:     "Equal",
		OpenKind:      "Open",
		CloseKind:     "Close",
		NewlineKind:   "Newline",
		EndKind:       "End",
	}[k]
}

// Container reports whether k is a container literal kind.
func (k Kind) Container() bool {
	switch k {
	case ListKind, TupleKind, DictKind, SetKind:
		return true
	}
	return false
}

// Separator reports whether k is a punctuation kind that separates or
// delimits container entries rather than carrying a value.
func (k Kind) Separator() bool {
	switch k {
	case CommaKind, ColonKind, OpenKind, CloseKind:
		return true
	}
	return false
}

// Node is one element of the lossless parse tree. Interior nodes (documents,
// statements, container literals) have Children; leaves have Text, the exact
// token bytes, and Prefix, the verbatim whitespace and comments preceding
// them. Rendering a tree concatenates Prefix+Text over its leaves in order,
// which reproduces the source exactly as long as the tree is unmodified.
type Node struct {
	Kind     Kind
	Parent   *Node
	Children []*Node

	Prefix string
	Text   string
}

// Leaf reports whether n is a leaf node.
func (n *Node) Leaf() bool {
	return n.Kind >= NameKind
}

func (n *Node) Append(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Insert places child at index i among n's children.
func (n *Node) Insert(i int, child *Node) {
	child.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
}

// FirstLeaf returns the first leaf in n's subtree, or nil for an empty
// interior node.
func (n *Node) FirstLeaf() *Node {
	if n.Leaf() {
		return n
	}
	for _, c := range n.Children {
		if l := c.FirstLeaf(); l != nil {
			return l
		}
	}
	return nil
}

// LastLeaf returns the last leaf in n's subtree, or nil for an empty
// interior node.
func (n *Node) LastLeaf() *Node {
	if n.Leaf() {
		return n
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if l := n.Children[i].LastLeaf(); l != nil {
			return l
		}
	}
	return nil
}

// LeafPrefix returns the prefix of the first leaf of n's subtree.
func (n *Node) LeafPrefix() string {
	if l := n.FirstLeaf(); l != nil {
		return l.Prefix
	}
	return ""
}

// SetLeafPrefix rewrites the prefix of the first leaf of n's subtree.
func (n *Node) SetLeafPrefix(prefix string) {
	if l := n.FirstLeaf(); l != nil {
		l.Prefix = prefix
	}
}

// WriteTo renders n's subtree, prefix plus text of every leaf in document
// order.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var total int64
	if n.Leaf() {
		for _, s := range []string{n.Prefix, n.Text} {
			m, err := io.WriteString(w, s)
			total += int64(m)
			if err != nil {
				return total, err
			}
		}
		return total, nil
	}
	for _, c := range n.Children {
		m, err := c.WriteTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (n *Node) String() string {
	var sb strings.Builder
	n.WriteTo(&sb)
	return sb.String()
}

// Visit walks n's subtree depth-first, calling f before and after each
// node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
