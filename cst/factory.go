package cst

// node factories

func NewLeaf(kind Kind, text, prefix string) *Node {
	return &Node{Kind: kind, Text: text, Prefix: prefix}
}

func NewComma() *Node {
	return NewLeaf(CommaKind, ",", "")
}

func NewColon() *Node {
	return NewLeaf(ColonKind, ":", "")
}

func NewNewline() *Node {
	return NewLeaf(NewlineKind, "\n", "")
}

func NewName(name, prefix string) *Node {
	return NewLeaf(NameKind, name, prefix)
}

// NewAssignment builds a complete, self-sufficient assignment statement:
//
//	NAME = <literal>\n
func NewAssignment(name string, value any) (*Node, error) {
	val, err := FromValue(value, " ")
	if err != nil {
		return nil, err
	}
	stmt := &Node{Kind: StatementKind}
	stmt.Append(NewName(name, ""))
	stmt.Append(NewLeaf(EqualKind, "=", " "))
	stmt.Append(val)
	stmt.Append(NewNewline())
	return stmt, nil
}
