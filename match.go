package pyset

import (
	"strings"

	"github.com/pyset-format/go-pyset/cst"
	"github.com/pyset-format/go-pyset/debug"
)

// Assignment is one located top-level assignment statement.
type Assignment struct {
	Name  string
	Stmt  *cst.Node
	Value *cst.Node
}

// Assignments scans a document's top-level statements and returns every
// assignment candidate in document order. A candidate has exactly the shape
// NAME = value, with the statement terminator ignored; anything else is
// skipped.
func Assignments(doc *cst.Node) []Assignment {
	var res []Assignment
	for _, stmt := range doc.Children {
		if stmt.Kind != cst.StatementKind {
			continue
		}
		name, val, ok := assignment(stmt)
		if !ok {
			continue
		}
		if debug.Match() {
			debug.Logf("assignment %q: %s\n", name, stmt.String())
		}
		res = append(res, Assignment{Name: name, Stmt: stmt, Value: val})
	}
	return res
}

// FindAssignments returns the assignment statement node for each requested
// name that is assigned at the top level of doc. When a name is assigned
// more than once, the last occurrence wins.
func FindAssignments(doc *cst.Node, names []string) map[string]*cst.Node {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}
	res := map[string]*cst.Node{}
	for _, a := range Assignments(doc) {
		if want[a.Name] {
			res[a.Name] = a.Stmt
		}
	}
	return res
}

// assignment matches the statement shape NAME '=' value, returning the
// name and the value node. Indented statements are bodies of compound
// statements, not top-level assignments.
func assignment(stmt *cst.Node) (string, *cst.Node, bool) {
	kids := stmt.Children
	if n := len(kids); n > 0 && kids[n-1].Kind == cst.NewlineKind {
		kids = kids[:n-1]
	}
	if len(kids) != 3 {
		return "", nil, false
	}
	if kids[0].Kind != cst.NameKind || kids[1].Kind != cst.EqualKind {
		return "", nil, false
	}
	if indented(kids[0].Prefix) {
		return "", nil, false
	}
	return kids[0].Text, kids[2], true
}

// indented reports whether a statement prefix leaves horizontal whitespace
// between the start of the line and the first token.
func indented(prefix string) bool {
	line := prefix
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		line = prefix[i+1:]
	}
	return line != ""
}
