package parse

import (
	"errors"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/pyset-format/go-pyset/cst"
)

var roundTripDocs = []string{
	"",
	"\n",
	"# only a comment\n",
	"A = 1\n",
	"A = 1",
	"A=1\nB =  2  # packed and padded\n",
	`DEBUG = True
TEMPLATE_DEBUG = DEBUG

ADMINS = (
    # ('Your Name', 'your_email@example.com'),
)

DATABASES = {
    'default': {
        'ENGINE': 'django.db.backends.sqlite3',
        'NAME': 'db.sqlite3',
    }
}
`,
	"T = (\n        'Neque',\n        'porro',\n        )\n",
	"L = [\n  1,\n  2,  # two\n]\n",
	"S = {1, 2, 3}\n",
	"NEST = {'a': ['b', ('c',)], 'd': {}}\n",
	"LONG = 1 + \\\n    2\n",
	"DOC = '''\nmultiline\n'''\n",
	"import os\nfrom os.path import join\n\nROOT = join('a', 'b')\n",
	"# trailing comment, no newline after",
}

func diff(a, b string) string {
	s, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "source",
		ToFile:   "rendered",
		Context:  3,
	})
	return s
}

func TestParseRoundTrip(t *testing.T) {
	for _, doc := range roundTripDocs {
		n, err := Parse([]byte(doc))
		if err != nil {
			t.Errorf("Parse(%q): %v", doc, err)
			continue
		}
		if got := n.String(); got != doc {
			t.Errorf("render of %q differs:\n%s", doc, diff(doc, got))
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"A = (1, 2\n",
		"A = [1, 2)\n",
		"A = }\n",
		"A = {'k': 'unterminated\n",
		"A = 'no close",
	}
	for _, doc := range bad {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): got %v, want ErrParse", doc, err)
		}
	}
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		doc  string
		kind cst.Kind
	}{
		{doc: "A = [1]\n", kind: cst.ListKind},
		{doc: "A = (1,)\n", kind: cst.TupleKind},
		{doc: "A = {'k': 1}\n", kind: cst.DictKind},
		{doc: "A = {}\n", kind: cst.DictKind},
		{doc: "A = {1, 2}\n", kind: cst.SetKind},
		{doc: "A = {1: 2, 3}\n", kind: cst.DictKind},
	}
	for _, tc := range tests {
		n, err := Parse([]byte(tc.doc))
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.doc, err)
		}
		stmt := n.Children[0]
		if stmt.Kind != cst.StatementKind {
			t.Fatalf("Parse(%q): first child is %s", tc.doc, stmt.Kind)
		}
		val := stmt.Children[2]
		if val.Kind != tc.kind {
			t.Errorf("Parse(%q): value kind %s, want %s", tc.doc, val.Kind, tc.kind)
		}
	}
}

func TestParseStatementLayout(t *testing.T) {
	n, err := Parse([]byte("# c\nA = 1\nB = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	// two statements plus the end leaf
	if len(n.Children) != 3 {
		t.Fatalf("document children: %d", len(n.Children))
	}
	end := n.Children[2]
	if end.Kind != cst.EndKind {
		t.Fatalf("last child is %s", end.Kind)
	}
	stmt := n.Children[0]
	kinds := []cst.Kind{cst.NameKind, cst.EqualKind, cst.NumberKind, cst.NewlineKind}
	if len(stmt.Children) != len(kinds) {
		t.Fatalf("statement children: %d", len(stmt.Children))
	}
	for i, k := range kinds {
		if stmt.Children[i].Kind != k {
			t.Errorf("statement child %d: %s, want %s", i, stmt.Children[i].Kind, k)
		}
	}
	if stmt.Children[0].Prefix != "# c\n" {
		t.Errorf("leading comment not on first leaf: %q", stmt.Children[0].Prefix)
	}
}

func TestParseEval(t *testing.T) {
	n, err := Parse([]byte("A = {'xs': [1, 2.5, 'three'], 'flag': False}\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := cst.Eval(n.Children[0].Children[2])
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.(cst.Map)
	if !ok {
		t.Fatalf("evaluated to %T", v)
	}
	if len(m) != 2 || m[0].Key != "xs" || m[1].Key != "flag" {
		t.Errorf("unexpected mapping: %v", m)
	}
	xs, ok := m[0].Val.([]any)
	if !ok || len(xs) != 3 || xs[0] != int64(1) || xs[1] != 2.5 || xs[2] != "three" {
		t.Errorf("unexpected list: %#v", m[0].Val)
	}
}
