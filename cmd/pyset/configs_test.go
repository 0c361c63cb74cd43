package main

import (
	"testing"

	gyaml "github.com/goccy/go-yaml"

	"github.com/pyset-format/go-pyset/cst"
)

func TestEvalLiteral(t *testing.T) {
	tests := []struct {
		lit  string
		want any
	}{
		{lit: "42", want: int64(42)},
		{lit: "'text'", want: "text"},
		{lit: "True", want: true},
		{lit: "None", want: nil},
	}
	for _, tc := range tests {
		got, err := evalLiteral(tc.lit)
		if err != nil {
			t.Errorf("evalLiteral(%q): %v", tc.lit, err)
			continue
		}
		if got != tc.want {
			t.Errorf("evalLiteral(%q): got %#v, want %#v", tc.lit, got, tc.want)
		}
	}
	list, err := evalLiteral("['a', 'b']")
	if err != nil {
		t.Fatal(err)
	}
	xs, ok := list.([]any)
	if !ok || len(xs) != 2 || xs[0] != "a" || xs[1] != "b" {
		t.Errorf("got %#v", list)
	}
	for _, bad := range []string{"", "1 2", "a = 1", "[unclosed"} {
		if _, err := evalLiteral(bad); err == nil {
			t.Errorf("evalLiteral(%q): expected error", bad)
		}
	}
}

func TestYamlValue(t *testing.T) {
	v := yamlValue(cst.Map{
		{Key: "b", Val: cst.Tuple{int64(1), int64(2)}},
		{Key: "a", Val: []any{"x"}},
	})
	ms, ok := v.(gyaml.MapSlice)
	if !ok {
		t.Fatalf("got %T", v)
	}
	// document order kept, not sorted
	if ms[0].Key != "b" || ms[1].Key != "a" {
		t.Errorf("order lost: %v", ms)
	}
	if seq, ok := ms[0].Value.([]any); !ok || len(seq) != 2 {
		t.Errorf("tuple not converted: %#v", ms[0].Value)
	}
}
