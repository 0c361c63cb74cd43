package pyset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pyset-format/go-pyset/cst"
	"github.com/pyset-format/go-pyset/parse"
)

func tmpSettings(t *testing.T) string {
	t.Helper()
	d, err := os.ReadFile(filepath.Join("testdata", "settings.py"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "settings.py")
	if err := os.WriteFile(path, d, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenFileErrors(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.py"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, parse.ErrParse) {
		t.Errorf("read error reported as parse error: %v", err)
	}
	_, err = OpenFile(filepath.Join("testdata", "invalid.py"))
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func evalSetting(t *testing.T, s *Session, name string) any {
	t.Helper()
	stmt := FindAssignments(s.Doc(), []string{name})[name]
	if stmt == nil {
		t.Fatalf("setting %q not found", name)
	}
	_, val, ok := assignment(stmt)
	if !ok {
		t.Fatalf("setting %q lost assignment shape", name)
	}
	v, err := cst.Eval(val)
	if err != nil {
		t.Fatalf("setting %q: %v", name, err)
	}
	return v
}

func TestUpdateFile(t *testing.T) {
	path := tmpSettings(t)
	s, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Update(
		map[string]any{
			"A_TUPLE": cst.Tuple{"consectetur"},
			"AN_INT":  int64(5),
		},
		map[string]any{
			"NONEMPTY_TUPLE": "dolorem",
			"EMPTY_TUPLE":    "sit",
			"NONEMPTY_DICT":  cst.Map{{Key: "dolorem", Val: "ipsum"}},
			"EMPTY_DICT":     cst.Map{{Key: "quia", Val: true}},
		},
		false)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Changed() {
		t.Error("session not marked changed")
	}
	wrote, err := s.Persist("")
	if err != nil {
		t.Fatal(err)
	}
	if !wrote {
		t.Fatal("Persist did not write")
	}

	saved, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"NONEMPTY_TUPLE": cst.Tuple{"Neque", "porro", "dolorem"},
		"EMPTY_TUPLE":    cst.Tuple{"sit"},
		"NONEMPTY_DICT": cst.Map{
			{Key: "Neque", Val: "porro"},
			{Key: "dolorem", Val: "ipsum"},
		},
		"EMPTY_DICT": cst.Map{{Key: "quia", Val: true}},
		"A_TUPLE":    cst.Tuple{"consectetur"},
		"AN_INT":     int64(5),
	}
	for name, w := range want {
		if d := cmp.Diff(w, evalSetting(t, saved, name)); d != "" {
			t.Errorf("%s: (-want +got)\n%s", name, d)
		}
	}
	// untouched regions survive byte for byte
	text := saved.Text()
	for _, keep := range []string{
		"# a tuple with existing values\n",
		"NONEMPTY_TUPLE = (\n        'Neque',\n        'porro',\n        'dolorem',\n        )\n",
		"SCALAR = 42\n",
	} {
		if !strings.Contains(text, keep) {
			t.Errorf("saved text lost %q", keep)
		}
	}
}

func TestUpdateDuplicateCreate(t *testing.T) {
	s, err := Open([]byte("DEBUG = True\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = s.Update(map[string]any{"DEBUG": false}, nil, false)
	if !errors.Is(err, ErrDuplicateSetting) {
		t.Errorf("got %v, want ErrDuplicateSetting", err)
	}
	if s.Changed() {
		t.Error("failed update marked the session changed")
	}
}

func TestUpdateMissingExtend(t *testing.T) {
	s, err := Open([]byte("A = [1]\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = s.Update(nil, map[string]any{"B": []any{int64(2)}}, false)
	if !errors.Is(err, ErrMissingSetting) {
		t.Fatalf("got %v, want ErrMissingSetting", err)
	}

	// createIfMissing promotes the extend to a create
	if err := s.Update(nil, map[string]any{"B": []any{int64(2)}}, true); err != nil {
		t.Fatal(err)
	}
	if got := s.Text(); got != "A = [1]\nB = [2]\n" {
		t.Errorf("got %q", got)
	}
}

func TestUpdatePartialFailure(t *testing.T) {
	s, err := Open([]byte("A = [1]\nSCALAR = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = s.Update(nil, map[string]any{
		"A":      int64(9),
		"SCALAR": int64(9),
	}, false)
	if !errors.Is(err, ErrNotAContainer) {
		t.Fatalf("got %v, want ErrNotAContainer", err)
	}
	// the entry processed before the failure stays applied
	if got := s.Text(); got != "A = [1,9,]\nSCALAR = 2\n" {
		t.Errorf("got %q", got)
	}
	if !s.Changed() {
		t.Error("partial update not marked changed")
	}
}

func TestCreateWithoutTrailingNewline(t *testing.T) {
	s, err := Open([]byte("A = 1"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Update(map[string]any{"B": int64(2)}, nil, false); err != nil {
		t.Fatal(err)
	}
	if got := s.Text(); got != "A = 1\nB = 2\n" {
		t.Errorf("got %q", got)
	}
}

func TestCreateAfterTrailingComment(t *testing.T) {
	s, err := Open([]byte("A = 1\n# the end\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Update(map[string]any{"B": int64(2)}, nil, false); err != nil {
		t.Fatal(err)
	}
	if got := s.Text(); got != "A = 1\n# the end\nB = 2\n" {
		t.Errorf("got %q", got)
	}
}

func TestPersistUnchanged(t *testing.T) {
	path := tmpSettings(t)
	s, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	wrote, err := s.Persist("")
	if err != nil {
		t.Fatal(err)
	}
	if wrote {
		t.Error("unchanged session was written")
	}
	// an explicit destination always writes
	out := filepath.Join(t.TempDir(), "copy.py")
	wrote, err = s.Persist(out)
	if err != nil {
		t.Fatal(err)
	}
	if !wrote {
		t.Fatal("explicit destination not written")
	}
	d, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != s.Text() {
		t.Error("copy differs from session text")
	}
}

func TestPersistNoDestination(t *testing.T) {
	s, err := Open([]byte("A = []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Update(nil, map[string]any{"A": int64(1)}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Persist(""); !errors.Is(err, ErrNoDestination) {
		t.Errorf("got %v, want ErrNoDestination", err)
	}
}

func TestPersistWriteError(t *testing.T) {
	s, err := Open([]byte("A = []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Persist(filepath.Join(t.TempDir(), "no", "such", "dir", "f.py")); err == nil {
		t.Error("expected write error")
	}
}
