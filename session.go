package pyset

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/pyset-format/go-pyset/cst"
	"github.com/pyset-format/go-pyset/parse"
)

// Session is an editing session over one settings document. It parses the
// source once, applies create and extend requests in place, and tracks
// whether anything changed so an untouched document is never rewritten.
// A Session must not be used from multiple goroutines.
type Session struct {
	doc     *cst.Node
	path    string
	changed bool
}

// Open parses src and starts a session over it.
func Open(src []byte) (*Session, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Session{doc: doc}, nil
}

// OpenFile reads and parses the settings file at path. Read errors are
// returned as-is; they are not parse errors.
func OpenFile(path string) (*Session, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Open(d)
	if err != nil {
		return nil, err
	}
	s.path = path
	return s, nil
}

// Doc returns the session's parse tree.
func (s *Session) Doc() *cst.Node {
	return s.doc
}

// Text renders the current state of the document.
func (s *Session) Text() string {
	return s.doc.String()
}

// Changed reports whether any update has been applied since the session
// was opened.
func (s *Session) Changed() bool {
	return s.changed
}

// Update applies a batch of requests. Each entry of create becomes a new
// top-level assignment; a name that already exists fails with
// ErrDuplicateSetting. Each entry of extend is appended to the named
// container-valued assignment; a name that does not exist fails with
// ErrMissingSetting unless createIfMissing promotes it to a create.
// Entries are processed in name order; on failure, entries already applied
// in the same call remain applied and the session stays usable.
func (s *Session) Update(create, extend map[string]any, createIfMissing bool) error {
	names := slices.Collect(maps.Keys(create))
	names = slices.AppendSeq(names, maps.Keys(extend))
	found := FindAssignments(s.doc, names)
	for _, name := range slices.Sorted(maps.Keys(create)) {
		if _, ok := found[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateSetting, name)
		}
		if err := s.create(name, create[name]); err != nil {
			return err
		}
	}
	for _, name := range slices.Sorted(maps.Keys(extend)) {
		stmt, ok := found[name]
		if !ok {
			if !createIfMissing {
				return fmt.Errorf("%w: %q", ErrMissingSetting, name)
			}
			if err := s.create(name, extend[name]); err != nil {
				return err
			}
			continue
		}
		if err := AppendValue(stmt, extend[name]); err != nil {
			return err
		}
		s.changed = true
	}
	return nil
}

func (s *Session) create(name string, value any) error {
	stmt, err := cst.NewAssignment(name, value)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	// a new statement needs its own line when the document does not end
	// with one
	if text := s.Text(); text != "" && !strings.HasSuffix(text, "\n") {
		stmt.SetLeafPrefix("\n")
	}
	s.doc.Append(stmt)
	s.changed = true
	return nil
}

// Persist writes the current text to path, or to the file the session was
// opened from when path is empty. It returns false without writing when
// nothing changed and no explicit destination was given.
func (s *Session) Persist(path string) (bool, error) {
	if path == "" && !s.changed {
		return false, nil
	}
	if path == "" {
		path = s.path
	}
	if path == "" {
		return false, ErrNoDestination
	}
	if err := os.WriteFile(path, []byte(s.Text()), 0644); err != nil {
		return false, err
	}
	return true, nil
}
