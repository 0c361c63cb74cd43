// Package pyset edits Python-style settings files in place while keeping
// every byte the edit does not touch: comments, blank lines and the
// idiosyncratic whitespace around literals all survive a round trip.
//
// # Usage
//
//	// Open a settings file and add to it
//	s, err := pyset.OpenFile("settings.py")
//	if err != nil { ... }
//	err = s.Update(
//	    map[string]any{"DEBUG": true},                       // create
//	    map[string]any{"INSTALLED_APPS": "myapp"},           // extend
//	    false,                                               // createIfMissing
//	)
//	if err != nil { ... }
//	written, err := s.Persist("")
//
// Extending appends to an existing list, tuple or dict literal, copying the
// container's own separator and indentation style rather than imposing one.
// Creating appends a new NAME = value statement at the end of the document.
//
// # Related Packages
//
//   - github.com/pyset-format/go-pyset/token - lossless tokenization
//   - github.com/pyset-format/go-pyset/cst - the lossless parse tree
//   - github.com/pyset-format/go-pyset/parse - text to tree
package pyset
