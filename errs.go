package pyset

import "errors"

var (
	// ErrDuplicateSetting reports a create request for a name that is
	// already assigned in the document.
	ErrDuplicateSetting = errors.New("setting already present")
	// ErrMissingSetting reports an extend request for a name that is not
	// assigned and was not allowed to be created.
	ErrMissingSetting = errors.New("setting missing")
	// ErrNotAContainer reports an extend target whose value is not a
	// list, tuple or dict literal.
	ErrNotAContainer = errors.New("not a container setting")
	// ErrTypeMismatch reports an attempt to merge a non-mapping value
	// into a dict setting.
	ErrTypeMismatch = errors.New("can only merge mapping values into a dict setting")
	// ErrSetLiteral reports an extend target whose value is a set
	// display, which has no position to append to.
	ErrSetLiteral = errors.New("set literals cannot be extended")
	// ErrNoDestination reports a persist call on a session that was
	// opened from raw text without an explicit destination.
	ErrNoDestination = errors.New("no destination to persist to")
)
