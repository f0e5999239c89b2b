package ppolicy

import "errors"

// Decode failure classes. DecodeResponseValue wraps these with context on
// the specific element that failed, so callers can match with errors.Is.
var (
	// ErrMalformedRoot is returned when the control value is empty,
	// unparseable, or its top-level element is not a SEQUENCE.
	ErrMalformedRoot = errors.New("ppolicy: response value is not a SEQUENCE")

	// ErrUntaggedElement is returned when a sequence element is not
	// context-tagged.
	ErrUntaggedElement = errors.New("ppolicy: untagged element in response value")

	// ErrInvalidElementTag is returned for a sequence element whose outer
	// tag is neither warning (0) nor error (1).
	ErrInvalidElementTag = errors.New("ppolicy: invalid password policy element tag")

	// ErrInvalidWarningTag is returned when the warning CHOICE carries a
	// tag other than timeBeforeExpiration (0) or graceAuthNsRemaining (1).
	ErrInvalidWarningTag = errors.New("ppolicy: invalid tag for password policy warning")

	// ErrPrimitiveDecode is returned when INTEGER or ENUMERATED content is
	// truncated, empty, or out of range for the grammar.
	ErrPrimitiveDecode = errors.New("ppolicy: malformed primitive content")
)
