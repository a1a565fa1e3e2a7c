package measure

import "errors"

// Errors returned by FromDMS, the only fallible constructor in the package.
// Both are sentinel values; match them with errors.Is.
var (
	// ErrInvalidArcMinutes is returned when the arcminutes component lies
	// outside [0, 59].
	ErrInvalidArcMinutes = errors.New("arcminutes outside [0, 59]")

	// ErrInvalidArcSeconds is returned when the arcseconds component lies
	// outside [0, 60). Exactly 60 is rejected because it carries into the
	// next arcminute.
	ErrInvalidArcSeconds = errors.New("arcseconds outside [0, 60)")
)
