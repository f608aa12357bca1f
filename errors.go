package ordinal

import "errors"

// ErrInvalidLocale indicates a locale identifier that is not a well-formed BCP 47 tag.
var ErrInvalidLocale = errors.New("ordinal: invalid locale")

// ErrInvalidValue indicates a value that cannot be read as an integer or the infinity sentinel.
var ErrInvalidValue = errors.New("ordinal: invalid value")

// ErrInvalidGender marks gender text other than male or female
var ErrInvalidGender = errors.New("ordinal: invalid gender")
