package ordinal

import (
	"fmt"
	"strings"
)

// Gender selects the grammatical gender used by the Spanish, Portuguese and
// Italian rules. The zero value behaves as Male.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts male/female and their usual short and adjective forms.
func ParseGender(value string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "m", "male", "masculine":
		return Male, nil
	case "f", "female", "feminine":
		return Female, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, value)
	}
}

func (g Gender) String() string {
	if g == Female {
		return string(Female)
	}
	return string(Male)
}

// IsFemale reports whether feminine forms are selected.
func (g Gender) IsFemale() bool {
	return g == Female
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
