package ordinal

import (
	"golang.org/x/text/language"
)

// Formatter renders ordinals for one locale and gender. It is immutable and
// safe for concurrent use.
type Formatter struct {
	locale Locale
	gender Gender
	rule   rule
}

// New resolves locale and returns its formatter. Only malformed identifiers
// fail; a language without a rule yields a formatter whose Supports is false
// and whose output is the plain input.
func New(locale string, opts ...Option) (*Formatter, error) {
	loc, err := ResolveLocale(locale)
	if err != nil {
		return nil, err
	}
	return ForLocale(loc, opts...), nil
}

// ForTag builds a formatter from an already parsed tag.
func ForTag(tag language.Tag, opts ...Option) *Formatter {
	return ForLocale(LocaleFromTag(tag), opts...)
}

// ForLocale builds a formatter from a resolved locale.
func ForLocale(loc Locale, opts ...Option) *Formatter {
	cfg := newFormatterOptions(opts)
	return &Formatter{
		locale: loc,
		gender: cfg.gender,
		rule:   lookupRule(loc, cfg),
	}
}

// Supports reports whether the locale's language has an ordinal rule.
func (f *Formatter) Supports() bool {
	return f != nil && f.rule != nil
}

// Locale returns the resolved locale the formatter was built for.
func (f *Formatter) Locale() Locale {
	if f == nil {
		return Locale{}
	}
	return f.locale
}

// Gender returns the gender in effect, Male unless Female was selected.
func (f *Formatter) Gender() Gender {
	if f == nil {
		return Male
	}
	return f.gender
}

// Format renders value, which may be any Go integer, *big.Int, float,
// json.Number, numeric string or Value. Fractional values keep their decimal
// digits ("2.5th"). Only nil, NaN and other non numeric inputs fail, wrapping
// ErrInvalidValue, for supported and unsupported locales alike.
func (f *Formatter) Format(value any) (string, error) {
	v, err := NormalizeValue(value)
	if err != nil {
		return "", err
	}
	return f.FormatValue(v), nil
}

// FormatInt renders n.
func (f *Formatter) FormatInt(n int64) string {
	return f.FormatValue(Int(n))
}

// FormatValue renders an already normalized value.
func (f *Formatter) FormatValue(v Value) string {
	if !f.Supports() {
		return v.String()
	}
	return f.rule(v.magnitude(), !v.negative)
}

// MustFormat is like Format but panics on invalid input.
func (f *Formatter) MustFormat(value any) string {
	out, err := f.Format(value)
	if err != nil {
		panic(err)
	}
	return out
}
