package ordinal

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is the canonical {language, script, region} triple a formatter is
// built from. Script and Region are inferred when the input tag omits them and
// stay empty when nothing could be inferred.
type Locale struct {
	Language string
	Script   string
	Region   string
}

// ResolveLocale parses a BCP 47 identifier and expands it to its likely
// script and region. Malformed identifiers wrap ErrInvalidLocale. Well formed
// tags with unregistered subtags are accepted and resolve to whatever could be
// determined.
func ResolveLocale(id string) (Locale, error) {
	tidied := tidyLocaleID(id)
	if tidied == "" {
		return Locale{}, fmt.Errorf("%w: empty identifier", ErrInvalidLocale)
	}

	tidied, err := stripPrivateUse(tidied)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, id, err)
	}
	if tidied == "" {
		return Locale{}, nil
	}

	// All applies deprecated and macrolanguage aliases (iw -> he, cmn -> zh)
	// before the rule lookup.
	tag, err := language.All.Parse(tidied)
	if err != nil {
		var valueErr language.ValueError
		if !errors.As(err, &valueErr) {
			return Locale{}, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, id, err)
		}
	}

	return LocaleFromTag(tag), nil
}

// LocaleFromTag maximizes an already parsed tag.
func LocaleFromTag(tag language.Tag) Locale {
	var loc Locale

	// Base() falls back to English for und with Low confidence, which would
	// make every unknown tag look supported.
	if base, confidence := tag.Base(); confidence >= language.High {
		if value := base.String(); value != "und" {
			loc.Language = value
		}
	}

	if script, confidence := tag.Script(); confidence != language.No {
		if value := script.String(); value != "Zzzz" {
			loc.Script = value
		}
	}

	if region, confidence := tag.Region(); confidence != language.No {
		if value := region.String(); value != "ZZ" {
			loc.Region = value
		}
	}

	return loc
}

// String renders the triple as a tag, skipping empty parts.
func (l Locale) String() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{l.Language, l.Script, l.Region} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "und"
	}
	return strings.Join(parts, "-")
}

// Tag rebuilds a language.Tag from the triple. Unknown parts are dropped.
func (l Locale) Tag() language.Tag {
	var parts []any
	if base, err := language.ParseBase(l.Language); err == nil && l.Language != "" {
		parts = append(parts, base)
	}
	if script, err := language.ParseScript(l.Script); err == nil && l.Script != "" {
		parts = append(parts, script)
	}
	if region, err := language.ParseRegion(l.Region); err == nil && l.Region != "" {
		parts = append(parts, region)
	}
	if len(parts) == 0 {
		return language.Und
	}

	tag, err := language.Compose(parts...)
	if err != nil {
		return language.Und
	}
	return tag
}

// canonicalTag maps spellings of one tag (es_mx, ES-mx, cmn) to one key.
// Identifiers that do not parse are returned tidied but otherwise unchanged.
func canonicalTag(id string) string {
	tidied := tidyLocaleID(id)
	if tidied == "" {
		return ""
	}
	if tag, err := language.All.Parse(tidied); err == nil {
		return tag.String()
	}
	return tidied
}

// fallbackKeys lists the lookup keys for id, most specific first: the
// canonical tag, its CLDR parents and finally the bare language, e.g.
// es-MX, es-419, es.
func fallbackKeys(id string) []string {
	key := canonicalTag(id)
	if key == "" {
		return nil
	}

	keys := []string{key}
	seen := map[string]struct{}{key: {}}
	add := func(candidate string) bool {
		if candidate == "" || candidate == "und" {
			return false
		}
		if _, dup := seen[candidate]; dup {
			return false
		}
		seen[candidate] = struct{}{}
		keys = append(keys, candidate)
		return true
	}

	tag, err := language.All.Parse(key)
	if err != nil {
		return keys
	}
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		if !add(parent.String()) {
			break
		}
	}
	add(LocaleFromTag(tag).Language)
	return keys
}

// stripPrivateUse drops the private use sequence ("x-..."). It carries no
// language information, and its subtags may be longer than the eight
// characters golang.org/x/text accepts ("art-x-myownlanguage").
func stripPrivateUse(locale string) (string, error) {
	lower := strings.ToLower(locale)

	var rest string
	if strings.HasPrefix(lower, "x-") {
		locale, rest = "", locale[2:]
	} else if idx := strings.Index(lower, "-x-"); idx >= 0 {
		locale, rest = locale[:idx], locale[idx+3:]
	} else {
		return locale, nil
	}

	for _, subtag := range strings.Split(rest, "-") {
		if subtag == "" || strings.IndexFunc(subtag, notAlphaNum) >= 0 {
			return "", fmt.Errorf("malformed private use subtag %q", subtag)
		}
	}
	return locale, nil
}

func notAlphaNum(r rune) bool {
	return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
}

// tidyLocaleID accepts POSIX style separators (es_MX) and stray spaces.
func tidyLocaleID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "_", "-")
}
