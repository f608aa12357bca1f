package ordinal

import (
	"golang.org/x/text/language"
)

// Match picks the supported locale closest to the user's preferences. Each
// preference may be a single tag or a whole Accept-Language header; earlier
// arguments win over later ones. When nothing matches, English is returned
// with confidence language.No.
func Match(preferences ...string) (Locale, language.Confidence) {
	supported := supportedTags()
	matcher := language.NewMatcher(supported)

	var desired []language.Tag
	for _, pref := range preferences {
		tags, _, err := language.ParseAcceptLanguage(tidyLocaleID(pref))
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}
	if len(desired) == 0 {
		return LocaleFromTag(supported[0]), language.No
	}

	tag, _, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return LocaleFromTag(supported[0]), language.No
	}
	return LocaleFromTag(tag), confidence
}

// supportedTags lists one tag per rule, English first as the matcher
// default. Chinese is listed in both scripts so Traditional preferences keep
// their script.
func supportedTags() []language.Tag {
	tags := []language.Tag{language.English}
	for _, lang := range Languages() {
		if lang == "en" {
			continue
		}
		tags = append(tags, language.Make(lang))
		if lang == "zh" {
			tags = append(tags, language.TraditionalChinese)
		}
	}
	return tags
}
