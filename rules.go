package ordinal

import (
	"math/big"
	"sort"
	"strings"
)

// magnitude is the absolute value of an ordinal input: a whole number in n,
// a decimal with a fractional part in frac, or, with both unset, the
// infinity sentinel.
type magnitude struct {
	n    *big.Int
	frac string
}

func (m magnitude) infinite() bool {
	return m.n == nil && m.frac == ""
}

func (m magnitude) is(k int64) bool {
	return m.n != nil && m.n.IsInt64() && m.n.Int64() == k
}

// mod returns m modulo k, or -1 when m is not a whole number so fractional
// values never fall into a digit class.
func (m magnitude) mod(k int64) int64 {
	if m.n == nil {
		return -1
	}
	return new(big.Int).Mod(m.n, big.NewInt(k)).Int64()
}

func (m magnitude) digits() string {
	if m.n == nil {
		return m.frac
	}
	return m.n.String()
}

// orPlaceholder returns the decimal digits, or placeholder for the sentinel.
func (m magnitude) orPlaceholder(placeholder string) string {
	if m.infinite() {
		return placeholder
	}
	return m.digits()
}

// rule renders an ordinal for a magnitude. positive is false for positions
// counted from the end.
type rule func(m magnitude, positive bool) string

type ruleFactory func(loc Locale, opts formatterOptions) rule

var ruleTable = map[string]ruleFactory{
	"en": englishRule,
	"zh": chineseRule,
	"ja": japaneseRule,
	"ko": koreanRule,
	"vi": vietnameseRule,
	"id": malayRule,
	"ms": malayRule,
	"fr": frenchRule,
	"es": iberianRule,
	"pt": iberianRule,
	"it": italianRule,
	"de": germanRule,
	"ru": russianRule,
}

// Languages lists the language subtags with a dedicated ordinal rule.
func Languages() []string {
	out := make([]string, 0, len(ruleTable))
	for lang := range ruleTable {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func lookupRule(loc Locale, opts formatterOptions) rule {
	factory, ok := ruleTable[loc.Language]
	if !ok {
		return nil
	}
	return factory(loc, opts)
}

func englishRule(Locale, formatterOptions) rule {
	return func(m magnitude, positive bool) string {
		if !positive && m.is(1) {
			return "last"
		}
		out := m.orPlaceholder("n") + englishSuffix(m)
		if positive {
			return out
		}
		return out + " to last"
	}
}

// englishSuffix picks st/nd/rd/th from the last two digits; 11, 12 and 13
// always take th.
func englishSuffix(m magnitude) string {
	if m.infinite() {
		return "th"
	}
	mod100 := m.mod(100)
	if mod100 >= 11 && mod100 <= 13 {
		return "th"
	}
	switch mod100 % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func chineseRule(loc Locale, _ formatterOptions) rule {
	fromEnd := "倒数"
	if loc.Script == "Hant" {
		fromEnd = "倒數"
	}
	return func(m magnitude, positive bool) string {
		out := "第" + m.orPlaceholder("n")
		if positive {
			return out
		}
		return fromEnd + out
	}
}

func japaneseRule(Locale, formatterOptions) rule {
	return func(m magnitude, positive bool) string {
		if !positive && m.is(1) {
			return "最後"
		}
		out := m.orPlaceholder("n") + "番目"
		if positive {
			return out
		}
		return "最後から" + out
	}
}

func koreanRule(Locale, formatterOptions) rule {
	return func(m magnitude, positive bool) string {
		out := m.orPlaceholder("n") + "번째"
		if positive {
			return out
		}
		return "마지막에서 " + out
	}
}

// vietnameseRule has no irregular form for 1: "thứ 1" rather than "thứ nhất",
// kept digit based like every other position.
func vietnameseRule(Locale, formatterOptions) rule {
	return func(m magnitude, positive bool) string {
		out := "thứ " + m.orPlaceholder("n")
		if positive {
			return out
		}
		return out + " đến cuối cùng"
	}
}

// malayRule serves Indonesian and Malay.
func malayRule(Locale, formatterOptions) rule {
	return func(m magnitude, positive bool) string {
		if m.is(1) {
			if positive {
				return "pertama"
			}
			return "terakhir"
		}
		out := "ke-" + m.orPlaceholder("n")
		if positive {
			return out
		}
		return out + " terakhir"
	}
}

func frenchRule(Locale, formatterOptions) rule {
	return func(m magnitude, positive bool) string {
		var out string
		switch {
		case m.infinite():
			out = "nième"
		case m.is(1):
			out = m.digits() + "er"
		default:
			out = m.digits() + "ème"
		}
		if positive {
			return out
		}
		return out + " avant dernier"
	}
}

// iberianRule serves Spanish and Portuguese.
func iberianRule(_ Locale, opts formatterOptions) rule {
	suffix, fromEnd := ".º", " al último"
	if opts.gender.IsFemale() {
		suffix, fromEnd = ".ª", " a la última"
	}
	return func(m magnitude, positive bool) string {
		out := m.orPlaceholder("n") + suffix
		if positive {
			return out
		}
		return out + fromEnd
	}
}

func italianRule(_ Locale, opts formatterOptions) rule {
	article, indicator, ending := "il ", "º", "o"
	if opts.gender.IsFemale() {
		article, indicator, ending = "la ", "ª", "a"
	}
	return func(m magnitude, positive bool) string {
		art := article
		if italianElides(m, positive) {
			art = "l’"
		}
		if !positive && m.is(1) {
			return art + "ultim" + ending
		}

		var out string
		if m.infinite() {
			out = art + "n-esim" + ending
		} else {
			out = art + m.digits() + indicator
		}
		if positive {
			return out
		}
		return out + " dall’ultim" + ending
	}
}

// italianElides reports whether the article is written "l’": the spoken
// ordinal starts with a vowel (otto..., undici..., ultimo, ennesimo).
func italianElides(m magnitude, positive bool) bool {
	if m.infinite() {
		return true
	}
	if !positive && m.is(1) {
		return true
	}
	return strings.HasPrefix(m.digits(), "8") || m.mod(100) == 11
}

func germanRule(Locale, formatterOptions) rule {
	return func(m magnitude, positive bool) string {
		out := "x-te"
		if !m.infinite() {
			out = m.digits() + "."
		}
		if positive {
			return out
		}
		return out + " letzte"
	}
}

func russianRule(Locale, formatterOptions) rule {
	return func(m magnitude, positive bool) string {
		if !positive && m.is(1) {
			return "последний"
		}
		out := m.orPlaceholder("н") + "-й"
		if positive {
			return out
		}
		return out + " до последнего"
	}
}
