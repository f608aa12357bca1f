// Package ordinal renders ordinal numbers ("3rd", "第3", "3.ª", "l’8º") for a
// fixed set of languages.
//
// A Formatter is built per locale and gender:
//
//	f, err := ordinal.New("es-ES", ordinal.WithGender(ordinal.Female))
//	if err != nil {
//		return err // ErrInvalidLocale
//	}
//	s, err := f.Format(5) // "5.ª"
//
// Negative values count from the end (-1 is "last", -2 "2nd to last") and
// ±Inf, or the strings "Infinity" and "-Infinity", stand for an unspecified
// position ("nth", "nth to last"). Integers of any size are handled exactly.
//
// Languages without a rule are not an error: Supports reports false and
// Format returns the input unchanged.
package ordinal
