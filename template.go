package ordinal

// FuncMap exposes ordinal helpers for text/template and html/template:
//
//	{{ ordinal "en" .Rank }}            -> 3rd
//	{{ ordinal_female "es" .Rank }}     -> 3.ª
//	{{ ordinal_supported .Locale }}     -> true
//
// An empty locale uses cfg.DefaultLocale; a nil cfg uses English and the
// default gender.
func FuncMap(cfg *Config) map[string]any {
	if cfg == nil {
		cfg = &Config{DefaultLocale: defaultLocale}
	}

	return map[string]any{
		"ordinal": func(locale string, value any) (string, error) {
			f, err := cfg.Formatter(locale)
			if err != nil {
				return "", err
			}
			return f.Format(value)
		},
		"ordinal_female": func(locale string, value any) (string, error) {
			f, err := New(cfg.locale(locale), WithGender(Female))
			if err != nil {
				return "", err
			}
			return f.Format(value)
		},
		"ordinal_supported": func(locale string) bool {
			f, err := cfg.Formatter(locale)
			return err == nil && f.Supports()
		},
	}
}
