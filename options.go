package ordinal

type formatterOptions struct {
	gender Gender
}

// Option configures a Formatter during construction.
type Option func(*formatterOptions)

// WithGender selects the grammatical gender. Languages without gendered
// ordinals ignore it.
func WithGender(gender Gender) Option {
	return func(o *formatterOptions) {
		o.gender = gender
	}
}

func newFormatterOptions(opts []Option) formatterOptions {
	cfg := formatterOptions{gender: Male}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.gender != Female {
		cfg.gender = Male
	}
	return cfg
}
