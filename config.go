package ordinal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultLocale = "en"

// Config holds application level formatter defaults: the locale used when
// none is given and the gender per locale.
type Config struct {
	DefaultLocale string            `json:"default_locale" yaml:"default_locale"`
	Gender        Gender            `json:"gender" yaml:"gender"`
	Genders       map[string]Gender `json:"genders" yaml:"genders"`
}

// ConfigOption mutates Config during construction
type ConfigOption func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...ConfigOption) (*Config, error) {
	cfg := &Config{}
	return cfg.apply(opts)
}

// LoadConfig decodes a YAML (.yaml, .yml) or JSON (.json) file. Options are
// applied after decoding and win over file values.
func LoadConfig(path string, opts ...ConfigOption) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ordinal: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := decodeConfigFile(path, data, cfg); err != nil {
		return nil, fmt.Errorf("ordinal: decode %s: %w", path, err)
	}
	return cfg.apply(opts)
}

func decodeConfigFile(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

func (c *Config) apply(opts []ConfigOption) (*Config, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WithDefaultLocale sets the locale used for empty locale arguments
func WithDefaultLocale(locale string) ConfigOption {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithDefaultGender sets the gender used when no locale specific one matches
func WithDefaultGender(gender Gender) ConfigOption {
	return func(c *Config) error {
		c.Gender = gender
		return nil
	}
}

// WithLocaleGender sets the gender for locale and, unless overridden, its
// more specific children.
func WithLocaleGender(locale string, gender Gender) ConfigOption {
	return func(c *Config) error {
		if tidyLocaleID(locale) == "" {
			return fmt.Errorf("%w: empty identifier", ErrInvalidLocale)
		}
		if c.Genders == nil {
			c.Genders = make(map[string]Gender)
		}
		c.Genders[locale] = gender
		return nil
	}
}

func (c *Config) normalize() {
	c.DefaultLocale = tidyLocaleID(c.DefaultLocale)
	if c.DefaultLocale == "" {
		c.DefaultLocale = defaultLocale
	}

	if len(c.Genders) == 0 {
		return
	}
	genders := make(map[string]Gender, len(c.Genders))
	for locale, gender := range c.Genders {
		key := canonicalTag(locale)
		if key == "" {
			continue
		}
		genders[key] = gender
	}
	c.Genders = genders
}

// Validate checks that the default locale and every gender key are well
// formed tags.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if _, err := ResolveLocale(c.DefaultLocale); err != nil {
		return fmt.Errorf("ordinal: default locale: %w", err)
	}
	for locale := range c.Genders {
		if _, err := ResolveLocale(locale); err != nil {
			return fmt.Errorf("ordinal: gender for %q: %w", locale, err)
		}
	}
	return nil
}

// Formatter builds a formatter for locale, DefaultLocale when empty, with
// the configured gender.
func (c *Config) Formatter(locale string) (*Formatter, error) {
	locale = c.locale(locale)
	return New(locale, WithGender(c.GenderFor(locale)))
}

// GenderFor walks locale and its parents (es-MX, es-419, es) and returns the
// first configured gender, falling back to Gender.
func (c *Config) GenderFor(locale string) Gender {
	if c == nil {
		return Male
	}
	locale = c.locale(locale)

	for _, key := range fallbackKeys(locale) {
		if gender, ok := c.Genders[key]; ok {
			return gender
		}
	}

	if c.Gender == Female {
		return Female
	}
	return Male
}

// locale substitutes the default for an empty identifier. Configs built as
// literals, without NewConfig, fall back to English.
func (c *Config) locale(locale string) string {
	if tidyLocaleID(locale) != "" {
		return locale
	}
	if c == nil || tidyLocaleID(c.DefaultLocale) == "" {
		return defaultLocale
	}
	return c.DefaultLocale
}
