// SPDX-License-Identifier: MIT

package render

import "golang.org/x/text/language"

const (
	// DefaultPrecision is the default maximum number of fraction digits.
	DefaultPrecision = 6

	// DefaultSeparator is placed between adjacent cells of a row.
	DefaultSeparator = "  "
)

// Option mutates Options.
type Option func(*Options)

// Options holds rendering settings. Zero value is not meaningful; use defaults.
type Options struct {
	lang      language.Tag
	precision int
	separator string
}

// Language returns the locale used for number formatting.
func (o Options) Language() language.Tag { return o.lang }

// Precision returns the maximum number of fraction digits.
func (o Options) Precision() int { return o.precision }

// Separator returns the cell separator.
func (o Options) Separator() string { return o.separator }

// WithLanguage selects the locale for digits, grouping and decimal marks.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) { o.lang = tag }
}

// WithPrecision caps the number of fraction digits. Negative values are
// reported by Matrix as ErrBadPrecision.
func WithPrecision(p int) Option {
	return func(o *Options) { o.precision = p }
}

// WithSeparator sets the text placed between cells.
func WithSeparator(s string) Option {
	return func(o *Options) { o.separator = s }
}

// NewOptions returns defaults with opts applied in order (last writer wins).
func NewOptions(opts ...Option) Options {
	o := Options{
		lang:      language.English,
		precision: DefaultPrecision,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
