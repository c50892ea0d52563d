package unit

import (
	"iter"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/teranos/measure/numeric"
)

// Prefix is an SI prefix and the power of ten it scales by.
type Prefix struct {
	Symbol   string
	Exponent int
}

// shortPrefixes lists the single-letter prefixes from smallest to largest.
// Micro has two spellings.
var shortPrefixes = []Prefix{
	{"y", -24}, {"z", -21}, {"a", -18}, {"f", -15}, {"p", -12}, {"n", -9},
	{"u", -6}, {"μ", -6}, {"m", -3}, {"c", -2}, {"d", -1}, {"da", 1},
	{"h", 2}, {"k", 3}, {"M", 6}, {"G", 9}, {"T", 12}, {"P", 15},
	{"E", 18}, {"Z", 21}, {"Y", 24},
}

var longPrefixes = []Prefix{
	{"yocto", -24}, {"zepto", -21}, {"atto", -18}, {"femto", -15},
	{"pico", -12}, {"nano", -9}, {"micro", -6}, {"milli", -3},
	{"centi", -2}, {"deci", -1}, {"deca", 1}, {"hecto", 2}, {"kilo", 3},
	{"mega", 6}, {"giga", 9}, {"tera", 12}, {"peta", 15}, {"exa", 18},
	{"zeta", 21}, {"yotta", 24},
}

// ShortPrefixes returns the single-letter SI prefixes in expansion order.
func ShortPrefixes() []Prefix { return append([]Prefix(nil), shortPrefixes...) }

// LongPrefixes returns the full-word SI prefixes in expansion order.
func LongPrefixes() []Prefix { return append([]Prefix(nil), longPrefixes...) }

// Magnitude returns 10^p.Exponent as an N.
func Magnitude[N numeric.Number[N]](p Prefix) N {
	return numeric.MustParse[N]("1e" + strconv.Itoa(p.Exponent))
}

// Metric is a linear unit whose symbols also accept SI prefixes.
// Short symbols take single-letter prefixes (km), Long symbols take the
// full words (kilometre and Kilometre).
type Metric[N numeric.Number[N]] struct {
	Unit[N]
	Short []string
	Long  []string
}

// NewMetric parses factor and returns a prefixable unit.
func NewMetric[N numeric.Number[N]](factor string, symbols, short, long []string) (Metric[N], error) {
	u, err := New[N](factor, symbols...)
	if err != nil {
		return Metric[N]{}, err
	}
	return Metric[N]{
		Unit:  u,
		Short: append([]string(nil), short...),
		Long:  append([]string(nil), long...),
	}, nil
}

// MustMetric is like NewMetric but panics on error.
func MustMetric[N numeric.Number[N]](factor string, symbols, short, long []string) Metric[N] {
	m, err := NewMetric[N](factor, symbols, short, long)
	if err != nil {
		panic(err)
	}
	return m
}

// Symbols implements Converter. Base symbols come first, then every short
// prefix joined to every short symbol, then every long prefix joined to every
// long symbol in lower case and in title case.
func (m Metric[N]) Symbols(name string) iter.Seq2[string, Converter[N]] {
	return func(yield func(string, Converter[N]) bool) {
		for s, c := range m.Unit.Symbols(name) {
			if !yield(s, c) {
				return
			}
		}
		for _, p := range shortPrefixes {
			scaled := m.scaled(Magnitude[N](p))
			for _, s := range m.Short {
				if !yield(p.Symbol+s, scaled) {
					return
				}
			}
		}
		if len(m.Long) == 0 {
			return
		}
		title := cases.Title(language.Und, cases.NoLower)
		for _, p := range longPrefixes {
			scaled := m.scaled(Magnitude[N](p))
			for _, s := range m.Long {
				joined := strings.ToLower(p.Symbol + s)
				if !yield(joined, scaled) {
					return
				}
				if !yield(title.String(joined), scaled) {
					return
				}
			}
		}
	}
}
