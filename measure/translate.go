package measure

import (
	"strings"

	"github.com/teranos/measure/registry"
)

// Translator rewrites a unit name written as an identifier into a registry
// symbol. It returns its input unchanged when it has nothing to rewrite.
type Translator func(string) string

// Underscores turns mile_per_hour into "mile per hour". It is the default
// translator of every dimension.
func Underscores(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// RatioShorthand turns mi__h into "mi/h".
func RatioShorthand(name string) string {
	return strings.ReplaceAll(name, "__", "/")
}

// PowerPrefix strips the first matching prefix and appends the superscript
// exponent, so with prefix "sq_" the name sq_m becomes "m²".
func PowerPrefix(exp int, prefixes ...string) Translator {
	sup := registry.Superscript(exp)
	return func(name string) string {
		for _, p := range prefixes {
			if rest, ok := strings.CutPrefix(name, p); ok && rest != "" {
				return rest + sup
			}
		}
		return name
	}
}

// Chain applies translators left to right.
func Chain(ts ...Translator) Translator {
	return func(name string) string {
		for _, t := range ts {
			name = t(name)
		}
		return name
	}
}
