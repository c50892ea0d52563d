package registry

import (
	"strconv"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/unit"
)

// Superscript returns the superscript spelling of an exponent ("²", "³").
func Superscript(exp int) string {
	const digits = "⁰¹²³⁴⁵⁶⁷⁸⁹"
	runes := []rune(digits)
	var out []rune
	for _, c := range strconv.Itoa(exp) {
		if c == '-' {
			out = append(out, '⁻')
			continue
		}
		out = append(out, runes[c-'0'])
	}
	return string(out)
}

// Ratio declares a dimension whose units are every numerator unit over every
// denominator unit. Each pair of spellings n, d becomes the symbol "n/d",
// owned by the unit "{numerator unit}/{denominator unit}". extras are
// declared after the generated units under the same collision rules.
// Affine units have no meaningful quotient and are skipped.
func Ratio[N numeric.Number[N]](dimension string, num, den *Registry[N], extras []Entry[N], opts ...Option) (*Registry[N], error) {
	b := newBuilder[N](dimension)

	for _, nu := range num.units {
		for _, du := range den.units {
			f, ok := unit.Quotient(nu.Unit, du.Unit)
			if !ok {
				continue
			}
			b.r.units = append(b.r.units, Entry[N]{Name: nu.Name + "/" + du.Name, Unit: f})
		}
	}

	nsyms, dsyms := num.Symbols(), den.Symbols()
	for _, ns := range nsyms {
		nres := num.symbols[ns]
		for _, ds := range dsyms {
			dres := den.symbols[ds]
			f, ok := unit.Quotient(nres.Unit, dres.Unit)
			if !ok {
				continue
			}
			res := Resolved[N]{Name: nres.Name + "/" + dres.Name, Unit: f}
			if err := b.insert(ns+"/"+ds, res); err != nil {
				return nil, err
			}
		}
	}

	if err := b.addExtras(extras); err != nil {
		return nil, err
	}
	return b.finish(num.reference.Name+"/"+den.reference.Name, opts)
}

// Power declares a dimension whose units are the units of base raised to
// exp. Each spelling s of base becomes "s²" (or "s³"), owned by the unit
// "{base unit}²". extras follow the generated units as in Ratio.
func Power[N numeric.Number[N]](dimension string, base *Registry[N], exp int, extras []Entry[N], opts ...Option) (*Registry[N], error) {
	if exp < 2 {
		return nil, errors.Newf("%s: power dimensions need an exponent of at least 2, got %d", dimension, exp)
	}
	b := newBuilder[N](dimension)
	sup := Superscript(exp)

	for _, u := range base.units {
		f, ok := unit.Power(u.Unit, exp)
		if !ok {
			continue
		}
		b.r.units = append(b.r.units, Entry[N]{Name: u.Name + sup, Unit: f})
	}

	for _, s := range base.Symbols() {
		res := base.symbols[s]
		f, ok := unit.Power(res.Unit, exp)
		if !ok {
			continue
		}
		if err := b.insert(s+sup, Resolved[N]{Name: res.Name + sup, Unit: f}); err != nil {
			return nil, err
		}
	}

	if err := b.addExtras(extras); err != nil {
		return nil, err
	}
	return b.finish(base.reference.Name+sup, opts)
}

func (b *builder[N]) addExtras(extras []Entry[N]) error {
	for _, e := range extras {
		if err := b.add(e); err != nil {
			return errors.Wrapf(err, "%s: extra unit %q", b.r.name, e.Name)
		}
	}
	return nil
}
