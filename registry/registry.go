// Package registry builds the symbol table of one dimension.
//
// A Registry is built once from an ordered list of declared units and is
// read-only afterwards, so any number of goroutines may share it.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/logger"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/unit"
)

// Entry is a declared unit: the name it is declared under and its converter.
type Entry[N numeric.Number[N]] struct {
	Name string
	Unit unit.Converter[N]
}

// Resolved is what a symbol maps to: the declared unit that owns it and the
// converter for that exact spelling (km carries the metre name with a
// factor of 1000).
type Resolved[N numeric.Number[N]] struct {
	Name string
	Unit unit.Converter[N]
}

func (r Resolved[N]) same(o Resolved[N]) bool {
	return r.Name == o.Name && r.Unit.Equal(o.Unit)
}

// DuplicateSymbolError reports a symbol claimed by two different units of
// the same dimension.
type DuplicateSymbolError struct {
	Dimension string
	Symbol    string
	Existing  string
	Incoming  string
}

func (e *DuplicateSymbolError) Error() string {
	if e.Existing == e.Incoming {
		return fmt.Sprintf("%s: symbol %q of unit %q is declared twice with different factors",
			e.Dimension, e.Symbol, e.Incoming)
	}
	return fmt.Sprintf("%s: symbol %q of unit %q collides with unit %q",
		e.Dimension, e.Symbol, e.Incoming, e.Existing)
}

// Unwrap returns ErrDuplicateSymbol.
func (e *DuplicateSymbolError) Unwrap() error {
	return errors.ErrDuplicateSymbol
}

type options struct {
	caseFold bool
}

// Option configures Build, Ratio and Power.
type Option func(*options)

// WithCaseFold adds a lower-case index consulted after exact lookup.
// Lower-case keys that two different units would claim are left out.
func WithCaseFold() Option {
	return func(o *options) { o.caseFold = true }
}

// Registry maps every accepted spelling of a dimension's units to the unit.
type Registry[N numeric.Number[N]] struct {
	name      string
	reference Entry[N]
	units     []Entry[N]
	symbols   map[string]Resolved[N]
	fold      map[string]Resolved[N]
}

// Build declares a dimension from its units. reference names the entry
// values are stored in; it must have a factor of exactly 1.
func Build[N numeric.Number[N]](dimension, reference string, entries []Entry[N], opts ...Option) (*Registry[N], error) {
	b := newBuilder[N](dimension)
	for _, e := range entries {
		if err := b.add(e); err != nil {
			return nil, err
		}
	}
	return b.finish(reference, opts)
}

// Must panics if err is non-nil. Dimension tables declared in source use it
// because a collision there is a bug in the table, not a runtime condition.
func Must[N numeric.Number[N]](r *Registry[N], err error) *Registry[N] {
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the dimension name.
func (r *Registry[N]) Name() string { return r.name }

// Reference returns the unit values are stored in.
func (r *Registry[N]) Reference() Entry[N] { return r.reference }

// ReferenceSymbol returns the primary spelling of the reference unit.
func (r *Registry[N]) ReferenceSymbol() string { return unit.DisplayName(r.reference.Name) }

// Lookup resolves symbol exactly.
func (r *Registry[N]) Lookup(symbol string) (Resolved[N], bool) {
	res, ok := r.symbols[symbol]
	return res, ok
}

// LookupFold resolves symbol through the lower-case index. It always fails
// for registries built without WithCaseFold.
func (r *Registry[N]) LookupFold(symbol string) (Resolved[N], bool) {
	if r.fold == nil {
		return Resolved[N]{}, false
	}
	res, ok := r.fold[strings.ToLower(symbol)]
	return res, ok
}

// CaseFold reports whether the registry has a lower-case index.
func (r *Registry[N]) CaseFold() bool { return r.fold != nil }

// Symbols returns every accepted spelling, sorted.
func (r *Registry[N]) Symbols() []string {
	out := make([]string, 0, len(r.symbols))
	for s := range r.symbols {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SymbolsOf returns the sorted spellings owned by the named unit.
func (r *Registry[N]) SymbolsOf(name string) []string {
	var out []string
	for s, res := range r.symbols {
		if res.Name == name {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Units returns the declared units in declaration order, before prefix
// expansion.
func (r *Registry[N]) Units() []Entry[N] {
	return append([]Entry[N](nil), r.units...)
}

// Unit returns the declared unit with the given name.
func (r *Registry[N]) Unit(name string) (Entry[N], bool) {
	for _, e := range r.units {
		if e.Name == name {
			return e, true
		}
	}
	return Entry[N]{}, false
}

// Len returns the number of accepted spellings.
func (r *Registry[N]) Len() int { return len(r.symbols) }

type builder[N numeric.Number[N]] struct {
	r *Registry[N]
}

func newBuilder[N numeric.Number[N]](dimension string) *builder[N] {
	return &builder[N]{r: &Registry[N]{
		name:    dimension,
		symbols: make(map[string]Resolved[N]),
	}}
}

// add records e in the raw unit table and inserts all of its symbols.
func (b *builder[N]) add(e Entry[N]) error {
	if e.Name == "" || e.Unit == nil {
		return errors.Newf("%s: unit declaration needs a name and a converter", b.r.name)
	}
	if _, dup := b.r.Unit(e.Name); dup {
		return errors.Newf("%s: unit %q is declared twice", b.r.name, e.Name)
	}
	b.r.units = append(b.r.units, e)
	for symbol, c := range e.Unit.Symbols(e.Name) {
		if err := b.insert(symbol, Resolved[N]{Name: e.Name, Unit: c}); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder[N]) insert(symbol string, res Resolved[N]) error {
	if prev, ok := b.r.symbols[symbol]; ok {
		if prev.same(res) {
			return nil
		}
		return &DuplicateSymbolError{
			Dimension: b.r.name,
			Symbol:    symbol,
			Existing:  prev.Name,
			Incoming:  res.Name,
		}
	}
	b.r.symbols[symbol] = res
	return nil
}

func (b *builder[N]) finish(reference string, opts []Option) (*Registry[N], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := b.r
	ref, ok := r.Unit(reference)
	if !ok {
		return nil, errors.Newf("%s: reference unit %q is not declared", r.name, reference)
	}
	if n, d, linear := unit.Parts(ref.Unit); !linear || n.Cmp(d) != 0 {
		return nil, errors.Newf("%s: reference unit %q must have a factor of 1", r.name, reference)
	}
	r.reference = ref

	if o.caseFold {
		r.fold = foldIndex(r.symbols)
	}

	logger.ComponentLogger("registry").Debugw("dimension declared",
		logger.FieldDimension, r.name,
		logger.FieldReference, reference,
		logger.FieldUnits, len(r.units),
		logger.FieldSymbols, len(r.symbols))
	return r, nil
}

func foldIndex[N numeric.Number[N]](symbols map[string]Resolved[N]) map[string]Resolved[N] {
	fold := make(map[string]Resolved[N], len(symbols))
	ambiguous := make(map[string]bool)
	for s, res := range symbols {
		key := strings.ToLower(s)
		if ambiguous[key] {
			continue
		}
		if prev, ok := fold[key]; ok && !prev.same(res) {
			delete(fold, key)
			ambiguous[key] = true
			continue
		}
		fold[key] = res
	}
	return fold
}
