package filter

import (
	"errors"

	"github.com/syssam/veloxquery"
)

// Filter is a boolean expression over entities of type T.
type Filter[T any] interface {
	// Match reports whether the entity satisfies the filter.
	Match(T) bool
	// Validate reports every invalid comparison in the expression.
	Validate() error
}

// Getter extracts a field from an entity. A nil result is NULL.
type Getter[T, V any] func(T) *V

type fieldFilter[T, V any] struct {
	name    string
	get     Getter[T, V]
	matcher Matcher[V]
}

// Field applies matcher to the field named name, read with get.
//
//	filter.Field("priority", func(t *Todo) *int { return &t.Priority },
//	    filter.Comparison[int]{Gte: ptr(3)})
func Field[T, V any](name string, get Getter[T, V], matcher Matcher[V]) Filter[T] {
	return &fieldFilter[T, V]{name: name, get: get, matcher: matcher}
}

func (f *fieldFilter[T, V]) Match(v T) bool {
	return f.matcher.Match(f.get(v))
}

func (f *fieldFilter[T, V]) Validate() error {
	switch {
	case f.get == nil:
		return veloxquery.NewValidationError(f.name, errors.New("missing getter"))
	case f.matcher == nil:
		return veloxquery.NewValidationError(f.name, errors.New("missing comparison"))
	}
	if err := f.matcher.Validate(); err != nil {
		return veloxquery.NewValidationError(f.name, err)
	}
	return nil
}

type andFilter[T any] []Filter[T]

// And matches entities that satisfy every filter. An empty And matches
// everything.
func And[T any](filters ...Filter[T]) Filter[T] {
	return andFilter[T](filters)
}

func (fs andFilter[T]) Match(v T) bool {
	for _, f := range fs {
		if !f.Match(v) {
			return false
		}
	}
	return true
}

func (fs andFilter[T]) Validate() error {
	return validateAll(fs)
}

type orFilter[T any] []Filter[T]

// Or matches entities that satisfy at least one filter. An empty Or
// matches nothing.
func Or[T any](filters ...Filter[T]) Filter[T] {
	return orFilter[T](filters)
}

func (fs orFilter[T]) Match(v T) bool {
	for _, f := range fs {
		if f.Match(v) {
			return true
		}
	}
	return false
}

func (fs orFilter[T]) Validate() error {
	return validateAll(fs)
}

type notFilter[T any] struct{ f Filter[T] }

// Not negates a filter. A nil f fails validation and matches nothing.
func Not[T any](f Filter[T]) Filter[T] {
	return notFilter[T]{f: f}
}

func (n notFilter[T]) Match(v T) bool {
	return n.f != nil && !n.f.Match(v)
}

func (n notFilter[T]) Validate() error {
	if n.f == nil {
		return nilFilterError()
	}
	return n.f.Validate()
}

func nilFilterError() error {
	return veloxquery.NewValidationError("filter", errors.New("nil filter"))
}

func validateAll[T any](fs []Filter[T]) error {
	errs := make([]error, 0, len(fs))
	for _, f := range fs {
		if f == nil {
			errs = append(errs, nilFilterError())
			continue
		}
		errs = append(errs, f.Validate())
	}
	return veloxquery.NewAggregateError(errs...)
}

// Apply returns the entities that match f in their original order. items
// is never modified; a nil f keeps every entity.
func Apply[T any](items []T, f Filter[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f == nil || f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}
