// Package sorting provides sort terms for connection queries: a field, a
// direction and an optional NULLS placement, evaluated in order.
package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/99designs/gqlgen/graphql"

	"github.com/syssam/veloxquery"
)

// Direction defines the direction of a sort term.
type Direction string

// Sort directions.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(d)
}

// Validate the direction value.
func (d Direction) Validate() error {
	if d != Asc && d != Desc {
		return fmt.Errorf("%s is not a valid Direction", d)
	}
	return nil
}

// MarshalGQL implements graphql.Marshaler interface.
func (d Direction) MarshalGQL(w io.Writer) {
	graphql.MarshalString(d.String()).MarshalGQL(w)
}

// UnmarshalGQL implements graphql.Unmarshaler interface.
func (d *Direction) UnmarshalGQL(val any) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("%T is not a Direction", val)
	}
	*d = Direction(str)
	return d.Validate()
}

// Nulls places NULL values before or after the others.
type Nulls string

// NULLS placements. The zero value keeps the database default: NULLs
// last for ascending terms and first for descending ones.
const (
	NullsFirst Nulls = "NULLS_FIRST"
	NullsLast  Nulls = "NULLS_LAST"
)

// String implements fmt.Stringer.
func (n Nulls) String() string {
	return string(n)
}

// Validate the nulls value.
func (n Nulls) Validate() error {
	if n != NullsFirst && n != NullsLast {
		return fmt.Errorf("%s is not a valid Nulls", n)
	}
	return nil
}

// MarshalGQL implements graphql.Marshaler interface.
func (n Nulls) MarshalGQL(w io.Writer) {
	graphql.MarshalString(n.String()).MarshalGQL(w)
}

// UnmarshalGQL implements graphql.Unmarshaler interface.
func (n *Nulls) UnmarshalGQL(val any) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("%T is not a Nulls", val)
	}
	*n = Nulls(str)
	return n.Validate()
}

// Term sorts entities of type T by a single field.
type Term[T any] struct {
	Field     string
	Direction Direction
	Nulls     Nulls

	// compare orders two non-NULL values and reports which side is NULL.
	compare func(a, b T) (c int, aNull, bNull bool)
}

// By returns an ascending term on the field read by get. A nil result
// from get is NULL.
func By[T any, V cmp.Ordered](field string, get func(T) *V) Term[T] {
	return Term[T]{
		Field:     field,
		Direction: Asc,
		compare: func(a, b T) (int, bool, bool) {
			va, vb := get(a), get(b)
			if va == nil || vb == nil {
				return 0, va == nil, vb == nil
			}
			return cmp.Compare(*va, *vb), false, false
		},
	}
}

// Asc returns a copy of the term sorting in ascending order.
func (t Term[T]) Asc() Term[T] {
	t.Direction = Asc
	return t
}

// Desc returns a copy of the term sorting in descending order.
func (t Term[T]) Desc() Term[T] {
	t.Direction = Desc
	return t
}

// NullsFirst returns a copy of the term placing NULLs first.
func (t Term[T]) NullsFirst() Term[T] {
	t.Nulls = NullsFirst
	return t
}

// NullsLast returns a copy of the term placing NULLs last.
func (t Term[T]) NullsLast() Term[T] {
	t.Nulls = NullsLast
	return t
}

// Validate checks the direction and nulls values of the term.
func (t Term[T]) Validate() error {
	var errs []error
	if t.compare == nil {
		errs = append(errs, errors.New("term was not built with By"))
	}
	if err := t.Direction.Validate(); err != nil {
		errs = append(errs, err)
	}
	if t.Nulls != "" {
		if err := t.Nulls.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return veloxquery.NewValidationError(t.Field, errors.Join(errs...))
	}
	return nil
}

func (t Term[T]) nullsFirst() bool {
	if t.Nulls == "" {
		return t.Direction == Desc
	}
	return t.Nulls == NullsFirst
}

func (t Term[T]) order(a, b T) int {
	c, aNull, bNull := t.compare(a, b)
	switch {
	case aNull && bNull:
		return 0
	case aNull, bNull:
		// NULL placement is independent of the direction.
		if aNull == t.nullsFirst() {
			return -1
		}
		return 1
	case t.Direction == Desc:
		return -c
	default:
		return c
	}
}

// Sort orders items in place by terms, earlier terms taking precedence.
// The sort is stable, so entities equal on every term keep their order.
func Sort[T any](items []T, terms ...Term[T]) error {
	if len(terms) == 0 {
		return nil
	}
	errs := make([]error, 0, len(terms))
	for _, t := range terms {
		errs = append(errs, t.Validate())
	}
	if err := veloxquery.NewAggregateError(errs...); err != nil {
		return err
	}
	slices.SortStableFunc(items, func(a, b T) int {
		for _, t := range terms {
			if c := t.order(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return nil
}
