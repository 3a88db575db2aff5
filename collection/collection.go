// Package collection answers connection queries over entities that are
// already in memory: filter, sort, count, window and paginate.
//
// It serves small reference tables, caches and tests, and mirrors what a
// database-backed query service does with WHERE, ORDER BY, COUNT and
// LIMIT/OFFSET.
//
//	conn, err := collection.Apply(todos, collection.Query[*Todo]{
//	    Filter:  filter.Field("completed", getCompleted, filter.BoolComparison{Is: ptr(true)}),
//	    Sorting: []sorting.Term[*Todo]{byTitle.Desc()},
//	    Paging:  &relay.Args{First: ptr(10)},
//	}, relay.DefaultConfig())
package collection

import (
	"github.com/syssam/veloxquery/filter"
	"github.com/syssam/veloxquery/relay"
	"github.com/syssam/veloxquery/sorting"
)

// Query describes a connection request. Zero fields mean no filter, the
// input order and no paging arguments.
type Query[T any] struct {
	Filter  filter.Filter[T]
	Sorting []sorting.Term[T]
	Paging  *relay.Args
}

// Validate checks the filter, the sort terms and the paging arguments that
// do not need the collection to be checked.
func (q Query[T]) Validate() error {
	if q.Filter != nil {
		if err := q.Filter.Validate(); err != nil {
			return err
		}
	}
	for _, t := range q.Sorting {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return q.Paging.Validate()
}

// Apply runs q over items and returns one page. items is never modified.
// Cursors encode positions in the filtered and sorted sequence, so the same
// query must be repeated to continue paging.
func Apply[T any](items []T, q Query[T], cfg relay.Config) (*relay.Connection[T], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	codec, err := cfg.Codec()
	if err != nil {
		return nil, err
	}

	matched := filter.Apply(items, q.Filter)
	if err := sorting.Sort(matched, q.Sorting...); err != nil {
		return nil, err
	}

	total := len(matched)
	w, err := relay.NewWindow(q.Paging, total, cfg)
	if err != nil {
		return nil, err
	}
	return relay.PaginateWith(codec, relay.SliceWindow(matched, w), total, q.Paging, w.Offset)
}
