package relay

import (
	"fmt"

	"github.com/syssam/veloxquery"
)

// Window is the offset/limit range a query service should fetch to answer
// a connection request.
type Window struct {
	Offset int
	Limit  int
}

// End returns the exclusive end offset of the window.
func (w Window) End() int {
	return w.Offset + w.Limit
}

// NewWindow resolves args against a collection of totalCount entities.
//
// The range starts as [0, totalCount) and is narrowed by after, before,
// first and last in that order. Without first or last the window is capped
// at cfg.DefaultLimit. An inverted range yields an empty window. An invalid
// cfg is reported before args are looked at.
func NewWindow(args *Args, totalCount int, cfg Config) (Window, error) {
	if totalCount < 0 {
		panic(fmt.Sprintf("relay: negative total count %d", totalCount))
	}
	if err := cfg.Validate(); err != nil {
		return Window{}, err
	}
	if err := args.Validate(); err != nil {
		return Window{}, err
	}
	codec, err := cfg.Codec()
	if err != nil {
		return Window{}, err
	}
	if args == nil {
		args = &Args{}
	}

	start, end := 0, totalCount
	if args.After != nil {
		off, err := codec.Decode(*args.After)
		if err != nil {
			return Window{}, err
		}
		if off >= end {
			start = end
		} else {
			start = off + 1
		}
	}
	if args.Before != nil {
		off, err := codec.Decode(*args.Before)
		if err != nil {
			return Window{}, err
		}
		end = min(end, off)
	}
	if start > end {
		start = end
	}

	switch {
	case args.First != nil:
		if cfg.MaxLimit > 0 && *args.First > cfg.MaxLimit {
			return Window{}, veloxquery.NewPagingArgsError("first", fmt.Sprintf("cannot exceed %d", cfg.MaxLimit))
		}
		if *args.First < end-start {
			end = start + *args.First
		}
	case args.Last != nil:
		if cfg.MaxLimit > 0 && *args.Last > cfg.MaxLimit {
			return Window{}, veloxquery.NewPagingArgsError("last", fmt.Sprintf("cannot exceed %d", cfg.MaxLimit))
		}
		if *args.Last < end-start {
			start = end - *args.Last
		}
	case cfg.DefaultLimit > 0:
		if cfg.DefaultLimit < end-start {
			end = start + cfg.DefaultLimit
		}
	}
	return Window{Offset: start, Limit: end - start}, nil
}

// SliceWindow returns the part of items covered by w. items is taken to be
// the whole collection, indexed from offset zero.
func SliceWindow[T any](items []T, w Window) []T {
	start := min(w.Offset, len(items))
	end := min(w.End(), len(items))
	return items[start:end]
}
