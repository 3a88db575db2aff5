package relay

import (
	"fmt"

	"github.com/syssam/veloxquery"
)

// Args holds the Relay connection arguments of a single request.
// First and Last are mutually exclusive.
type Args struct {
	After  *Cursor `json:"after,omitempty"`
	First  *int    `json:"first,omitempty"`
	Before *Cursor `json:"before,omitempty"`
	Last   *int    `json:"last,omitempty"`
}

// Validate checks the arguments that can be checked without decoding cursors.
// A nil receiver is valid and means "no paging arguments".
func (a *Args) Validate() error {
	if a == nil {
		return nil
	}
	if a.First != nil && a.Last != nil {
		return &veloxquery.PagingArgsError{
			Msg: "first and last cannot be used together",
			Err: veloxquery.ErrConflictingPagingArgs,
		}
	}
	if a.First != nil && *a.First < 0 {
		return veloxquery.NewPagingArgsError("first", "must be a non-negative integer")
	}
	if a.Last != nil && *a.Last < 0 {
		return veloxquery.NewPagingArgsError("last", "must be a non-negative integer")
	}
	return nil
}

// Edge pairs a node with its cursor.
type Edge[T any] struct {
	Node   T      `json:"node"`
	Cursor Cursor `json:"cursor"`
}

// PageInfo describes the page returned by a connection. Start and end
// cursors are nil when the page is empty.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *Cursor `json:"startCursor"`
	EndCursor       *Cursor `json:"endCursor"`
}

// Connection is a page of edges plus its page info.
type Connection[T any] struct {
	Edges      []*Edge[T] `json:"edges"`
	PageInfo   PageInfo   `json:"pageInfo"`
	TotalCount int        `json:"totalCount"`
}

// Nodes returns the nodes of the connection in edge order.
func (c *Connection[T]) Nodes() []T {
	nodes := make([]T, len(c.Edges))
	for i, e := range c.Edges {
		nodes[i] = e.Node
	}
	return nodes
}

// Paginate builds a connection with the default codec. See PaginateWith.
func Paginate[T any](items []T, totalCount int, args *Args, baseOffset int) (*Connection[T], error) {
	return PaginateWith(defaultCodec, items, totalCount, args, baseOffset)
}

// PaginateWith builds a connection for items, the already fetched window
// that starts at baseOffset in a collection of totalCount entities.
//
// When First is set and the window is longer, it is cut to the first First
// items and HasNextPage is forced. When Last is set and the window is
// longer, only the last Last items are kept and HasPreviousPage is forced.
// Kept items retain their logical offsets, so every cursor decodes to the
// position of its node in the collection. An empty items slice yields an
// empty page with both flags false, while a window that first or last cut
// down to nothing still reports the forced flag.
//
// totalCount is trusted; it is not checked against len(items). Negative
// baseOffset or totalCount values are programming errors and panic.
func PaginateWith[T any](codec *Codec, items []T, totalCount int, args *Args, baseOffset int) (*Connection[T], error) {
	if baseOffset < 0 {
		panic(fmt.Sprintf("relay: negative base offset %d", baseOffset))
	}
	if totalCount < 0 {
		panic(fmt.Sprintf("relay: negative total count %d", totalCount))
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}
	if codec == nil {
		codec = defaultCodec
	}

	conn := &Connection[T]{
		Edges:      make([]*Edge[T], 0, len(items)),
		TotalCount: totalCount,
	}
	if len(items) == 0 {
		return conn, nil
	}

	var forceNext, forcePrev bool
	start := baseOffset
	if args != nil {
		if args.First != nil && len(items) > *args.First {
			items = items[:*args.First]
			forceNext = true
		}
		if args.Last != nil && len(items) > *args.Last {
			drop := len(items) - *args.Last
			items = items[drop:]
			start += drop
			forcePrev = true
		}
	}

	for i, item := range items {
		conn.Edges = append(conn.Edges, &Edge[T]{Node: item, Cursor: codec.Encode(start + i)})
	}
	conn.PageInfo = PageInfo{
		HasNextPage:     forceNext || start+len(items) < totalCount,
		HasPreviousPage: forcePrev || start > 0,
	}
	// A window truncated to nothing keeps its flags but has no cursors.
	if n := len(conn.Edges); n > 0 {
		startCursor, endCursor := conn.Edges[0].Cursor, conn.Edges[n-1].Cursor
		conn.PageInfo.StartCursor = &startCursor
		conn.PageInfo.EndCursor = &endCursor
	}
	return conn, nil
}
