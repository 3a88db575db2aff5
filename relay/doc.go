// Package relay implements Relay-style cursor connections on top of offset
// paging.
//
// # Cursors
//
// An offset cursor is base64("arrayconnection:" + offset). It is the same format
// graphql-relay uses, so cursors held by clients survive restarts and
// migrations between servers:
//
//	relay.EncodeOffset(0)                        // "YXJyYXljb25uZWN0aW9uOjA="
//	off, err := relay.DecodeOffset("YXJyYXljb25uZWN0aW9uOjE=") // 1, nil
//
// Decoding fails with *veloxquery.MalformedCursorError for foreign or
// garbled input. Encoding a negative offset panics.
//
// # Connections
//
// A resolver counts the matching rows, resolves the requested window, fetches
// it and hands the rows to Paginate:
//
//	func (r *queryResolver) Todos(ctx context.Context, after *relay.Cursor, first *int,
//	    before *relay.Cursor, last *int) (*relay.Connection[*Todo], error) {
//	    args := &relay.Args{After: after, First: first, Before: before, Last: last}
//	    total, err := r.store.Count(ctx)
//	    if err != nil {
//	        return nil, err
//	    }
//	    w, err := relay.NewWindow(args, total, r.pagingConfig)
//	    if err != nil {
//	        return nil, err
//	    }
//	    todos, err := r.store.List(ctx, w.Offset, w.Limit)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return relay.Paginate(todos, total, args, w.Offset)
//	}
//
// The result maps onto the usual schema:
//
//	type TodoConnection {
//	    edges: [TodoEdge!]!
//	    pageInfo: PageInfo!
//	    totalCount: Int!
//	}
//
// # Keyset cursors
//
// When rows are inserted ahead of the reader, offsets shift between pages.
// A resolver can page on the sort key instead: it decodes the after cursor
// into a KeysetCursor, seeks past it and builds the edges itself:
//
//	var from *relay.KeysetCursor
//	if after != nil {
//	    if from, err = relay.DecodeKeyset(*after); err != nil {
//	        return nil, err
//	    }
//	}
//	rows, err := r.store.ListAfter(ctx, from, *first+1) // WHERE (created_at, id) > (from.Value, from.ID)
//	...
//	cur, err := relay.KeysetCursor{ID: row.ID, Value: row.CreatedAt}.Encode()
//	edges = append(edges, &relay.Edge[*Todo]{Node: row, Cursor: cur})
//
// Decoding failures are *veloxquery.MalformedCursorError values, so
// ErrorPresenter reports them like offset cursor errors.
//
// # Errors
//
// Install ErrorPresenter on the gqlgen server so cursor and argument errors
// reach clients with the INVALID_CURSOR or BAD_PAGING_ARGUMENTS extension
// codes instead of leaking internal messages.
package relay
