// Package veloxquery holds the shared error types for the query-side helpers
// used by Velox GraphQL resolvers.
//
// The work itself lives in the sub-packages:
//   - relay: Relay cursor codec, connections, paging windows and gqlgen glue
//   - filter: field comparison inputs (eq, gt, in, like, ...) and predicates
//   - sorting: sort terms with direction and NULLS placement
//   - collection: an in-memory query service combining the three
//
// # Errors
//
// Decoding failures are reported as *MalformedCursorError and paging
// argument failures as *PagingArgsError. Both are matched by their sentinels:
//
//	if errors.Is(err, veloxquery.ErrMalformedCursor) {
//	    // surface "invalid cursor" to the client, do not retry
//	}
package veloxquery
