package relay

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/syssam/veloxquery"
)

// Extension codes attached to client-facing paging errors.
const (
	CodeInvalidCursor     = "INVALID_CURSOR"
	CodeBadPagingArgument = "BAD_PAGING_ARGUMENTS"
)

// ErrorPresenter wraps a gqlgen error presenter so cursor and paging
// argument failures reach clients as stable, coded errors. Other errors go
// to next, which defaults to graphql.DefaultErrorPresenter.
//
//	srv.SetErrorPresenter(relay.ErrorPresenter(nil, logger))
func ErrorPresenter(next graphql.ErrorPresenterFunc, logger *slog.Logger) graphql.ErrorPresenterFunc {
	if next == nil {
		next = graphql.DefaultErrorPresenter
	}
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, err error) *gqlerror.Error {
		var (
			malformed *veloxquery.MalformedCursorError
			badArgs   *veloxquery.PagingArgsError
			msg, code string
		)
		switch {
		case errors.As(err, &malformed):
			logger.DebugContext(ctx, "rejected cursor", "cursor", malformed.Cursor, "reason", malformed.Reason)
			msg, code = "invalid cursor", CodeInvalidCursor
		case errors.Is(err, veloxquery.ErrMalformedCursor):
			msg, code = "invalid cursor", CodeInvalidCursor
		case errors.As(err, &badArgs):
			logger.DebugContext(ctx, "rejected paging arguments", "arg", badArgs.Arg, "reason", badArgs.Msg)
			msg, code = "invalid paging arguments: "+badArgs.Msg, CodeBadPagingArgument
			if badArgs.Arg != "" {
				msg = "invalid paging argument " + badArgs.Arg + ": " + badArgs.Msg
			}
		default:
			return next(ctx, err)
		}
		gqlErr := gqlerror.WrapPath(graphql.GetPath(ctx), err)
		gqlErr.Message = msg
		gqlErr.Extensions = map[string]any{"code": code}
		return gqlErr
	}
}
