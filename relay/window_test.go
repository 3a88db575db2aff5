package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/veloxquery"
	"github.com/syssam/veloxquery/relay"
)

func TestNewWindow(t *testing.T) {
	t.Parallel()

	cur := relay.EncodeOffset
	tests := []struct {
		name  string
		args  *relay.Args
		total int
		cfg   relay.Config
		want  relay.Window
	}{
		{name: "nil args uses default limit", total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 0, Limit: 10}},
		{name: "first", args: &relay.Args{First: ptr(5)}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 0, Limit: 5}},
		{name: "first zero", args: &relay.Args{First: ptr(0)}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 0, Limit: 0}},
		{name: "after and first", args: &relay.Args{After: ptr(cur(9)), First: ptr(5)}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 10, Limit: 5}},
		{name: "after near end", args: &relay.Args{After: ptr(cur(97)), First: ptr(5)}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 98, Limit: 2}},
		{name: "after past end", args: &relay.Args{After: ptr(cur(150))}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 100, Limit: 0}},
		{name: "last without before", args: &relay.Args{Last: ptr(3)}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 97, Limit: 3}},
		{name: "before and last", args: &relay.Args{Before: ptr(cur(10)), Last: ptr(3)}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 7, Limit: 3}},
		{name: "before near start", args: &relay.Args{Before: ptr(cur(2)), Last: ptr(5)}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 0, Limit: 2}},
		{name: "after and before", args: &relay.Args{After: ptr(cur(5)), Before: ptr(cur(8))}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 6, Limit: 2}},
		{name: "inverted range", args: &relay.Args{After: ptr(cur(8)), Before: ptr(cur(5))}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 5, Limit: 0}},
		{name: "unbounded config", total: 100, cfg: relay.Config{}, want: relay.Window{Offset: 0, Limit: 100}},
		{name: "empty collection", args: &relay.Args{First: ptr(5)}, total: 0, cfg: relay.DefaultConfig(), want: relay.Window{}},
		{name: "at max limit", args: &relay.Args{First: ptr(50)}, total: 100, cfg: relay.DefaultConfig(), want: relay.Window{Offset: 0, Limit: 50}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := relay.NewWindow(tt.args, tt.total, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Offset+tt.want.Limit, got.End())
		})
	}
}

func TestNewWindow_Errors(t *testing.T) {
	t.Parallel()

	t.Run("default above max", func(t *testing.T) {
		t.Parallel()
		w, err := relay.NewWindow(nil, 500, relay.Config{DefaultLimit: 100, MaxLimit: 50})
		require.Error(t, err)
		assert.Zero(t, w)

		var ve *veloxquery.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "default_limit", ve.Name)
	})

	t.Run("negative limits", func(t *testing.T) {
		t.Parallel()
		_, err := relay.NewWindow(&relay.Args{First: ptr(1)}, 10, relay.Config{DefaultLimit: -1, MaxLimit: -1})
		var agg *veloxquery.AggregateError
		require.ErrorAs(t, err, &agg)
		assert.Len(t, agg.Errors, 2)
	})

	t.Run("first above max", func(t *testing.T) {
		t.Parallel()
		_, err := relay.NewWindow(&relay.Args{First: ptr(51)}, 100, relay.DefaultConfig())
		var pe *veloxquery.PagingArgsError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "first", pe.Arg)
		assert.Equal(t, "cannot exceed 50", pe.Msg)
	})

	t.Run("last above max", func(t *testing.T) {
		t.Parallel()
		_, err := relay.NewWindow(&relay.Args{Last: ptr(51)}, 100, relay.DefaultConfig())
		assert.ErrorIs(t, err, veloxquery.ErrInvalidPagingArgs)
	})

	t.Run("conflicting", func(t *testing.T) {
		t.Parallel()
		_, err := relay.NewWindow(&relay.Args{First: ptr(1), Last: ptr(1)}, 100, relay.DefaultConfig())
		assert.ErrorIs(t, err, veloxquery.ErrConflictingPagingArgs)
	})

	t.Run("malformed after", func(t *testing.T) {
		t.Parallel()
		_, err := relay.NewWindow(&relay.Args{After: ptr(relay.Cursor("garbage"))}, 100, relay.DefaultConfig())
		assert.ErrorIs(t, err, veloxquery.ErrMalformedCursor)
	})

	t.Run("malformed before", func(t *testing.T) {
		t.Parallel()
		_, err := relay.NewWindow(&relay.Args{Before: ptr(relay.Cursor("garbage"))}, 100, relay.DefaultConfig())
		assert.ErrorIs(t, err, veloxquery.ErrMalformedCursor)
	})

	t.Run("cursor from another namespace", func(t *testing.T) {
		t.Parallel()
		cfg := relay.DefaultConfig()
		cfg.CursorPrefix = "todo:"
		_, err := relay.NewWindow(&relay.Args{After: ptr(relay.EncodeOffset(3))}, 100, cfg)
		assert.ErrorIs(t, err, veloxquery.ErrMalformedCursor)
	})
}

func TestSliceWindow(t *testing.T) {
	t.Parallel()

	items := []int{0, 1, 2, 3, 4}
	assert.Equal(t, []int{1, 2}, relay.SliceWindow(items, relay.Window{Offset: 1, Limit: 2}))
	assert.Equal(t, []int{3, 4}, relay.SliceWindow(items, relay.Window{Offset: 3, Limit: 10}))
	assert.Empty(t, relay.SliceWindow(items, relay.Window{Offset: 9, Limit: 2}))
	assert.Empty(t, relay.SliceWindow(items, relay.Window{}))
}

func TestWindowThenPaginate(t *testing.T) {
	t.Parallel()

	collection := make([]int, 100)
	for i := range collection {
		collection[i] = i
	}
	page := func(t *testing.T, args *relay.Args) *relay.Connection[int] {
		t.Helper()
		w, err := relay.NewWindow(args, len(collection), relay.DefaultConfig())
		require.NoError(t, err)
		conn, err := relay.Paginate(relay.SliceWindow(collection, w), len(collection), args, w.Offset)
		require.NoError(t, err)
		return conn
	}

	t.Run("forward", func(t *testing.T) {
		t.Parallel()
		first := page(t, &relay.Args{First: ptr(5)})
		assert.Equal(t, []int{0, 1, 2, 3, 4}, first.Nodes())
		assert.True(t, first.PageInfo.HasNextPage)
		assert.False(t, first.PageInfo.HasPreviousPage)

		next := page(t, &relay.Args{After: first.PageInfo.EndCursor, First: ptr(5)})
		assert.Equal(t, []int{5, 6, 7, 8, 9}, next.Nodes())
		assert.True(t, next.PageInfo.HasPreviousPage)
	})

	t.Run("backward", func(t *testing.T) {
		t.Parallel()
		last := page(t, &relay.Args{Last: ptr(3)})
		assert.Equal(t, []int{97, 98, 99}, last.Nodes())
		assert.False(t, last.PageInfo.HasNextPage)
		assert.True(t, last.PageInfo.HasPreviousPage)

		prev := page(t, &relay.Args{Before: last.PageInfo.StartCursor, Last: ptr(3)})
		assert.Equal(t, []int{94, 95, 96}, prev.Nodes())

		off, err := relay.DecodeOffset(*prev.PageInfo.EndCursor)
		require.NoError(t, err)
		assert.Equal(t, 96, off)
	})
}
