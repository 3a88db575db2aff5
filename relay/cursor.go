package relay

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/99designs/gqlgen/graphql"

	"github.com/syssam/veloxquery"
)

// DefaultPrefix is the namespace tag of offset cursors. It matches the tag
// used by graphql-relay, so cursors stay compatible with existing clients.
const DefaultPrefix = "arrayconnection:"

// Cursor is an opaque position token returned on every edge and accepted
// by the after and before arguments.
type Cursor string

// String returns the raw cursor text.
func (c Cursor) String() string {
	return string(c)
}

// MarshalGQL implements the graphql.Marshaler interface.
func (c Cursor) MarshalGQL(w io.Writer) {
	graphql.MarshalString(string(c)).MarshalGQL(w)
}

// UnmarshalGQL implements the graphql.Unmarshaler interface.
// Only the shape is checked here; the cursor is decoded when the paging
// window is resolved.
func (c *Cursor) UnmarshalGQL(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%T is not a cursor string", v)
	}
	*c = Cursor(s)
	return nil
}

// Codec converts between zero-based offsets and cursors.
// A Codec is immutable once built and safe for concurrent use.
type Codec struct {
	prefix string
	enc    *base64.Encoding
}

// CodecOption configures a Codec.
type CodecOption func(*Codec) error

// WithPrefix sets the namespace tag prepended to the offset.
func WithPrefix(prefix string) CodecOption {
	return func(c *Codec) error {
		if prefix == "" {
			return veloxquery.NewValidationError("prefix", errors.New("must not be empty"))
		}
		c.prefix = prefix
		return nil
	}
}

// WithEncoding sets the binary-to-text transform applied to the tagged offset.
func WithEncoding(enc *base64.Encoding) CodecOption {
	return func(c *Codec) error {
		if enc == nil {
			return veloxquery.NewValidationError("encoding", errors.New("must not be nil"))
		}
		c.enc = enc
		return nil
	}
}

var defaultCodec = &Codec{prefix: DefaultPrefix, enc: base64.StdEncoding}

// DefaultCodec returns the shared codec that encodes cursors as
// base64("arrayconnection:" + offset).
func DefaultCodec() *Codec {
	return defaultCodec
}

// NewCodec creates a Codec. Without options it behaves like DefaultCodec.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := &Codec{prefix: DefaultPrefix, enc: base64.StdEncoding}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Prefix returns the namespace tag of the codec.
func (c *Codec) Prefix() string {
	return c.prefix
}

// Encode returns the cursor for offset. It panics if offset is negative.
func (c *Codec) Encode(offset int) Cursor {
	if offset < 0 {
		panic(fmt.Sprintf("relay: negative cursor offset %d", offset))
	}
	raw := strconv.AppendInt([]byte(c.prefix), int64(offset), 10)
	return Cursor(c.enc.EncodeToString(raw))
}

// Decode returns the offset stored in cur.
func (c *Codec) Decode(cur Cursor) (int, error) {
	s := string(cur)
	raw, err := c.enc.DecodeString(s)
	if err != nil {
		return 0, veloxquery.NewMalformedCursorError(s, "invalid encoding", err)
	}
	// Decoders skip line breaks and tolerate some padding variants; only the
	// canonical form is accepted so each offset has exactly one cursor.
	if c.enc.EncodeToString(raw) != s {
		return 0, veloxquery.NewMalformedCursorError(s, "non-canonical encoding", nil)
	}
	digits, ok := strings.CutPrefix(string(raw), c.prefix)
	if !ok {
		return 0, veloxquery.NewMalformedCursorError(s, "unknown namespace", nil)
	}
	if !canonicalDecimal(digits) {
		return 0, veloxquery.NewMalformedCursorError(s, "offset is not a non-negative integer", nil)
	}
	offset, err := strconv.Atoi(digits)
	if err != nil {
		return 0, veloxquery.NewMalformedCursorError(s, "offset out of range", err)
	}
	return offset, nil
}

// canonicalDecimal reports whether s is a non-empty run of ASCII digits
// without a redundant leading zero.
func canonicalDecimal(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// EncodeOffset encodes offset with the default codec.
func EncodeOffset(offset int) Cursor {
	return defaultCodec.Encode(offset)
}

// DecodeOffset decodes cur with the default codec.
func DecodeOffset(cur Cursor) (int, error) {
	return defaultCodec.Decode(cur)
}
