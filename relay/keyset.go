package relay

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/veloxquery"
)

// KeysetCursor points at a row by its ordering value and id instead of its
// offset, so pages stay stable while rows are inserted ahead of them.
// See the package documentation for a resolver that pages with it.
//
//	cur, err := relay.KeysetCursor{ID: todo.ID, Value: todo.CreatedAt}.Encode()
type KeysetCursor struct {
	ID    any `msgpack:"i"`
	Value any `msgpack:"v,omitempty"`
}

// Encode serializes the cursor as base64url(msgpack).
func (k KeysetCursor) Encode() (Cursor, error) {
	if k.ID == nil {
		return "", errors.New("relay: keyset cursor requires an id")
	}
	raw, err := msgpack.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("relay: encoding keyset cursor: %w", err)
	}
	return Cursor(base64.RawURLEncoding.EncodeToString(raw)), nil
}

// DecodeKeyset parses a cursor produced by KeysetCursor.Encode.
func DecodeKeyset(cur Cursor) (*KeysetCursor, error) {
	s := string(cur)
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, veloxquery.NewMalformedCursorError(s, "invalid encoding", err)
	}
	var k KeysetCursor
	if err := msgpack.Unmarshal(raw, &k); err != nil {
		return nil, veloxquery.NewMalformedCursorError(s, "not a keyset cursor", err)
	}
	if k.ID == nil {
		return nil, veloxquery.NewMalformedCursorError(s, "missing id", nil)
	}
	return &k, nil
}

// MarshalGQL implements the graphql.Marshaler interface.
func (k KeysetCursor) MarshalGQL(w io.Writer) {
	c, err := k.Encode()
	if err != nil {
		_, _ = io.WriteString(w, "null")
		return
	}
	c.MarshalGQL(w)
}

// UnmarshalGQL implements the graphql.Unmarshaler interface.
func (k *KeysetCursor) UnmarshalGQL(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%T is not a cursor string", v)
	}
	decoded, err := DecodeKeyset(Cursor(s))
	if err != nil {
		return err
	}
	*k = *decoded
	return nil
}
