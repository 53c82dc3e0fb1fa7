package model

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// PostID is the opaque boundary form of a post identifier: 8 characters of
// URL-safe base64 over a 48-bit big-endian integer.
type PostID string

const postIDLength = 8

func PostIDFromInt64(id int64) PostID {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	return PostID(base64.RawURLEncoding.EncodeToString(buf[2:]))
}

// Int64 decodes the identifier into the integer form used by the database.
func (p PostID) Int64() (int64, error) {
	if len(p) != postIDLength {
		return 0, fmt.Errorf("post id must be %d characters, got %q", postIDLength, string(p))
	}
	raw, err := base64.RawURLEncoding.DecodeString(string(p))
	if err != nil {
		return 0, fmt.Errorf("post id %q is not valid url-safe base64: %w", string(p), err)
	}
	var buf [8]byte
	copy(buf[2:], raw)
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (p PostID) String() string {
	return string(p)
}
