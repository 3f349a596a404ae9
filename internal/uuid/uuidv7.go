// Package uuid generates record identifiers: time-ordered UUIDv7 values for
// persisted rows and prefixed temporary IDs for records created client-side.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	googleuuid "github.com/google/uuid"
)

// TemporaryPrefix marks IDs generated before a record is first saved.
const TemporaryPrefix = "tmp-"

// New generates a new UUIDv7 based on the current timestamp.
//
// Layout: 48 bits of Unix milliseconds, 4 version bits (0111), 12 random
// bits, 2 variant bits (10), 62 random bits.
func New() string {
	var id [16]byte

	binary.BigEndian.PutUint64(id[0:8], uint64(time.Now().UnixMilli())<<16)

	if _, err := rand.Read(id[6:]); err != nil {
		return googleuuid.New().String()
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return googleuuid.UUID(id).String()
}

// NewTemporary returns an ID for a record that has not been persisted yet.
func NewTemporary() string {
	return TemporaryPrefix + googleuuid.NewString()
}

// IsTemporary reports whether id must be replaced by a permanent ID on save.
// Anything that is not a well-formed UUID counts as temporary.
func IsTemporary(id string) bool {
	return strings.HasPrefix(id, TemporaryPrefix) || !IsValid(id)
}

// Parse validates and normalizes a UUID string
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
