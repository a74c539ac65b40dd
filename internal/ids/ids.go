package ids

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Generator returns a new globally unique document identifier.
type Generator func() string

const (
	FormatUUID = "uuid"
	FormatULID = "ulid"
)

// NewUUID returns a random (v4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}

// NewULID returns a lexically sortable ULID string.
func NewULID() string {
	return ulid.Make().String()
}

// ForFormat maps a configured id format to its generator. An empty format
// selects UUIDs.
func ForFormat(format string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatUUID:
		return NewUUID, nil
	case FormatULID:
		return NewULID, nil
	}
	return nil, fmt.Errorf("unknown id format %q", format)
}
