package pkguid

import "github.com/google/uuid"

// UUID generates time-ordered UUIDv7 strings, optionally prefixed.
type UUID struct {
	prefix string
}

// NewUUID returns a UUID generator. A non-empty prefix is joined with "-".
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

// Generate returns a new UUID string.
func (u *UUID) Generate() string {
	id := uuid.Must(uuid.NewV7()).String()
	if u.prefix == "" {
		return id
	}
	return u.prefix + "-" + id
}
