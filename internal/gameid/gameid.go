// Package gameid names simulated games. IDs derived from a seed are stable
// across runs so an exported game can be replayed from its seed.
package gameid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Namespace scopes every seeded game ID
var Namespace = uuid.MustParse("6f1c2d7a-5e0b-4c8e-9a57-f7a1b2c3d4e5")

// New returns the ID of game n in a run seeded with seed. The same pair
// always yields the same ID.
func New(seed int64, n int) string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(seed))
	binary.BigEndian.PutUint64(buf[8:], uint64(n))
	return uuid.NewSHA1(Namespace, buf[:]).String()
}

// Generate returns a time-ordered ID for unseeded games
func Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Validate checks that id is a canonical UUID produced by this package
func Validate(id string) error {
	u, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid game ID %q: %w", id, err)
	}
	if u.String() != id {
		return fmt.Errorf("game ID %q is not in canonical form", id)
	}
	switch u.Version() {
	case 4, 5, 7:
		return nil
	default:
		return fmt.Errorf("game ID %q has unexpected version %d", id, u.Version())
	}
}
