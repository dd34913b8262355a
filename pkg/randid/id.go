// Package randid generates short random identifiers suitable for
// correlating in-process objects. IDs are lowercase alphanumeric and
// are not guessable, but make no cryptographic uniqueness claims.
package randid

import (
	"crypto/rand"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random identifier of the given length drawn from
// [a-z0-9]. A non-positive length returns the empty string.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	// rand.Read never returns an error on supported platforms; it panics
	// internally if the system source is unavailable.
	_, _ = rand.Read(buf)

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf)
}
