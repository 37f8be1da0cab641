package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateUUID returns a random 128-bit identifier as a 32-char hex string.
// The correlation middleware uses it when the uuid library cannot produce
// an ID; a timestamp token is the last resort when entropy is unavailable.
func GenerateUUID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
