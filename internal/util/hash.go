// Package util holds small helpers shared by the dragonsumm packages.
package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// DocumentID returns a short, stable identifier for text, used to correlate
// log lines about the same document without logging its content.
func DocumentID(text string) string {
	hasher := sha256.New()
	hasher.Write([]byte(text))
	return hex.EncodeToString(hasher.Sum(nil))[:16] // Use first 16 chars of the hash
}
