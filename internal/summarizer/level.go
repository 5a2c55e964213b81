package summarizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/localrivet/dragonsumm/internal/errortypes"
)

// ErrInvalidLevel is returned for a compression level other than strong or weak.
var ErrInvalidLevel = errors.New("invalid compression level")

// Level selects how strongly a text is compressed.
type Level string

const (
	// LevelStrong produces the shorter summary.
	LevelStrong Level = "strong"

	// LevelWeak produces the longer summary.
	LevelWeak Level = "weak"
)

// ParseLevel converts a level name into a Level. Surrounding space and case
// are ignored.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelStrong:
		return LevelStrong, nil
	case LevelWeak:
		return LevelWeak, nil
	}
	return "", errortypes.ValidationError(fmt.Errorf("%w: %q", ErrInvalidLevel, s), "unknown compression level").
		WithField("level", s)
}

// SentenceCount returns the number of sentences the level selects for the
// given strong-level base count.
func (l Level) SentenceCount(base int) int {
	if l == LevelWeak {
		return base * WeakMultiplier
	}
	return base
}
