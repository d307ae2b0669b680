package components

import (
	"strings"
	"sync"
)

const maxCachedPad = 200

// paddingCache holds strings of 0..maxCachedPad spaces so render loops do
// not allocate on every frame.
var (
	paddingCache [maxCachedPad + 1]string
	paddingOnce  sync.Once
)

func initPaddingCache() {
	full := strings.Repeat(" ", maxCachedPad)
	for i := range paddingCache {
		paddingCache[i] = full[:i]
	}
}

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= maxCachedPad {
		paddingOnce.Do(initPaddingCache)
		return paddingCache[n]
	}
	return strings.Repeat(" ", n)
}
