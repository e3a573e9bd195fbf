package badger

import (
	"fmt"
)

// Key prefixes for different data types
const (
	resultPrefix     = "searchres"
	checkpointPrefix = "chkpt"
)

// makeResultKey generates a key for the stored result of a key count.
// K is zero-padded so lexicographic iteration order matches K order.
func makeResultKey(k int) []byte {
	return []byte(fmt.Sprintf("%s:%03d", resultPrefix, k))
}

// makeCheckpointKey generates a key for the search checkpoint of a key count.
func makeCheckpointKey(k int) []byte {
	return []byte(fmt.Sprintf("%s:%03d", checkpointPrefix, k))
}
