package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Hash returns the hex SHA-256 of data. Sprites are identified by the hash
// of their file content, and FileCache shards entries by the hash of the key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// canonical renders the options that change a traced tile. Key colours are
// compared case-insensitively, and the tolerance only counts when a key
// colour is set.
func (o TraceKeyOpts) canonical() string {
	key := strings.ToLower(strings.TrimSpace(o.Key))
	tol := 0.0
	if key != "" {
		tol = o.Tolerance
	}
	return fmt.Sprintf("alpha=%d key=%s tolerance=%s", o.AlphaThreshold, key, strconv.FormatFloat(tol, 'g', -1, 64))
}
