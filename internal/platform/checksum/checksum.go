// Package checksum computes the stable identifiers shared by one source
// string across every language of a subproject.
package checksum

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dchest/siphash"
)

var key = []byte("Weblate Sip Hash")

var (
	k0 = binary.LittleEndian.Uint64(key[:8])
	k1 = binary.LittleEndian.Uint64(key[8:])
)

// Hash returns the SipHash-2-4 of source followed by context.
func Hash(source, context string) uint64 {
	return siphash.Hash(k0, k1, []byte(source+context))
}

// Unit returns the hex checksum of a (source, context) pair.
func Unit(source, context string) string {
	return FromHash(Hash(source, context))
}

// FromHash renders a hash as 16 lowercase hex characters of its
// little-endian bytes.
func FromHash(h uint64) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], h)
	return hex.EncodeToString(buf[:])
}

// ToHash parses a checksum produced by FromHash.
func ToHash(checksum string) (uint64, error) {
	checksum = strings.ToLower(strings.TrimSpace(checksum))
	if len(checksum) != 16 {
		return 0, fmt.Errorf("checksum %q: want 16 hex characters", checksum)
	}
	raw, err := hex.DecodeString(checksum)
	if err != nil {
		return 0, fmt.Errorf("checksum %q: %w", checksum, err)
	}
	return binary.LittleEndian.Uint64(raw), nil
}

// Valid reports whether value is a well-formed checksum.
func Valid(value string) bool {
	_, err := ToHash(value)
	return err == nil
}
