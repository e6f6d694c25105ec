// Package utils provides general-purpose helpers used across the client:
// the resty HTTP client wrapper, identifier generation, Keccak-256 hashing,
// token unit conversion and address formatting.
package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

// keccakPool holds reusable legacy Keccak-256 hashers, the variant used by
// Ethereum for addresses and transaction hashes.
var keccakPool = sync.Pool{
	New: func() any {
		return sha3.NewLegacyKeccak256()
	},
}

// Keccak256 returns the Keccak-256 digest of the concatenated parts.
func Keccak256(parts ...[]byte) []byte {
	h := keccakPool.Get().(hash.Hash)
	h.Reset()

	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)

	h.Reset()
	keccakPool.Put(h)

	return sum
}

// Keccak256Hex returns the 0x-prefixed hex Keccak-256 digest of the parts.
func Keccak256Hex(parts ...[]byte) string {
	return "0x" + hex.EncodeToString(Keccak256(parts...))
}

// DeriveAddress returns a 20-byte address built from the last bytes of the
// Keccak-256 digest of the parts, hex encoded with a 0x prefix.
func DeriveAddress(parts ...[]byte) string {
	sum := Keccak256(parts...)
	return "0x" + hex.EncodeToString(sum[12:])
}
