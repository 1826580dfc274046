package storage

import (
	"github.com/zeebo/blake3"
)

// Key is the content address of a literal.
type Key [32]byte

// KeyOf returns the BLAKE3 digest of the datatype, language tag and lexical form of v.
// The boxed value does not contribute, the lexical form identifies it.
func KeyOf(v LiteralView) Key {
	h := blake3.New()
	for _, part := range []string{v.Datatype, v.Lang, v.Lexical} {
		_, _ = h.WriteString(part)
		_, _ = h.Write([]byte{0})
	}
	var k Key
	h.Sum(k[:0])
	return k
}
