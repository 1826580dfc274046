package literal

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
)

func (l Literal) hash(h hash.Hash) Literal {
	s, ok := l.simpleArg()
	if !ok {
		return Literal{}
	}
	h.Write([]byte(s))
	return l.options().simple(hex.EncodeToString(h.Sum(nil)))
}

// MD5 returns the hex encoded MD5 checksum of an xsd:string literal.
func (l Literal) MD5() Literal {
	return l.hash(md5.New())
}

func (l Literal) SHA1() Literal {
	return l.hash(sha1.New())
}

func (l Literal) SHA256() Literal {
	return l.hash(sha256.New())
}

func (l Literal) SHA384() Literal {
	return l.hash(sha512.New384())
}

func (l Literal) SHA512() Literal {
	return l.hash(sha512.New())
}
