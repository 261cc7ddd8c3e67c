package utils

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the number of characters in a shareable room code.
const CodeLength = 6

// GenRoomCode returns a random room code: 6 uppercase alphanumerics, about
// 2 billion combinations. Uniqueness against live rooms is the registry's
// job, not this function's.
func GenRoomCode() string {
	b := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range b {
		n, _ := rand.Int(rand.Reader, max)
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b)
}
