package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenRoomCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenRoomCode()
		require.Len(t, code, CodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q in %s", c, code)
		}
	}
}

func TestGenRoomCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenRoomCode()] = true
	}
	assert.Greater(t, len(seen), 45, "codes should almost never collide")
}
