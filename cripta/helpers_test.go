package cripta

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustHex декодирует hex-строку или валит тест
func mustHex(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// mustBlock декодирует hex-строку из 32 символов в Block
func mustBlock(t testing.TB, s string) Block {
	t.Helper()

	b, err := LoadBlock(mustHex(t, s))
	require.NoError(t, err)
	return b
}

// sequentialKey возвращает ключ 00 01 02 ... из приложения C FIPS-197
func sequentialKey(size int) []byte {
	key := make([]byte, size)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}
