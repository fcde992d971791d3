package cripta

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	for _, bits := range []int{128, 192, 256} {
		key, err := GenerateKey(bits)
		require.NoError(t, err)
		require.Len(t, key, bits/8)
	}

	a, err := GenerateKey(128)
	require.NoError(t, err)
	b, err := GenerateKey(128)
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	_, err = GenerateKey(64)
	require.ErrorIs(t, err, ErrInvalidKeySize)
}

func TestParseKey(t *testing.T) {
	raw := sequentialKey(16)

	key, err := ParseKey(raw, 128)
	require.NoError(t, err)
	require.Equal(t, raw, key)

	key, err = ParseKey([]byte("000102030405060708090a0b0c0d0e0f\n"), 128)
	require.NoError(t, err)
	require.Equal(t, raw, key)

	key, err = ParseKey([]byte("  000102030405060708090A0B0C0D0E0F0001020304050607 "), 192)
	require.NoError(t, err)
	require.Equal(t, append(sequentialKey(16), sequentialKey(8)...), key)

	// Сырой ключ из пробельных байтов не обрезается
	spaces := bytes.Repeat([]byte{' '}, 32)
	key, err = ParseKey(spaces, 256)
	require.NoError(t, err)
	require.Equal(t, spaces, key)

	_, err = ParseKey([]byte("zz0102030405060708090a0b0c0d0e0f"), 128)
	require.ErrorIs(t, err, ErrInvalidKeyFormat)

	_, err = ParseKey([]byte("000102030405060708090a0b0c0d0e0f"), 256)
	require.ErrorIs(t, err, ErrInvalidKeyFormat)

	_, err = ParseKey(make([]byte, 20), 128)
	require.ErrorIs(t, err, ErrInvalidKeyFormat)

	_, err = ParseKey(raw, 100)
	require.ErrorIs(t, err, ErrInvalidKeySize)
}

func TestKeyFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aes.key")

	key, err := GenerateKey(256)
	require.NoError(t, err)
	require.NoError(t, SaveKeyToFile(key, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadKeyFromFile(path, 256)
	require.NoError(t, err)
	require.Equal(t, key, loaded)

	_, err = LoadKeyFromFile(path, 128)
	require.ErrorIs(t, err, ErrInvalidKeyFormat)

	// 128-битный hex-ключ не должен читаться как 32 сырых байта AES-256
	short, err := GenerateKey(128)
	require.NoError(t, err)
	shortPath := filepath.Join(dir, "aes128.key")
	require.NoError(t, SaveKeyToFile(short, shortPath))

	_, err = LoadKeyFromFile(shortPath, 256)
	require.ErrorIs(t, err, ErrInvalidKeyFormat)
	_, err = LoadKeyFromFile(shortPath, 192)
	require.ErrorIs(t, err, ErrInvalidKeyFormat)

	loaded, err = LoadKeyFromFile(shortPath, 128)
	require.NoError(t, err)
	require.Equal(t, short, loaded)

	_, err = LoadKeyFromFile(filepath.Join(dir, "missing.key"), 128)
	require.ErrorIs(t, err, ErrKeyFileNotFound)

	require.ErrorIs(t, SaveKeyToFile(make([]byte, 10), path),
		ErrInvalidKeyLength)
}
