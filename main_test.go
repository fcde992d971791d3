package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/nPaBwaYT/rijndael/cripta"
	"github.com/stretchr/testify/require"
)

func testGlobals() *globalOptions {
	global := newGlobalOptions()
	global.DebugLevel = "off"
	return global
}

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestKeygenEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	global := testGlobals()

	keyFile := filepath.Join(dir, "aes.key")
	keygen := newKeygenCommand(global)
	keygen.out = io.Discard
	keygen.KeySize = 192
	require.NoError(t, keygen.Execute([]string{keyFile}))

	// Повторная генерация без --overwrite запрещена
	require.Error(t, keygen.Execute([]string{keyFile}))
	keygen.Overwrite = true
	require.NoError(t, keygen.Execute([]string{keyFile}))

	data := []byte("Тестовое сообщение для проверки утилиты AES\n")
	input := writeTestFile(t, dir, "plain.txt", data)
	encrypted := filepath.Join(dir, "plain.enc")
	decrypted := filepath.Join(dir, "plain.dec")

	for _, padding := range []string{"pkcs7", "ansi", "iso"} {
		t.Run(padding, func(t *testing.T) {
			var summary bytes.Buffer

			enc := newEncryptCommand(global)
			enc.out = &summary
			enc.KeyFile = keyFile
			enc.KeySize = 192
			enc.Padding = padding
			enc.Parallel = true
			require.NoError(t, enc.Execute([]string{input, encrypted}))
			require.Contains(t, summary.String(), "AES-192 ECB")

			dec := newDecryptCommand(global)
			dec.out = io.Discard
			dec.KeyFile = keyFile
			dec.KeySize = 192
			dec.Padding = padding
			require.NoError(t, dec.Execute([]string{encrypted, decrypted}))

			got, err := os.ReadFile(decrypted)
			require.NoError(t, err)
			require.Equal(t, data, got)
		})
	}
}

func TestZeroPaddingWithLength(t *testing.T) {
	dir := t.TempDir()
	global := testGlobals()

	key := hex.EncodeToString(bytes.Repeat([]byte{0x42}, 16))
	data := []byte("trailing zeros\x00\x00\x00")
	input := writeTestFile(t, dir, "plain.bin", data)
	encrypted := filepath.Join(dir, "plain.enc")
	decrypted := filepath.Join(dir, "plain.dec")

	enc := newEncryptCommand(global)
	enc.out = io.Discard
	enc.Key = key
	require.NoError(t, enc.Execute([]string{input, encrypted}))

	info, err := os.Stat(encrypted)
	require.NoError(t, err)
	require.EqualValues(t, 2*cripta.BlockSize, info.Size())

	// Без --length хвостовые нули сохраняются
	dec := newDecryptCommand(global)
	dec.out = io.Discard
	dec.Key = key
	require.NoError(t, dec.Execute([]string{encrypted, decrypted}))
	got, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	require.Len(t, got, 2*cripta.BlockSize)
	require.Equal(t, data, got[:len(data)])

	dec.Length = len(data)
	require.NoError(t, dec.Execute([]string{encrypted, decrypted}))
	got, err = os.ReadFile(decrypted)
	require.NoError(t, err)
	require.Equal(t, data, got)

	dec.Length = 3
	err = dec.Execute([]string{encrypted, decrypted})
	require.ErrorIs(t, err, cripta.ErrInvalidPlaintextLength)

	dec.Length = len(data)
	dec.Padding = "pkcs7"
	require.ErrorContains(t, dec.Execute([]string{encrypted, decrypted}),
		"--length")
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	global := testGlobals()
	key := strings.Repeat("ab", 16)

	enc := newEncryptCommand(global)
	enc.out = io.Discard
	enc.Key = key

	err := enc.Execute([]string{filepath.Join(dir, "missing"), "out"})
	require.ErrorContains(t, err, "does not exist")

	require.Error(t, enc.Execute([]string{"only-one"}))

	input := writeTestFile(t, dir, "in.txt", []byte("data"))
	output := filepath.Join(dir, "out.enc")

	enc.KeyFile = filepath.Join(dir, "aes.key")
	require.ErrorContains(t, enc.Execute([]string{input, output}),
		"mutually exclusive")

	enc.KeyFile = ""
	enc.Key = "abcd"
	require.ErrorIs(t, enc.Execute([]string{input, output}),
		cripta.ErrInvalidKeyFormat)

	enc.Key = ""
	enc.KeyFile = filepath.Join(dir, "aes.key")
	require.ErrorIs(t, enc.Execute([]string{input, output}),
		cripta.ErrKeyFileNotFound)

	// Шифртекст не кратен блоку
	dec := newDecryptCommand(global)
	dec.out = io.Discard
	dec.Key = key
	require.ErrorIs(t, dec.Execute([]string{input, output}),
		cripta.ErrInvalidCiphertextLength)

	global.DebugLevel = "verbose"
	require.ErrorContains(t, dec.Execute([]string{input, output}),
		"invalid debug level")
}

func TestParserWiring(t *testing.T) {
	global := newGlobalOptions()
	parser := flags.NewParser(global, flags.HelpFlag|flags.PassDoubleDash)

	enc := newEncryptCommand(global)
	require.NoError(t, enc.Register(parser))
	require.NoError(t, newDecryptCommand(global).Register(parser))
	require.NoError(t, newKeygenCommand(global).Register(parser))

	// Недопустимый размер ключа отсекается до выполнения команды
	_, err := parser.ParseArgs([]string{
		"--debuglevel=off", "encrypt", "--key-size=512", "a", "b",
	})
	require.Error(t, err)
	require.Equal(t, "off", global.DebugLevel)

	_, err = parser.ParseArgs([]string{"keygen", "--key-size=100", "k"})
	require.Error(t, err)

	for _, name := range []string{"encrypt", "decrypt", "keygen"} {
		require.NotNil(t, parser.Find(name), name)
	}
	require.Equal(t, defaultKeySize, enc.KeySize)
	require.Equal(t, defaultPadding, enc.Padding)
}

func TestFileLogging(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")

	global := newGlobalOptions()
	global.LogDir = logDir
	global.DebugLevel = "debug"

	cleanup, err := initLogging(global)
	require.NoError(t, err)
	log.Infof("file logging test")
	cleanup()

	content, err := os.ReadFile(filepath.Join(logDir, defaultLogFilename))
	require.NoError(t, err)
	require.Contains(t, string(content), "file logging test")
	require.Contains(t, string(content), Subsystem)

	global.MaxLogFileSize = 0
	_, err = initLogging(global)
	require.Error(t, err)
}
