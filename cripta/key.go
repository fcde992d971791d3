package cripta

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// GenerateKey генерирует случайный ключ заданного размера в битах
func GenerateKey(keySizeBits int) ([]byte, error) {
	if _, _, err := KeyParams(keySizeBits); err != nil {
		return nil, err
	}

	key := make([]byte, keySizeBits/8)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// ParseKey разбирает ключ, заданный сырыми байтами или hex-строкой.
// Пробельные символы вокруг hex-строки игнорируются. Hex-строка длины,
// соответствующей другому размеру ключа, отклоняется, а не принимается как
// сырые байты.
func ParseKey(data []byte, keySizeBits int) ([]byte, error) {
	if _, _, err := KeyParams(keySizeBits); err != nil {
		return nil, err
	}
	keySize := keySizeBits / 8

	trimmed := bytes.TrimSpace(data)
	if isHexKey(trimmed) {
		if len(trimmed) != keySize*2 {
			return nil, fmt.Errorf("%w: hex key of %d bits given for "+
				"AES-%d", ErrInvalidKeyFormat, len(trimmed)*4,
				keySizeBits)
		}

		key := make([]byte, keySize)
		if _, err := hex.Decode(key, trimmed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
		}
		return key, nil
	}

	// Сырые байты проверяются до обрезки: они могут содержать пробельные коды
	switch {
	case len(data) == keySize:
		return bytes.Clone(data), nil

	case len(trimmed) == keySize:
		return bytes.Clone(trimmed), nil

	default:
		return nil, fmt.Errorf("%w: AES-%d needs %d raw bytes or %d hex "+
			"chars, got %d bytes", ErrInvalidKeyFormat, keySizeBits,
			keySize, keySize*2, len(trimmed))
	}
}

// isHexKey сообщает, является ли data hex-записью ключа допустимого размера
func isHexKey(data []byte) bool {
	switch len(data) {
	case 32, 48, 64:
	default:
		return false
	}

	for _, c := range data {
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'f'
		isUpper := c >= 'A' && c <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}

// LoadKeyFromFile загружает ключ из файла (сырые байты или hex)
func LoadKeyFromFile(path string, keySizeBits int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrKeyFileNotFound, path)
		}
		return nil, err
	}

	return ParseKey(data, keySizeBits)
}

// SaveKeyToFile сохраняет ключ в файл в виде hex-строки с правами 0600
func SaveKeyToFile(key []byte, path string) error {
	switch len(key) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}

	return os.WriteFile(path, []byte(hex.EncodeToString(key)), 0600)
}
