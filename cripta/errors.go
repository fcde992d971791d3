package cripta

import "errors"

// Ошибки, возвращаемые пакетом. Места вызова оборачивают их через %w,
// поэтому проверять следует с помощью errors.Is.
var (
	ErrInvalidKeySize          = errors.New("invalid key size: must be 128, 192 or 256 bits")
	ErrInvalidKeyLength        = errors.New("invalid key length: does not match key size")
	ErrInvalidCiphertextLength = errors.New("invalid ciphertext length: must be a multiple of 16 bytes")
	ErrInvalidBlockSize        = errors.New("invalid block size: must be 16 bytes")
	ErrKeyNotSet               = errors.New("key not set, call SetKey first")
	ErrZeroInverse             = errors.New("zero element has no inverse")

	ErrInvalidPadding         = errors.New("invalid padding")
	ErrUnknownPaddingMode     = errors.New("unknown padding mode")
	ErrInvalidPlaintextLength = errors.New("invalid plaintext length")

	ErrKeyFileNotFound  = errors.New("key file not found")
	ErrInvalidKeyFormat = errors.New("invalid key format: must be raw bytes or hex")
)
