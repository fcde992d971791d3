package cripta

import (
	"crypto/rand"
	"fmt"
	"strings"
)

type PaddingMode int

const (
	// PaddingModeZeros дополняет последний неполный блок нулями. Длина
	// исходных данных при этом теряется, поэтому при расшифровании ничего не
	// удаляется: точную длину должен знать вызывающий (см. DecryptWithLength).
	PaddingModeZeros PaddingMode = iota
	PaddingModeANSIX923
	PaddingModePKCS7
	PaddingModeISO10126
)

// String возвращает короткое имя режима, принятое в командной строке
func (m PaddingMode) String() string {
	switch m {
	case PaddingModeZeros:
		return "zeros"
	case PaddingModeANSIX923:
		return "ansi"
	case PaddingModePKCS7:
		return "pkcs7"
	case PaddingModeISO10126:
		return "iso"
	default:
		return fmt.Sprintf("PaddingMode(%d)", int(m))
	}
}

// ParsePaddingMode преобразует строку в PaddingMode
func ParsePaddingMode(padding string) (PaddingMode, error) {
	switch strings.ToLower(padding) {
	case "zeros", "zero":
		return PaddingModeZeros, nil
	case "pkcs7":
		return PaddingModePKCS7, nil
	case "ansi", "ansix923":
		return PaddingModeANSIX923, nil
	case "iso", "iso10126":
		return PaddingModeISO10126, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPaddingMode, padding)
	}
}

// ApplyPadding дополняет данные до длины, кратной размеру блока. Для PKCS7,
// ANSI X.923 и ISO 10126 выровненный вход получает целый блок дополнения,
// чтобы длина дополнения всегда читалась из последнего байта.
func ApplyPadding(data []byte, mode PaddingMode) ([]byte, error) {
	if mode == PaddingModeZeros {
		// Нули добавляет сам BlockCodec
		return data, nil
	}

	dataLength := len(data)
	paddingLength := BlockSize - dataLength%BlockSize

	padded := make([]byte, dataLength+paddingLength)
	copy(padded, data)

	switch mode {
	case PaddingModePKCS7:
		for i := dataLength; i < len(padded); i++ {
			padded[i] = byte(paddingLength)
		}

	case PaddingModeANSIX923:
		padded[len(padded)-1] = byte(paddingLength)

	case PaddingModeISO10126:
		if paddingLength > 1 {
			if _, err := rand.Read(padded[dataLength : len(padded)-1]); err != nil {
				return nil, fmt.Errorf("failed to generate random bytes: %w", err)
			}
		}
		padded[len(padded)-1] = byte(paddingLength)

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPaddingMode, mode)
	}

	return padded, nil
}

// RemovePadding снимает дополнение, добавленное ApplyPadding. Испорченное
// дополнение дает ErrInvalidPadding. Для PaddingModeZeros данные
// возвращаются без изменений: хвостовые нули могут быть частью текста.
func RemovePadding(data []byte, mode PaddingMode) ([]byte, error) {
	if mode == PaddingModeZeros {
		return data, nil
	}

	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple "+
			"of %d", ErrInvalidPadding, len(data), BlockSize)
	}

	paddingLength := int(data[len(data)-1])
	if paddingLength == 0 || paddingLength > BlockSize {
		return nil, fmt.Errorf("%w: length byte %d", ErrInvalidPadding,
			paddingLength)
	}

	tail := data[len(data)-paddingLength : len(data)-1]

	switch mode {
	case PaddingModePKCS7:
		for _, b := range tail {
			if b != byte(paddingLength) {
				return nil, fmt.Errorf("%w: pkcs7 filler byte 0x%02x",
					ErrInvalidPadding, b)
			}
		}

	case PaddingModeANSIX923:
		for _, b := range tail {
			if b != 0 {
				return nil, fmt.Errorf("%w: ansi x.923 filler byte "+
					"0x%02x", ErrInvalidPadding, b)
			}
		}

	case PaddingModeISO10126:
		// Заполнитель случайный, проверяется только длина

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPaddingMode, mode)
	}

	return data[:len(data)-paddingLength], nil
}
