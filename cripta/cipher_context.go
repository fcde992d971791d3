package cripta

import (
	"bytes"
	"fmt"
	"os"
)

// CipherContext связывает ключ, режим дополнения и кодек ECB и предоставляет
// шифрование буферов и файлов целиком. Расписание ключей строится один раз
// при установке ключа и затем только читается.
type CipherContext struct {
	cipher      *RijndaelCipher
	key         []uint8
	keySizeBits int
	paddingMode PaddingMode
	parallel    bool
}

func NewCipherContext(
	key []uint8,
	keySizeBits int,
	paddingMode PaddingMode,
	parallel bool,
) (*CipherContext, error) {

	cipher, err := NewRijndaelCipher(keySizeBits)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	ctx := &CipherContext{
		cipher:      cipher,
		keySizeBits: keySizeBits,
		paddingMode: paddingMode,
		parallel:    parallel,
	}

	err = ctx.SetKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to set key: %w", err)
	}

	return ctx, nil
}

func (ctx *CipherContext) codec() *BlockCodec {
	return NewBlockCodec(ctx.cipher.Schedule(), ctx.parallel)
}

// Encrypt дополняет данные и шифрует их в режиме ECB
func (ctx *CipherContext) Encrypt(plaintext []uint8) ([]uint8, error) {
	padded, err := ApplyPadding(plaintext, ctx.paddingMode)
	if err != nil {
		return nil, fmt.Errorf("padding failed: %w", err)
	}

	return ctx.codec().Encrypt(padded), nil
}

// Decrypt расшифровывает данные и снимает дополнение
func (ctx *CipherContext) Decrypt(ciphertext []uint8) ([]uint8, error) {
	plaintext, err := ctx.codec().Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}

	return RemovePadding(plaintext, ctx.paddingMode)
}

// DecryptWithLength расшифровывает данные и возвращает ровно length байт
// открытого текста. Для нулевого дополнения это единственный способ
// восстановить исходную длину; length должна попадать в последний блок.
func (ctx *CipherContext) DecryptWithLength(ciphertext []uint8, length int) ([]uint8, error) {
	plaintext, err := ctx.Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}

	switch ctx.paddingMode {
	case PaddingModeZeros:
		if length < 0 || (length+BlockSize-1)/BlockSize*BlockSize != len(plaintext) {
			return nil, fmt.Errorf("%w: %d does not fit %d decrypted bytes",
				ErrInvalidPlaintextLength, length, len(plaintext))
		}
		return plaintext[:length], nil

	default:
		if length != len(plaintext) {
			return nil, fmt.Errorf("%w: want %d, padding says %d",
				ErrInvalidPlaintextLength, length, len(plaintext))
		}
		return plaintext, nil
	}
}

func (ctx *CipherContext) EncryptFile(inputPath string, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	log.Debugf("Encrypting %s (%d bytes) with AES-%d, padding=%v, "+
		"parallel=%v", inputPath, len(data), ctx.keySizeBits,
		ctx.paddingMode, ctx.parallel)

	encrypted, err := ctx.Encrypt(data)
	if err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}

	err = os.WriteFile(outputPath, encrypted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Infof("Encrypted %s -> %s (%d -> %d bytes)", inputPath,
		outputPath, len(data), len(encrypted))

	return nil
}

func (ctx *CipherContext) DecryptFile(inputPath string, outputPath string) error {
	return ctx.decryptFile(inputPath, outputPath, ctx.Decrypt)
}

// DecryptFileWithLength расшифровывает файл, обрезая результат до length байт
func (ctx *CipherContext) DecryptFileWithLength(inputPath string, outputPath string,
	length int) error {

	return ctx.decryptFile(inputPath, outputPath, func(data []uint8) ([]uint8, error) {
		return ctx.DecryptWithLength(data, length)
	})
}

func (ctx *CipherContext) decryptFile(inputPath string, outputPath string,
	decrypt func([]uint8) ([]uint8, error)) error {

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	log.Debugf("Decrypting %s (%d bytes) with AES-%d, padding=%v, "+
		"parallel=%v", inputPath, len(data), ctx.keySizeBits,
		ctx.paddingMode, ctx.parallel)

	decrypted, err := decrypt(data)
	if err != nil {
		return fmt.Errorf("decryption failed: %w", err)
	}

	err = os.WriteFile(outputPath, decrypted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Infof("Decrypted %s -> %s (%d -> %d bytes)", inputPath,
		outputPath, len(data), len(decrypted))

	return nil
}

func (ctx *CipherContext) SetKey(newKey []uint8) error {
	if err := ctx.cipher.SetKey(newKey); err != nil {
		return err
	}

	ctx.key = bytes.Clone(newKey)
	return nil
}

func (ctx *CipherContext) SetPaddingMode(newPaddingMode PaddingMode) {
	ctx.paddingMode = newPaddingMode
}

func (ctx *CipherContext) SetParallel(parallel bool) {
	ctx.parallel = parallel
}

func (ctx *CipherContext) GetPaddingMode() PaddingMode {
	return ctx.paddingMode
}

func (ctx *CipherContext) GetKeySize() int {
	return ctx.keySizeBits
}

func (ctx *CipherContext) IsParallel() bool {
	return ctx.parallel
}

// Schedule возвращает расписание ключей текущего ключа
func (ctx *CipherContext) Schedule() *KeySchedule {
	return ctx.cipher.Schedule()
}
