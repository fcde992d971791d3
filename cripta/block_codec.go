package cripta

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Encrypt шифрует буфер произвольной длины в режиме ECB. Последний неполный
// блок дополняется нулями справа, длина результата 16·⌈len/16⌉.
//
// ECB шифрует блоки независимо и без вектора инициализации: одинаковые блоки
// открытого текста дают одинаковые блоки шифртекста. Режим оставлен для
// совместимости и не рекомендуется для новых данных.
func Encrypt(plaintext []byte, ks *KeySchedule) []byte {
	return NewBlockCodec(ks, false).Encrypt(plaintext)
}

// Decrypt расшифровывает буфер, зашифрованный Encrypt. Длина входа должна
// быть кратна 16, иначе возвращается ErrInvalidCiphertextLength. Дополнение
// не удаляется: длина результата равна длине входа.
func Decrypt(ciphertext []byte, ks *KeySchedule) ([]byte, error) {
	return NewBlockCodec(ks, false).Decrypt(ciphertext)
}

// BlockCodec делит буфер на 16-байтные блоки и прогоняет каждый через шифр.
// Блоки независимы, поэтому при parallel они обрабатываются несколькими
// горутинами; каждая владеет своим состоянием и только читает расписание.
type BlockCodec struct {
	schedule *KeySchedule
	parallel bool
	workers  int
}

// NewBlockCodec создает кодек поверх готового расписания ключей
func NewBlockCodec(ks *KeySchedule, parallel bool) *BlockCodec {
	return &BlockCodec{
		schedule: ks,
		parallel: parallel,
		workers:  runtime.NumCPU(),
	}
}

// Encrypt шифрует буфер, см. пакетную функцию Encrypt
func (bc *BlockCodec) Encrypt(plaintext []byte) []byte {
	numBlocks := (len(plaintext) + BlockSize - 1) / BlockSize
	ciphertext := make([]byte, numBlocks*BlockSize)

	bc.forEachBlock(numBlocks, func(i int) {
		start := i * BlockSize
		end := min(start+BlockSize, len(plaintext))

		// Хвост последнего блока остается нулевым
		var state Block
		copy(state[:], plaintext[start:end])

		EncryptBlock(&state, bc.schedule)
		copy(ciphertext[start:], state[:])
	})

	return ciphertext
}

// Decrypt расшифровывает буфер, см. пакетную функцию Decrypt
func (bc *BlockCodec) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidCiphertextLength,
			len(ciphertext))
	}

	numBlocks := len(ciphertext) / BlockSize
	plaintext := make([]byte, len(ciphertext))

	bc.forEachBlock(numBlocks, func(i int) {
		start := i * BlockSize

		var state Block
		copy(state[:], ciphertext[start:start+BlockSize])

		DecryptBlock(&state, bc.schedule)
		copy(plaintext[start:], state[:])
	})

	return plaintext, nil
}

// forEachBlock вызывает process для блоков 0..numBlocks-1. В параллельном
// режиме блоки делятся на непрерывные диапазоны по числу рабочих горутин.
func (bc *BlockCodec) forEachBlock(numBlocks int, process func(i int)) {
	if !bc.parallel || bc.workers < 2 || numBlocks < 2 {
		for i := 0; i < numBlocks; i++ {
			process(i)
		}
		return
	}

	numThreads := min(bc.workers, numBlocks)
	blocksPerThread := (numBlocks + numThreads - 1) / numThreads

	var eg errgroup.Group
	for startBlock := 0; startBlock < numBlocks; startBlock += blocksPerThread {
		startBlock := startBlock
		endBlock := min(startBlock+blocksPerThread, numBlocks)

		eg.Go(func() error {
			for i := startBlock; i < endBlock; i++ {
				process(i)
			}
			return nil
		})
	}

	// Обработка блока не возвращает ошибок
	_ = eg.Wait()
}
