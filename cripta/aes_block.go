package cripta

import "fmt"

const (
	// BlockSize размер блока AES в байтах
	BlockSize = 16

	// Nb количество 32-битных слов в блоке
	Nb = 4
)

// Block представляет состояние AES: матрица 4×4 байта, хранящаяся по столбцам.
// Байт строки r и столбца c находится по смещению 4·c+r, что совпадает с
// порядком байтов во входном и выходном потоке.
type Block [BlockSize]byte

// LoadBlock копирует 16 байт из src в новый блок
func LoadBlock(src []byte) (Block, error) {
	var b Block
	if len(src) != BlockSize {
		return b, fmt.Errorf("%w: got %d", ErrInvalidBlockSize, len(src))
	}
	copy(b[:], src)
	return b, nil
}

// At возвращает байт в строке row и столбце col
func (b *Block) At(row, col int) byte {
	return b[4*col+row]
}

// Set записывает байт в строку row и столбец col
func (b *Block) Set(row, col int, v byte) {
	b[4*col+row] = v
}

// Column возвращает столбец col
func (b *Block) Column(col int) [4]byte {
	var c [4]byte
	copy(c[:], b[4*col:4*col+4])
	return c
}

// SetColumn заменяет столбец col
func (b *Block) SetColumn(col int, c [4]byte) {
	copy(b[4*col:4*col+4], c[:])
}

// Row возвращает строку row
func (b *Block) Row(row int) [4]byte {
	var r [4]byte
	for col := 0; col < Nb; col++ {
		r[col] = b.At(row, col)
	}
	return r
}

// SetRow заменяет строку row
func (b *Block) SetRow(row int, r [4]byte) {
	for col := 0; col < Nb; col++ {
		b.Set(row, col, r[col])
	}
}
