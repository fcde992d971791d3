package cripta

// SubBytes применяет S-бокс к каждому байту состояния
func (b *Block) SubBytes() {
	for i := range b {
		b[i] = Substitute(b[i])
	}
}

// InvSubBytes применяет обратный S-бокс
func (b *Block) InvSubBytes() {
	for i := range b {
		b[i] = InvSubstitute(b[i])
	}
}

// ShiftRows циклически сдвигает строку r влево на r позиций
func (b *Block) ShiftRows() {
	for row := 1; row < 4; row++ {
		r := b.Row(row)
		var shifted [4]byte
		for col := 0; col < Nb; col++ {
			shifted[col] = r[(col+row)%Nb]
		}
		b.SetRow(row, shifted)
	}
}

// InvShiftRows циклически сдвигает строку r вправо на r позиций
func (b *Block) InvShiftRows() {
	for row := 1; row < 4; row++ {
		r := b.Row(row)
		var shifted [4]byte
		for col := 0; col < Nb; col++ {
			shifted[col] = r[(col+Nb-row)%Nb]
		}
		b.SetRow(row, shifted)
	}
}

// MixColumns умножает каждый столбец на матрицу
//
//	02 03 01 01
//	01 02 03 01
//	01 01 02 03
//	03 01 01 02
func (b *Block) MixColumns() {
	for col := 0; col < Nb; col++ {
		s := b.Column(col)

		b.SetColumn(col, [4]byte{
			gf.Multiply(0x02, s[0]) ^ gf.Multiply(0x03, s[1]) ^ s[2] ^ s[3],
			s[0] ^ gf.Multiply(0x02, s[1]) ^ gf.Multiply(0x03, s[2]) ^ s[3],
			s[0] ^ s[1] ^ gf.Multiply(0x02, s[2]) ^ gf.Multiply(0x03, s[3]),
			gf.Multiply(0x03, s[0]) ^ s[1] ^ s[2] ^ gf.Multiply(0x02, s[3]),
		})
	}
}

// InvMixColumns умножает каждый столбец на обратную матрицу
//
//	0e 0b 0d 09
//	09 0e 0b 0d
//	0d 09 0e 0b
//	0b 0d 09 0e
func (b *Block) InvMixColumns() {
	for col := 0; col < Nb; col++ {
		s := b.Column(col)

		b.SetColumn(col, [4]byte{
			gf.Multiply(0x0e, s[0]) ^ gf.Multiply(0x0b, s[1]) ^
				gf.Multiply(0x0d, s[2]) ^ gf.Multiply(0x09, s[3]),
			gf.Multiply(0x09, s[0]) ^ gf.Multiply(0x0e, s[1]) ^
				gf.Multiply(0x0b, s[2]) ^ gf.Multiply(0x0d, s[3]),
			gf.Multiply(0x0d, s[0]) ^ gf.Multiply(0x09, s[1]) ^
				gf.Multiply(0x0e, s[2]) ^ gf.Multiply(0x0b, s[3]),
			gf.Multiply(0x0b, s[0]) ^ gf.Multiply(0x0d, s[1]) ^
				gf.Multiply(0x09, s[2]) ^ gf.Multiply(0x0e, s[3]),
		})
	}
}

// AddRoundKey добавляет раундовый ключ. Состояние индексируется как
// [строка][столбец], ключ как [слово][байт], поэтому state[r][c] ^= key[c][r]:
// слово c ключа ложится на столбец c состояния.
func (b *Block) AddRoundKey(roundKey *Block) {
	for col := 0; col < Nb; col++ {
		word := roundKey.Column(col)
		for row := 0; row < 4; row++ {
			b.Set(row, col, b.At(row, col)^word[row])
		}
	}
}

// RijndaelRoundFunction реализует средний раунд шифрования
type RijndaelRoundFunction struct{}

// Apply применяет раундовую функцию
func (rrf *RijndaelRoundFunction) Apply(state *Block, roundKey *Block) {
	state.SubBytes()
	state.ShiftRows()
	state.MixColumns()
	state.AddRoundKey(roundKey)
}

// RijndaelInvRoundFunction реализует средний раунд расшифрования.
// Ключ добавляется до InvMixColumns, как в прямом обратном шифре FIPS-197.
type RijndaelInvRoundFunction struct{}

// Apply применяет обратную раундовую функцию
func (rrf *RijndaelInvRoundFunction) Apply(state *Block, roundKey *Block) {
	state.InvShiftRows()
	state.InvSubBytes()
	state.AddRoundKey(roundKey)
	state.InvMixColumns()
}
