package cripta

import "fmt"

// MaxRounds количество раундов для самого длинного (256-битного) ключа
const MaxRounds = 14

// KeySchedule хранит все раундовые ключи одним плоским массивом фиксированной
// формы. Раундовый ключ i занимает keys[i], слово w развернутого ключа
// является столбцом w%4 ключа keys[w/4]. После построения расписание только
// читается, поэтому его можно разделять между горутинами.
type KeySchedule struct {
	nk     int
	rounds int
	keys   [MaxRounds + 1]Block
}

// KeyParams возвращает Nk и Nr для размера ключа в битах
func KeyParams(keySizeBits int) (nk, nr int, err error) {
	switch keySizeBits {
	case 128:
		return 4, 10, nil
	case 192:
		return 6, 12, nil
	case 256:
		return 8, 14, nil
	default:
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidKeySize, keySizeBits)
	}
}

// BuildKeySchedule разворачивает ключ в Nr+1 раундовых ключей (FIPS-197, 5.2).
// Размер ключа проверяется раньше длины.
func BuildKeySchedule(key []byte, keySizeBits int) (*KeySchedule, error) {
	nk, nr, err := KeyParams(keySizeBits)
	if err != nil {
		return nil, err
	}
	if len(key) != keySizeBits/8 {
		return nil, fmt.Errorf("%w: need %d bytes for AES-%d, got %d",
			ErrInvalidKeyLength, keySizeBits/8, keySizeBits, len(key))
	}

	ks := &KeySchedule{
		nk:     nk,
		rounds: nr,
	}

	// Первые Nk слов копируются из ключа без изменений
	for i := 0; i < nk; i++ {
		var w [4]byte
		copy(w[:], key[4*i:4*i+4])
		ks.setWord(i, w)
	}

	for i := nk; i < Nb*(nr+1); i++ {
		temp := ks.Word(i - 1)

		if i%nk == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= roundConstant(i / nk)
		} else if nk > 6 && i%nk == 4 {
			// Дополнительная замена только для 256-битных ключей
			temp = subWord(temp)
		}

		prev := ks.Word(i - nk)
		for j := range temp {
			temp[j] ^= prev[j]
		}
		ks.setWord(i, temp)
	}

	return ks, nil
}

// Rounds возвращает количество раундов Nr
func (ks *KeySchedule) Rounds() int {
	return ks.rounds
}

// Nk возвращает длину ключа в словах
func (ks *KeySchedule) Nk() int {
	return ks.nk
}

// RoundKey возвращает копию раундового ключа round
func (ks *KeySchedule) RoundKey(round int) Block {
	return ks.keys[round]
}

// Word возвращает слово i развернутого ключа
func (ks *KeySchedule) Word(i int) [4]byte {
	return ks.keys[i/Nb].Column(i % Nb)
}

func (ks *KeySchedule) setWord(i int, w [4]byte) {
	ks.keys[i/Nb].SetColumn(i%Nb, w)
}

// roundKey отдает раундовый ключ без копирования, только для чтения
func (ks *KeySchedule) roundKey(round int) *Block {
	return &ks.keys[round]
}

// rotWord выполняет циклический сдвиг слова влево на один байт
func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// subWord применяет S-бокс к каждому байту слова
func subWord(w [4]byte) [4]byte {
	for j := range w {
		w[j] = Substitute(w[j])
	}
	return w
}

// roundConstant возвращает старший байт константы раунда RC(round)
func roundConstant(round int) byte {
	rcon := byte(1)
	for i := 1; i < round; i++ {
		rcon = gf.Multiply(rcon, 0x02)
	}
	return rcon
}

// RijndaelKeySchedule реализует IKeySchedule для фиксированного размера ключа
type RijndaelKeySchedule struct {
	keySizeBits int
}

// NewRijndaelKeySchedule создает расписание ключей для AES-128/192/256
func NewRijndaelKeySchedule(keySizeBits int) (*RijndaelKeySchedule, error) {
	if _, _, err := KeyParams(keySizeBits); err != nil {
		return nil, err
	}

	return &RijndaelKeySchedule{
		keySizeBits: keySizeBits,
	}, nil
}

// GenerateRoundKeys генерирует раундовые ключи
func (rks *RijndaelKeySchedule) GenerateRoundKeys(masterKey []byte) (*KeySchedule, error) {
	return BuildKeySchedule(masterKey, rks.keySizeBits)
}
