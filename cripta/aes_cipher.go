package cripta

import (
	"fmt"
)

// EncryptBlock шифрует блок на месте (FIPS-197, 5.1).
// Раунд 0 только добавляет ключ, последний раунд обходится без MixColumns.
func EncryptBlock(state *Block, ks *KeySchedule) {
	var round RijndaelRoundFunction

	state.AddRoundKey(ks.roundKey(0))

	for r := 1; r < ks.rounds; r++ {
		round.Apply(state, ks.roundKey(r))
	}

	state.SubBytes()
	state.ShiftRows()
	state.AddRoundKey(ks.roundKey(ks.rounds))
}

// DecryptBlock расшифровывает блок на месте (FIPS-197, 5.3).
// В средних раундах AddRoundKey выполняется перед InvMixColumns.
func DecryptBlock(state *Block, ks *KeySchedule) {
	var round RijndaelInvRoundFunction

	state.AddRoundKey(ks.roundKey(ks.rounds))

	for r := ks.rounds - 1; r > 0; r-- {
		round.Apply(state, ks.roundKey(r))
	}

	state.InvShiftRows()
	state.InvSubBytes()
	state.AddRoundKey(ks.roundKey(0))
}

// RijndaelCipher реализует ISymmetricCipher для AES с блоком 128 бит
type RijndaelCipher struct {
	keySchedule IKeySchedule
	keySize     int // в байтах: 16, 24 или 32
	rounds      int
	roundKeys   *KeySchedule
}

var _ ISymmetricCipher = (*RijndaelCipher)(nil)

// NewRijndaelCipher создает новый шифр AES-128, AES-192 или AES-256
func NewRijndaelCipher(keySizeBits int) (*RijndaelCipher, error) {
	_, rounds, err := KeyParams(keySizeBits)
	if err != nil {
		return nil, err
	}

	keySchedule, err := NewRijndaelKeySchedule(keySizeBits)
	if err != nil {
		return nil, err
	}

	return &RijndaelCipher{
		keySchedule: keySchedule,
		keySize:     keySizeBits / 8,
		rounds:      rounds,
	}, nil
}

// SetKey устанавливает ключ шифрования
func (rc *RijndaelCipher) SetKey(key []byte) error {
	roundKeys, err := rc.keySchedule.GenerateRoundKeys(key)
	if err != nil {
		return fmt.Errorf("failed to generate round keys: %w", err)
	}

	rc.roundKeys = roundKeys
	return nil
}

// EncryptBlock шифрует блок данных
func (rc *RijndaelCipher) EncryptBlock(plainBlock []byte) ([]byte, error) {
	if rc.roundKeys == nil {
		return nil, ErrKeyNotSet
	}

	state, err := LoadBlock(plainBlock)
	if err != nil {
		return nil, err
	}

	EncryptBlock(&state, rc.roundKeys)

	return state[:], nil
}

// DecryptBlock расшифровывает блок данных
func (rc *RijndaelCipher) DecryptBlock(cipherBlock []byte) ([]byte, error) {
	if rc.roundKeys == nil {
		return nil, ErrKeyNotSet
	}

	state, err := LoadBlock(cipherBlock)
	if err != nil {
		return nil, err
	}

	DecryptBlock(&state, rc.roundKeys)

	return state[:], nil
}

// Schedule возвращает текущее расписание ключей или nil, если ключ не задан
func (rc *RijndaelCipher) Schedule() *KeySchedule {
	return rc.roundKeys
}

// GetBlockSize возвращает размер блока
func (rc *RijndaelCipher) GetBlockSize() int {
	return BlockSize
}

// GetKeySize возвращает размер ключа
func (rc *RijndaelCipher) GetKeySize() int {
	return rc.keySize
}

// GetRounds возвращает количество раундов
func (rc *RijndaelCipher) GetRounds() int {
	return rc.rounds
}
