package cripta

type IKeySchedule interface {
	GenerateRoundKeys(masterKey []uint8) (*KeySchedule, error)
}

type IRoundFunction interface {
	Apply(state *Block, roundKey *Block)
}

type ISymmetricCipher interface {
	SetKey(key []uint8) error
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
	DecryptBlock(cipherBlock []uint8) ([]uint8, error)
}
