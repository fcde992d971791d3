package cripta

// aesModulus хранит младшие 8 бит многочлена x⁸+x⁴+x³+x+1 (x⁸ подразумевается)
const aesModulus byte = 0x1B

// GF28Service предоставляет функционал для работы с полем GF(2⁸)
type GF28Service struct{}

// gf используется раундовыми преобразованиями и расписанием ключей.
// Сервис не имеет состояния.
var gf GF28Service

// NewGF28Service создает новый сервис для работы с GF(2⁸)
func NewGF28Service() *GF28Service {
	return &GF28Service{}
}

// Add складывает два элемента из GF(2⁸) (побитовое XOR)
func (s *GF28Service) Add(a, b byte) byte {
	return a ^ b
}

// Subtract вычитает элементы GF(2⁸); в поле характеристики 2 совпадает со сложением
func (s *GF28Service) Subtract(a, b byte) byte {
	return a ^ b
}

// Multiply умножает два элемента из GF(2⁸) по модулю x⁸+x⁴+x³+x+1
func (s *GF28Service) Multiply(a, b byte) byte {
	var result byte = 0
	var highBit byte = 0x80

	for i := 0; i < 8; i++ {
		if (b & 1) != 0 {
			result ^= a
		}

		carry := (a & highBit) != 0
		a <<= 1

		if carry {
			a ^= aesModulus
		}

		b >>= 1
	}

	return result
}

// Inverse находит обратный элемент как a^254 (группа GF(2⁸)* имеет порядок 255)
func (s *GF28Service) Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrZeroInverse
	}

	result := byte(1)
	base := a
	for e := 254; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = s.Multiply(result, base)
		}
		base = s.Multiply(base, base)
	}

	return result, nil
}
