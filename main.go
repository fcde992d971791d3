package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

/*
Генерация ключа
go run . keygen --key-size=256 aes.key

Шифрование файла с ключом из файла
go run . encrypt --key-file=aes.key --key-size=256 --padding=pkcs7 input.txt output.enc

Дешифрование с ключом в hex
go run . decrypt -k 000102030405060708090a0b0c0d0e0f output.enc input.txt

Шифрование с параллельной обработкой и логом в файл
go run . --logdir=logs --debuglevel=debug encrypt --parallel --key-file=aes.key in.bin out.enc

Размеры ключа: 128, 192, 256
Режим шифрования: ECB
Режимы набивки: zeros, pkcs7, ansi, iso
*/

type subCommand interface {
	Register(parser *flags.Parser) error
}

func main() {
	global := newGlobalOptions()
	parser := flags.NewParser(global, flags.HelpFlag|flags.PassDoubleDash)

	commands := []subCommand{
		newEncryptCommand(global),
		newDecryptCommand(global),
		newKeygenCommand(global),
	}
	for _, command := range commands {
		if err := command.Register(parser); err != nil {
			fatal(err)
		}
	}

	if _, err := parser.Parse(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Println(err)
			return
		}

		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[aescli] %v\n", err)
	os.Exit(1)
}
