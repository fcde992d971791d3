package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/nPaBwaYT/rijndael/cripta"
)

type keygenCommand struct {
	KeySize   int  `long:"key-size" short:"s" description:"Размер ключа в битах" choice:"128" choice:"192" choice:"256"`
	Overwrite bool `long:"overwrite" description:"Перезаписать OUTPUT, если файл уже существует"`

	global *globalOptions
	out    io.Writer
}

func newKeygenCommand(global *globalOptions) *keygenCommand {
	return &keygenCommand{
		KeySize: defaultKeySize,
		global:  global,
		out:     os.Stdout,
	}
}

func (x *keygenCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"keygen",
		"Сгенерировать случайный ключ AES",
		"Генерирует случайный ключ размером --key-size бит и "+
			"записывает его в OUTPUT в виде hex-строки, которую "+
			"можно передать через --key-file",
		x,
	)
	return err
}

func (x *keygenCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected OUTPUT argument, got %d", len(args))
	}
	output := args[0]

	cleanup, err := initLogging(x.global)
	if err != nil {
		return err
	}
	defer cleanup()

	if !x.Overwrite {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("key file %s already exists, use "+
				"--overwrite to replace it", output)
		}
	}

	key, err := cripta.GenerateKey(x.KeySize)
	if err != nil {
		return err
	}

	if err := cripta.SaveKeyToFile(key, output); err != nil {
		return fmt.Errorf("failed to save key: %w", err)
	}

	log.Infof("Wrote AES-%d key to %s", x.KeySize, output)
	fmt.Fprintf(x.out, "Ключ AES-%d записан в %s\n", x.KeySize, output)

	return nil
}
