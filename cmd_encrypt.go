package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

type encryptCommand struct {
	cipherOptions

	global *globalOptions
	out    io.Writer
}

func newEncryptCommand(global *globalOptions) *encryptCommand {
	return &encryptCommand{
		cipherOptions: newCipherOptions(),
		global:        global,
		out:           os.Stdout,
	}
}

func (x *encryptCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"encrypt",
		"Зашифровать файл AES в режиме ECB",
		"Читает INPUT, дополняет его выбранным режимом набивки, "+
			"шифрует поблочно и записывает результат в OUTPUT; "+
			"ключ берется из --key, --key-file или вводится с "+
			"терминала",
		x,
	)
	return err
}

func (x *encryptCommand) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected INPUT and OUTPUT arguments, got %d",
			len(args))
	}
	input, output := args[0], args[1]

	cleanup, err := initLogging(x.global)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := checkInputFile(input); err != nil {
		return err
	}

	ctx, err := x.newCipherContext()
	if err != nil {
		return err
	}

	startTime := time.Now()
	if err := ctx.EncryptFile(input, output); err != nil {
		return err
	}

	return printSummary(x.out, &runSummary{
		operation: "encrypt",
		ctx:       ctx,
		input:     input,
		output:    output,
		elapsed:   time.Since(startTime),
	})
}
