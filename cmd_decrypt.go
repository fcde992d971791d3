package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/nPaBwaYT/rijndael/cripta"
)

type decryptCommand struct {
	cipherOptions

	Length int `long:"length" short:"l" description:"Точная длина открытого текста в байтах; обрезает нулевую набивку (только с --padding=zeros)"`

	global *globalOptions
	out    io.Writer
}

func newDecryptCommand(global *globalOptions) *decryptCommand {
	return &decryptCommand{
		cipherOptions: newCipherOptions(),
		Length:        -1,
		global:        global,
		out:           os.Stdout,
	}
}

func (x *decryptCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"decrypt",
		"Расшифровать файл, зашифрованный командой encrypt",
		"Читает INPUT, длина которого должна быть кратна 16 байтам, "+
			"расшифровывает его, снимает набивку и записывает "+
			"результат в OUTPUT; при нулевой набивке хвостовые "+
			"нули сохраняются, если не указан --length",
		x,
	)
	return err
}

func (x *decryptCommand) Execute(args []string) error {
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

	if x.Length >= 0 && ctx.GetPaddingMode() != cripta.PaddingModeZeros {
		return errors.New("--length is only valid with --padding=zeros")
	}

	startTime := time.Now()
	if x.Length >= 0 {
		err = ctx.DecryptFileWithLength(input, output, x.Length)
	} else {
		err = ctx.DecryptFile(input, output)
	}
	if err != nil {
		return err
	}

	return printSummary(x.out, &runSummary{
		operation: "decrypt",
		ctx:       ctx,
		input:     input,
		output:    output,
		elapsed:   time.Since(startTime),
	})
}
