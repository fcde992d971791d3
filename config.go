package main

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/btcsuite/btclog/v2"
	"github.com/nPaBwaYT/rijndael/cripta"
	"golang.org/x/term"
)

const (
	defaultLogLevel       = "info"
	defaultLogFilename    = "aescli.log"
	defaultMaxLogFiles    = 3
	defaultMaxLogFileSize = 10

	defaultKeySize = 128
	defaultPadding = "zeros"
)

// globalOptions задает ключи, общие для всех команд
type globalOptions struct {
	DebugLevel     string `long:"debuglevel" short:"d" description:"Уровень логирования: trace, debug, info, warn, error, critical или off"`
	LogDir         string `long:"logdir" description:"Каталог для файла лога с ротацией; если не указан, лог в файл не пишется"`
	MaxLogFiles    int    `long:"maxlogfiles" description:"Максимальное число хранимых файлов лога"`
	MaxLogFileSize int    `long:"maxlogfilesize" description:"Максимальный размер файла лога в МБ до ротации"`
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{
		DebugLevel:     defaultLogLevel,
		MaxLogFiles:    defaultMaxLogFiles,
		MaxLogFileSize: defaultMaxLogFileSize,
	}
}

func (o *globalOptions) validate() error {
	if _, ok := btclog.LevelFromString(o.DebugLevel); !ok {
		return fmt.Errorf("invalid debug level %q", o.DebugLevel)
	}
	if o.MaxLogFiles < 0 {
		return fmt.Errorf("maxlogfiles must be non-negative, got %d",
			o.MaxLogFiles)
	}
	if o.MaxLogFileSize <= 0 {
		return fmt.Errorf("maxlogfilesize must be positive, got %d",
			o.MaxLogFileSize)
	}

	return nil
}

// cipherOptions задает ключ и режим для encrypt и decrypt
type cipherOptions struct {
	Key      string `long:"key" short:"k" description:"Ключ шифрования в hex"`
	KeyFile  string `long:"key-file" description:"Файл с ключом (сырые байты или hex)"`
	KeySize  int    `long:"key-size" short:"s" description:"Размер ключа в битах" choice:"128" choice:"192" choice:"256"`
	Padding  string `long:"padding" short:"p" description:"Режим набивки" choice:"zeros" choice:"pkcs7" choice:"ansi" choice:"iso"`
	Parallel bool   `long:"parallel" description:"Использовать параллельную обработку блоков"`
}

func newCipherOptions() cipherOptions {
	return cipherOptions{
		KeySize: defaultKeySize,
		Padding: defaultPadding,
	}
}

func (o *cipherOptions) validate() (cripta.PaddingMode, error) {
	if o.Key != "" && o.KeyFile != "" {
		return 0, errors.New("--key and --key-file are mutually exclusive")
	}

	if _, _, err := cripta.KeyParams(o.KeySize); err != nil {
		return 0, err
	}

	return cripta.ParsePaddingMode(o.Padding)
}

// loadKey читает ключ из --key, --key-file или с терминала
func (o *cipherOptions) loadKey() ([]byte, error) {
	switch {
	case o.Key != "":
		return parseHexKey(o.Key, o.KeySize)

	case o.KeyFile != "":
		return cripta.LoadKeyFromFile(o.KeyFile, o.KeySize)

	default:
		return readKeyFromTerminal(o.KeySize)
	}
}

// newCipherContext проверяет ключи команды и создает контекст шифрования
func (o *cipherOptions) newCipherContext() (*cripta.CipherContext, error) {
	padding, err := o.validate()
	if err != nil {
		return nil, err
	}

	key, err := o.loadKey()
	if err != nil {
		return nil, err
	}

	return cripta.NewCipherContext(key, o.KeySize, padding, o.Parallel)
}

// parseHexKey принимает только hex, сырые байты в командной строке не
// поддерживаются
func parseHexKey(s string, keySizeBits int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) != keySizeBits/4 {
		return nil, fmt.Errorf("%w: AES-%d needs %d hex chars, got %d",
			cripta.ErrInvalidKeyFormat, keySizeBits, keySizeBits/4, len(s))
	}

	return cripta.ParseKey([]byte(s), keySizeBits)
}

func readKeyFromTerminal(keySizeBits int) ([]byte, error) {
	if !term.IsTerminal(int(syscall.Stdin)) { // nolint:unconvert
		return nil, errors.New("no key given: use --key or --key-file")
	}

	fmt.Printf("Введите ключ AES-%d (hex): ", keySizeBits)
	pw, err := term.ReadPassword(int(syscall.Stdin)) // nolint:unconvert
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}

	return parseHexKey(string(pw), keySizeBits)
}
