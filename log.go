package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog/v2"
	"github.com/jrick/logrotate/rotator"
	"github.com/nPaBwaYT/rijndael/cripta"
)

// Subsystem defines the logging code for the command line tool.
const Subsystem = "AESC"

// log is a logger that is initialized with the btclog.Disabled logger.
var log = btclog.Disabled

// rotatingLogWriter пишет вывод логгера в файл с ротацией
type rotatingLogWriter struct {
	rotator *rotator.Rotator
}

func newRotatingLogWriter(logDir string, maxLogFiles,
	maxLogFileSize int) (*rotatingLogWriter, error) {

	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile := filepath.Join(logDir, defaultLogFilename)
	r, err := rotator.New(
		logFile, int64(maxLogFileSize*1024), false, maxLogFiles,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create file rotator: %w", err)
	}

	return &rotatingLogWriter{rotator: r}, nil
}

func (w *rotatingLogWriter) Write(b []byte) (int, error) {
	return w.rotator.Write(b)
}

func (w *rotatingLogWriter) Close() error {
	return w.rotator.Close()
}

// initLogging настраивает логгеры утилиты и пакета cripta. Возвращаемая
// функция закрывает файл лога.
func initLogging(opts *globalOptions) (func(), error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	level, _ := btclog.LevelFromString(opts.DebugLevel)

	var (
		w       io.Writer = os.Stdout
		cleanup           = func() {}
	)
	if opts.LogDir != "" {
		fileWriter, err := newRotatingLogWriter(
			opts.LogDir, opts.MaxLogFiles, opts.MaxLogFileSize,
		)
		if err != nil {
			return nil, err
		}

		w = io.MultiWriter(os.Stdout, fileWriter)
		cleanup = func() {
			if err := fileWriter.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log "+
					"file: %v\n", err)
			}
		}
	}

	handler := btclog.NewDefaultHandler(w)

	log = btclog.NewSLogger(handler.SubSystem(Subsystem))
	log.SetLevel(level)

	libLog := btclog.NewSLogger(handler.SubSystem(cripta.Subsystem))
	libLog.SetLevel(level)
	cripta.UseLogger(libLog)

	return cleanup, nil
}
