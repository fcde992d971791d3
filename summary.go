package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nPaBwaYT/rijndael/cripta"
)

type runSummary struct {
	operation string
	ctx       *cripta.CipherContext
	input     string
	output    string
	elapsed   time.Duration
}

// checkInputFile проверяет, что входной файл существует и не является
// каталогом
func checkInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file %s does not exist", path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("input %s is a directory", path)
	}

	return nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

// printSummary выводит сводку по выполненной операции
func printSummary(w io.Writer, s *runSummary) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Параметр", "Значение"})
	t.AppendRows([]table.Row{
		{"Операция", s.operation},
		{"Алгоритм", fmt.Sprintf("AES-%d ECB", s.ctx.GetKeySize())},
		{"Набивка", s.ctx.GetPaddingMode().String()},
		{"Параллельная обработка", s.ctx.IsParallel()},
		{"Вход", fmt.Sprintf("%s (%d байт)", s.input, fileSize(s.input))},
		{"Выход", fmt.Sprintf("%s (%d байт)", s.output, fileSize(s.output))},
		{"Время выполнения", s.elapsed.Round(time.Microsecond)},
	})
	t.Render()

	return nil
}
