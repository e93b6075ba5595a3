package app

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"treegen/internal/fsops"
	"treegen/internal/parser"
)

// Options — все настройки запуска утилиты.
type Options struct {
	InPath     string // путь к файлу с диаграммой ("-" — stdin)
	Literal    string // диаграмма, переданная строкой через -s
	UseLiteral bool
	Out        io.Writer // обычный вывод (stdout)
	Logger     *log.Logger
}

// Run — главная функция приложения: читает вход, парсит, применяет.
func Run(o Options) error {
	// 1) Получаем строки диаграммы: из строки-аргумента, stdin или файла.
	lines, err := readLines(o)
	if err != nil {
		return err
	}

	// 2) Нормализуем и восстанавливаем пути.
	entries := parser.Build(parser.Normalize(lines))
	o.Logger.Debug("диаграмма разобрана", "строк", len(lines), "элементов", len(entries))

	// 3) Материализуем по одному, в исходном порядке.
	st, err := fsops.Apply(fsops.ApplyArgs{
		Entries:  entries,
		DestRoot: ".",
		Out:      o.Out,
		Logger:   o.Logger,
	})
	if err != nil {
		return err
	}

	// 4) Готово.
	fmt.Fprintf(o.Out, "Готово: каталогов %d, файлов %d\n", st.Dirs, st.Files)
	return nil
}

func readLines(o Options) ([]string, error) {
	var r io.Reader
	switch {
	case o.UseLiteral:
		return splitLines(o.Literal), nil
	case o.InPath == "-":
		r = os.Stdin
	default:
		f, err := os.Open(o.InPath)
		if err != nil {
			return nil, fmt.Errorf("не удалось открыть входной файл %q: %w", o.InPath, err)
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения входа: %w", err)
	}
	return lines, nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
