package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"treegen/internal/app"
)

func main() {
	// Флаги. Делаем их очевидными и простыми.
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	str := fs.String("s", "", "Диаграмма, переданная строкой (вместо файла)")
	strLong := fs.String("string", "", "Синоним -s")
	verbose := fs.Bool("v", false, "Подробный вывод в stderr")
	verboseLong := fs.Bool("verbose", false, "Синоним -v")
	help := fs.Bool("h", false, "Показать справку и выйти")
	helpLong := fs.Bool("help", false, "Синоним -h")

	fs.Usage = func() {
		name := fs.Name()
		fmt.Fprintf(os.Stdout, `
%s — создаёт каталоги и пустые файлы из текстовой tree-диаграммы.

Использование:
  %s <файл>                файл с диаграммой ('-' для stdin)
  %s -s|--string <текст>   диаграмма строкой
  %s [-v|--verbose] [-h|--help]

Формат диаграммы:
  Строки с отступами и ветками ├──/└──/│ (или '|'). Каталог — имя с /
  на конце. Первая строка вида "myproject/" без веток считается меткой
  корня и отбрасывается: всё создаётся относительно текущего каталога.
  Хвост строки после неэкранированного '#' — комментарий.

Примеры:
  %[1]s struct.txt
  %[1]s -s "a/
  ├── b/
  └── c.txt" -v
`, name, name, name, name)
	}

	// Если без аргументов — это ошибка использования, а не просьба о справке.
	if len(os.Args) == 1 {
		fs.Usage()
		os.Exit(1)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		// flag уже напечатал причину и справку в stderr
		os.Exit(1)
	}

	if *help || *helpLong {
		fs.Usage()
		return
	}

	literal := *str
	if literal == "" {
		literal = *strLong
	}
	useLiteral := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "s" || f.Name == "string" {
			useLiteral = true
		}
	})
	if useLiteral && literal == "" {
		fail(fmt.Errorf("флагу -s|--string нужно непустое значение"))
	}

	if !useLiteral && fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if *verbose || *verboseLong {
		logger.SetLevel(log.DebugLevel)
	}

	opts := app.Options{
		InPath:     fs.Arg(0),
		Literal:    literal,
		UseLiteral: useLiteral,
		Out:        os.Stdout,
		Logger:     logger,
	}

	if err := app.Run(opts); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ошибка: %v\n", err)
	os.Exit(1)
}
