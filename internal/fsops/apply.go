package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"treegen/internal/plan"
)

// ApplyArgs — параметры материализации плана.
type ApplyArgs struct {
	Entries  []plan.Entry
	DestRoot string    // каталог назначения; приложение передаёт "."
	Out      io.Writer // куда писать строки о созданных элементах
	Logger   *log.Logger
}

// Stats — счётчики созданных элементов для итоговой строки.
type Stats struct {
	Dirs  int
	Files int
}

// Apply создаёт каталоги и файлы по порядку следования записей.
// Первая же ошибка файловой системы прерывает весь прогон: без
// повторов, без отката, без продолжения «что получилось».
func Apply(a ApplyArgs) (Stats, error) {
	var st Stats

	for _, e := range a.Entries {
		target := filepath.Join(a.DestRoot, e.Path)

		if e.Dir {
			if err := ensureDir(a, target, e); err != nil {
				return st, err
			}
			st.Dirs++
			continue
		}

		if err := ensureFile(a, target, e); err != nil {
			return st, err
		}
		st.Files++
	}

	return st, nil
}

// ensureDir создаёт каталог вместе с недостающими предками.
// Уже существующий каталог — не ошибка (повторный прогон идемпотентен).
func ensureDir(a ApplyArgs, target string, e plan.Entry) error {
	a.Logger.Debug("mkdir -p", "path", target, "level", e.Level)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", target, err)
	}
	fmt.Fprintf(a.Out, "dir: %s\n", e.Path)
	return nil
}

// ensureFile готовит цепочку родительских каталогов и создаёт пустой
// файл, если его ещё нет. Существующий файл не трогаем и не усекаем:
// повторный прогон по той же диаграмме не должен уничтожать содержимое.
func ensureFile(a ApplyArgs, target string, e plan.Entry) error {
	if parent := filepath.Dir(target); parent != "." {
		a.Logger.Debug("mkdir -p", "path", parent, "level", e.Level)
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", parent, err)
		}
	}

	a.Logger.Debug("touch", "path", target, "level", e.Level)
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	_ = f.Close()

	fmt.Fprintf(a.Out, "file: %s\n", e.Path)
	return nil
}
