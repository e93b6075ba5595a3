package parser

import (
	"strings"

	"treegen/internal/plan"
)

// stackEntry — компонент пути на стеке предков.
// Инвариант: уровни на стеке строго возрастают снизу вверх.
type stackEntry struct {
	component string
	level     int
}

// Build восстанавливает полные пути из последовательности (уровень, имя).
// Машина состояний над одним целым currentLevel и стеком предков:
//
//	уровень больше текущего  — спуск: просто push;
//	уровень равен текущему   — сосед: pop ровно одного, затем push;
//	уровень меньше текущего  — подъём: pop всех с уровнем >= нового, затем push.
//
// Скачки уровня больше чем на единицу принимаются без ошибок: новый
// элемент становится потомком того, что осталось на стеке. Build не
// может завершиться ошибкой — это чистое преобразование данных.
func Build(lines []plan.TreeLine) []plan.Entry {
	var stack []stackEntry
	current := -1

	var out []plan.Entry
	for _, ln := range lines {
		switch {
		case ln.Level > current:
			// спуск — ничего не снимаем
		case ln.Level == current:
			stack = stack[:len(stack)-1]
		default:
			for len(stack) > 0 && stack[len(stack)-1].level >= ln.Level {
				stack = stack[:len(stack)-1]
			}
		}

		stack = append(stack, stackEntry{component: ln.Name, level: ln.Level})
		current = ln.Level

		// Путь — конкатенация компонентов снизу вверх; каталоги сами
		// несут завершающий "/", больше ничего не вставляем.
		var b strings.Builder
		for _, e := range stack {
			b.WriteString(e.component)
		}
		path := b.String()

		out = append(out, plan.Entry{
			Path:  path,
			Level: ln.Level,
			Dir:   strings.HasSuffix(path, "/"),
		})
	}

	return out
}
