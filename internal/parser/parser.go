package parser

import (
	"strings"
	"unicode"

	"treegen/internal/plan"
)

// Ширина одного уровня отступа в символах.
const indentUnit = 2

// Соединители псевдографики (├──/└──/│) и ASCII-вариант '|'.
const connectors = "├└│─|"

// Normalize превращает сырые строки диаграммы в последовательность
// (уровень, имя). Пустые строки, комментарии и строка-метка корня
// отбрасываются. Нормализация не может завершиться ошибкой: любая,
// даже кривая диаграмма даёт какой-то результат.
func Normalize(lines []string) []plan.TreeLine {
	var out []plan.TreeLine
	first := true

	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		// Первая непустая строка вида "myproject/" без соединителей —
		// метка корня. Её содержимое намеренно отбрасывается: иерархия
		// всегда строится относительно текущего каталога.
		if first {
			first = false
			if t := strings.TrimSpace(raw); strings.HasSuffix(t, "/") && !strings.ContainsAny(t, connectors) {
				continue
			}
		}

		line := stripComment(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Итоговую строку tree "N directories, M files" игнорируем.
		if isTreeSummary(line) {
			continue
		}

		name := cleanName(line)
		if name == "" {
			continue
		}

		out = append(out, plan.TreeLine{
			Level: indentLevel(line),
			Name:  name,
		})
	}

	return out
}

// stripComment отрезает хвостовой комментарий: от неэкранированного '#'
// до конца строки. '\#' комментарием не считается.
func stripComment(line string) string {
	prev := rune(0)
	for i, r := range line {
		if r == '#' && prev != '\\' {
			return line[:i]
		}
		prev = r
	}
	return line
}

// indentLevel считает ведущие пробельные символы и соединители и делит
// на ширину отступа. Это эвристика: диаграмма с другой шириной отступа
// распарсится криво, и это принятое поведение, а не баг.
func indentLevel(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) && !isConnector(r) {
			break
		}
		n++
	}
	return n / indentUnit
}

// cleanName убирает из строки все соединители ("──" схлопывается в один
// пробел) и обрезает пробелы по краям.
func cleanName(line string) string {
	s := strings.ReplaceAll(line, "──", " ")
	s = strings.Map(func(r rune) rune {
		if isConnector(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

func isConnector(r rune) bool {
	return strings.ContainsRune(connectors, r)
}

// Очень простая эвристика: игнорируем строку-резюме tree.
func isTreeSummary(line string) bool {
	s := strings.TrimSpace(strings.ToLower(line))
	return (strings.Contains(s, "directories") || strings.Contains(s, "directory")) &&
		(strings.Contains(s, "files") || strings.Contains(s, "file"))
}
