package plan

// TreeLine — одна содержательная строка диаграммы после нормализации.
type TreeLine struct {
	Level int    // глубина вложенности: ведущие пробелы/соединители, делённые на 2
	Name  string // имя элемента; у каталога сохраняется завершающий "/"
}

// Entry — восстановленный полный путь для одной строки диаграммы.
type Entry struct {
	Path  string // конкатенация компонентов стека от корня до текущего
	Level int    // уровень исходной строки (для диагностики)
	Dir   bool   // каталог, если Path заканчивается на "/"
}
