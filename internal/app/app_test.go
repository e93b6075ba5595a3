package app

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir меняет текущий каталог на время теста (как t.Chdir из Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// myproject/
// ├── cmd/
// │   └── main.go
// └── README.md
func TestRunFromLiteral(t *testing.T) {
	chdir(t, t.TempDir())

	out := &bytes.Buffer{}
	err := Run(Options{
		Literal:    "myproject/\n├── cmd/\n│   └── main.go\n└── README.md\n",
		UseLiteral: true,
		Out:        out,
		Logger:     log.New(io.Discard),
	})
	require.NoError(t, err)

	// Метка корня отброшена: всё лежит в текущем каталоге.
	_, err = os.Stat("myproject")
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat("cmd")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = os.Stat("cmd/main.go")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = os.Stat("README.md")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Готово: каталогов 1, файлов 2\n")
}

func TestRunFromFile(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("struct.txt", []byte("├── a/\n│   └── b.txt\n"), 0o644))

	out := &bytes.Buffer{}
	err := Run(Options{
		InPath: "struct.txt",
		Out:    out,
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)

	_, err = os.Stat("a/b.txt")
	require.NoError(t, err)
}

func TestRunInputNotFound(t *testing.T) {
	err := Run(Options{
		InPath: "no-such-file.txt",
		Out:    io.Discard,
		Logger: log.New(io.Discard),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file.txt")
}
