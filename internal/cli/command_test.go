package cli

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dupfind/internal/dupfind"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what was written.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	read, write, err := os.Pipe()
	require.NoError(t, err)

	saved := os.Stdout
	os.Stdout = write

	defer func() { os.Stdout = saved }()

	fnErr := fn()

	require.NoError(t, write.Close())

	out, err := io.ReadAll(read)
	require.NoError(t, err)

	return string(out), fnErr
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return captureStdout(t, func() error {
		cmd := New("test").command()
		cmd.SetArgs(args)

		return cmd.Execute()
	})
}

func TestCommand_ScanJSON(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/x.txt": "hello",
		"b/x.txt": "hello",
		"c/y.txt": "lonely",
	})

	out, err := execute(t, "--output", "json", root)
	require.NoError(t, err)

	var report dupfind.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	require.Len(t, report.Sets, 1)
	assert.Equal(t, "x.txt", report.Sets[0].Name)
	assert.Equal(t, int64(5), report.ReclaimableBytes)
	assert.Equal(t, int64(3), report.FilesScanned)
}

func TestCommand_ScanTable(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/x.txt": "hello",
		"b/x.txt": "world",
	})

	out, err := execute(t, root)
	require.NoError(t, err)

	assert.Equal(t, "Nenhum arquivo duplicado encontrado.\n", out)
}

func TestCommand_MissingRoot(t *testing.T) {
	out, err := execute(t, filepath.Join(t.TempDir(), "nope"))

	require.ErrorIs(t, err, ErrRootMissing)
	assert.Contains(t, out, "Pasta raiz não existe.")
}

func TestCommand_InvalidOutputFormat(t *testing.T) {
	_, err := execute(t, "--output", "xml", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestCommand_InvalidMinSize(t *testing.T) {
	_, err := execute(t, "--min-size", "bogus", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid min-size")
}

func TestCommand_Version(t *testing.T) {
	out, err := execute(t, "--version")

	require.NoError(t, err)
	assert.Equal(t, "test\n", out)
}

func TestPromptRoot(t *testing.T) {
	out, err := captureStdout(t, func() error {
		root, err := promptRoot(bufio.NewReader(strings.NewReader("/tmp/some/dir\n")))
		if err != nil {
			return err
		}

		assert.Equal(t, "/tmp/some/dir", root)

		return nil
	})

	require.NoError(t, err)
	assert.Contains(t, out, "Localizar duplicatas!")
	assert.Contains(t, out, "Informe pasta raiz: ")
}

func TestPromptRoot_TrimsCarriageReturn(t *testing.T) {
	_, err := captureStdout(t, func() error {
		root, err := promptRoot(bufio.NewReader(strings.NewReader("folder\r\n")))
		if err != nil {
			return err
		}

		assert.Equal(t, "folder", root)

		return nil
	})

	require.NoError(t, err)
}

func TestPromptRoot_LastLineWithoutNewline(t *testing.T) {
	_, err := captureStdout(t, func() error {
		root, err := promptRoot(bufio.NewReader(strings.NewReader("folder")))
		if err != nil {
			return err
		}

		assert.Equal(t, "folder", root)

		return nil
	})

	require.NoError(t, err)
}
