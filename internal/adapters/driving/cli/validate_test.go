package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnippetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snippets.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate", validateCmd.Use)
}

func TestValidateCmd_ReportsCounts(t *testing.T) {
	cleanup := setupTestDeps(nil)
	defer cleanup()

	path := writeSnippetFile(t, `[
		{"title": "Good", "content": "fine"},
		{"title": "", "content": "missing title"}
	]`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"validate", "--snippets", path})
	defer func() {
		rootCmd.SetArgs(nil)
		snippetsFlag = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1 valid snippet(s), 1 dropped")
}

func TestValidateCmd_MalformedFileFails(t *testing.T) {
	cleanup := setupTestDeps(nil)
	defer cleanup()

	path := writeSnippetFile(t, "not json at all")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"validate", "--snippets", path})
	defer func() {
		rootCmd.SetArgs(nil)
		snippetsFlag = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestValidateCmd_MissingFileFails(t *testing.T) {
	cleanup := setupTestDeps(nil)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "absent.json")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"validate", "--snippets", path})
	defer func() {
		rootCmd.SetArgs(nil)
		snippetsFlag = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}
