package readcap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead_SmallFileVerbatim(t *testing.T) {
	path := writeFile(t, "small.log", "hello world\n")

	content, truncated, err := Read(path, 1024)
	require.NoError(t, err)
	assert.False(t, truncated)
	assert.Equal(t, "hello world\n", content)
}

func TestRead_ExactBudgetNotTruncated(t *testing.T) {
	body := strings.Repeat("x", 100)
	path := writeFile(t, "exact.log", body)

	content, truncated, err := Read(path, 100)
	require.NoError(t, err)
	assert.False(t, truncated)
	assert.Equal(t, body, content)
}

func TestRead_LargeFileTruncated(t *testing.T) {
	body := strings.Repeat("abcdefgh", 64*1024) // 512 KiB
	path := writeFile(t, "big.log", body)

	const budget = 100 * 1024
	content, truncated, err := Read(path, budget)
	require.NoError(t, err)
	assert.True(t, truncated)
	assert.LessOrEqual(t, len(content), budget)
	assert.Equal(t, body[:len(content)], content)
}

func TestRead_MissingFile(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "nope.log"), 1024)
	assert.Error(t, err)
}

func TestBudget(t *testing.T) {
	assert.Equal(t, int64(DefaultBudget), Budget(false))
	assert.Equal(t, int64(DeepBudget), Budget(true))
	assert.Greater(t, Budget(true), Budget(false))
}
