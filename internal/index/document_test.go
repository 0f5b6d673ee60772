package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitJoinLines(t *testing.T) {
	for _, doc := range []string{"", "a", "a\n", "a\n\nb\n", "\n"} {
		assert.Equal(t, doc, JoinLines(SplitLines(doc)), "%q", doc)
	}
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\r\nb\r\n"))
}

func TestReadDocumentMissing(t *testing.T) {
	text, err := ReadDocument(filepath.Join(t.TempDir(), "nope.md"))
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "README.md")

	require.NoError(t, WriteDocument(path, "hello\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	require.NoError(t, WriteDocument(path, "replaced\n"))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "replaced\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestDigest(t *testing.T) {
	assert.Equal(t, Digest("a\nb"), Digest("a\nb"))
	assert.NotEqual(t, Digest("a\nb"), Digest("a\nb\n"))
	assert.Len(t, Digest(""), 16)
}

func TestLockUnlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")

	l, err := Lock(path)
	require.NoError(t, err)
	_, err = os.Stat(LockPath(path))
	require.NoError(t, err)

	require.NoError(t, l.Unlock())
	require.NoError(t, l.Unlock(), "unlock is idempotent")

	var nilLock *FileLock
	assert.NoError(t, nilLock.Unlock())
}
