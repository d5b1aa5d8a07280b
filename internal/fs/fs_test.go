package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	// MkdirAll is idempotent
	dir := filepath.Join(tmp, "datasets", "vectors")
	assert.NoError(t, lfs.MkdirAll(dir, 0755))
	assert.NoError(t, lfs.MkdirAll(dir, 0755))

	fpath := filepath.Join(dir, "test.tsv")
	f, err := lfs.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	require.NoError(t, err)

	_, err = f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.NoError(t, f.Sync())

	info, err := f.Stat()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.NoError(t, f.Close())

	// Reopening with O_TRUNC discards previous content
	f, err = lfs.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	info, err = lfs.Stat(fpath)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestFaultyFS_FailAfterBytes(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule("limited", Fault{FailAfterBytes: 4})

	f, err := ffs.OpenFile(filepath.Join(tmp, "limited.tsv"), os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write([]byte("abcd"))
	require.NoError(t, err)

	_, err = f.Write([]byte("e"))
	assert.ErrorIs(t, err, ErrInjected)
	assert.Equal(t, int64(4), ffs.Written())
}

func TestFaultyFS_OpenAndClose(t *testing.T) {
	tmp := t.TempDir()
	boom := errors.New("boom")

	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule("noopen", Fault{FailAfterBytes: -1, FailOnOpen: true, Err: boom})
	ffs.AddRule("noclose", Fault{FailAfterBytes: -1, FailOnClose: true})

	_, err := ffs.OpenFile(filepath.Join(tmp, "noopen.tsv"), os.O_CREATE|os.O_WRONLY, 0644)
	assert.ErrorIs(t, err, boom)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)

	f, err := ffs.OpenFile(filepath.Join(tmp, "noclose.tsv"), os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Close(), ErrInjected)
}

func TestFaultyFS_Mkdir(t *testing.T) {
	ffs := NewFaultyFS(nil)
	ffs.MkdirErr = os.ErrPermission

	err := ffs.MkdirAll(filepath.Join(t.TempDir(), "x"), 0755)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestFaultyFS_FirstMatchingRuleWins(t *testing.T) {
	tmp := t.TempDir()
	first := errors.New("first")
	second := errors.New("second")

	ffs := NewFaultyFS(nil)
	ffs.AddRule("data", Fault{FailAfterBytes: -1, FailOnOpen: true, Err: first})
	ffs.AddRule("data.manifest", Fault{FailAfterBytes: -1, FailOnOpen: true, Err: second})

	for range 20 {
		_, err := ffs.OpenFile(filepath.Join(tmp, "data.manifest.yaml"), os.O_CREATE|os.O_WRONLY, 0644)
		require.ErrorIs(t, err, first)
	}

	// re-adding keeps the position but swaps the fault
	ffs.AddRule("data", Fault{FailAfterBytes: -1, FailOnOpen: true, Err: second})
	_, err := ffs.OpenFile(filepath.Join(tmp, "data.manifest.yaml"), os.O_CREATE|os.O_WRONLY, 0644)
	assert.ErrorIs(t, err, second)
}
