package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestWriteReadDelete(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Write("team-1", "notes/plan.md", "agent-1", []byte("# Plan")))

	data, err := s.Read("team-1", "notes/plan.md")
	require.NoError(t, err)
	assert.Equal(t, "# Plan", string(data))

	require.NoError(t, s.Delete("team-1", "notes/plan.md", "agent-1"))
	_, err = s.Read("team-1", "notes/plan.md")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestTenantsAreIsolated(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Write("team-1", "secret.txt", "u", []byte("a")))

	_, err := s.Read("team-2", "secret.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPathTraversalIsRejected(t *testing.T) {
	s := newStore(t)

	for _, p := range []string{
		"../outside.txt",
		"a/../../outside.txt",
		"../../etc/passwd",
	} {
		// Clean collapses the traversal back inside the tenant root, so a
		// write must never land outside it; resolve rejects the cases that
		// would.
		err := s.Write("team-1", p, "u", []byte("x"))
		if err != nil {
			assert.ErrorIs(t, err, ErrInvalidPath, "path %q", p)
		} else {
			_, readErr := s.Read("team-1", "outside.txt")
			assert.NoError(t, readErr, "path %q must stay inside the tenant root", p)
		}
	}

	// Team IDs with separators could also escape.
	err := s.Write("../evil", "f.txt", "u", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestNullByteIsRejected(t *testing.T) {
	s := newStore(t)

	err := s.Write("team-1", "bad\x00name.txt", "u", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestSymlinkIsRejected(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Write("team-1", "real.txt", "u", []byte("data")))

	abs, err := s.resolve("team-1", "real.txt")
	require.NoError(t, err)
	link := filepath.Join(filepath.Dir(abs), "link.txt")
	require.NoError(t, os.Symlink(abs, link))

	_, err = s.Read("team-1", "link.txt")
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.ErrorIs(t, s.Write("team-1", "link.txt", "u", []byte("x")), ErrInvalidPath)
}

func TestList(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Write("team-1", "b.txt", "u", []byte("bb")))
	require.NoError(t, s.Write("team-1", "docs/a.txt", "u", []byte("a")))

	files, err := s.List("team-1", "")
	require.NoError(t, err)
	require.Len(t, files, 3) // docs/ dir + 2 files
	assert.Equal(t, "b.txt", files[0].Path)
	assert.Equal(t, "docs", files[1].Path)
	assert.True(t, files[1].IsDir)
	assert.Equal(t, "docs/a.txt", files[2].Path)

	// Unknown tenant lists empty, not an error.
	files, err = s.List("team-2", "")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListHidesDotEntries(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Write("team-1", "visible.txt", "u", []byte("v")))
	require.NoError(t, s.Write("team-1", ".secret", "u", []byte("s")))
	require.NoError(t, s.Write("team-1", ".git/config", "u", []byte("c")))

	files, err := s.List("team-1", "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "visible.txt", files[0].Path)

	// Hidden files are still readable when addressed directly.
	data, err := s.Read("team-1", ".secret")
	require.NoError(t, err)
	assert.Equal(t, "s", string(data))
}

func TestLocksBlockOtherOwners(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("team-1", "f.txt", "agent-1", []byte("v1")))

	require.NoError(t, s.Acquire("team-1", "f.txt", "agent-1"))

	// Holder may write; others may not.
	require.NoError(t, s.Write("team-1", "f.txt", "agent-1", []byte("v2")))
	err := s.Write("team-1", "f.txt", "agent-2", []byte("v3"))
	assert.ErrorIs(t, err, ErrLocked)
	assert.Regexp(t, `locked by agent-1, try again in \d+ seconds`, err.Error())
	err = s.Delete("team-1", "f.txt", "agent-2")
	assert.ErrorIs(t, err, ErrLocked)

	// Re-acquire by the holder refreshes; acquire by another owner fails.
	require.NoError(t, s.Acquire("team-1", "f.txt", "agent-1"))
	assert.ErrorIs(t, s.Acquire("team-1", "f.txt", "agent-2"), ErrLocked)

	s.Release("team-1", "f.txt", "agent-1")
	require.NoError(t, s.Write("team-1", "f.txt", "agent-2", []byte("v3")))
}

func TestExpiredLockIsFree(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Acquire("team-1", "f.txt", "agent-1"))

	// Force expiry instead of sleeping.
	s.mu.Lock()
	for k, e := range s.locks {
		e.expiresAt = time.Now().Add(-time.Second)
		s.locks[k] = e
	}
	s.mu.Unlock()

	require.NoError(t, s.Write("team-1", "f.txt", "agent-2", []byte("x")))
	require.NoError(t, s.Acquire("team-1", "f.txt", "agent-2"))
}

func TestReleaseByNonOwnerIsNoop(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Acquire("team-1", "f.txt", "agent-1"))

	s.Release("team-1", "f.txt", "agent-2")
	assert.ErrorIs(t, s.Acquire("team-1", "f.txt", "agent-2"), ErrLocked)
}

func TestWriteSizeCap(t *testing.T) {
	s := newStore(t)
	err := s.Write("team-1", "big.bin", "u", make([]byte, maxFileSize+1))
	assert.ErrorIs(t, err, ErrTooLarge)
}
