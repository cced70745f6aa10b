// Package workspace provides the per-tenant shared file area agents and
// users read and write through tools and the API.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// lockTTL bounds how long a cooperative lock survives without release.
	lockTTL = 30 * time.Second

	// maxFileSize caps a single workspace file.
	maxFileSize = 10 << 20 // 10 MiB
)

var (
	// ErrInvalidPath is returned for paths that escape the tenant root.
	ErrInvalidPath = errors.New("invalid workspace path")

	// ErrFileNotFound is returned when the requested file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrLocked is returned when another holder owns the file lock.
	ErrLocked = errors.New("file is locked")

	// ErrTooLarge is returned when content exceeds the size cap.
	ErrTooLarge = errors.New("file too large")
)

// FileInfo describes one workspace entry.
type FileInfo struct {
	Path      string    `json:"path"`
	SizeBytes int64     `json:"size_bytes"`
	IsDir     bool      `json:"is_dir"`
	UpdatedAt time.Time `json:"updated_at"`
}

type lockEntry struct {
	owner     string
	expiresAt time.Time
}

// Store is a path-safe file store rooted per tenant, with cooperative
// write locks.
type Store struct {
	root string

	mu    sync.Mutex
	locks map[string]lockEntry // "<team>/<path>" → holder
}

// NewStore creates a Store rooted at root, creating the directory if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace root: %w", err)
	}
	return &Store{
		root:  root,
		locks: make(map[string]lockEntry),
	}, nil
}

// resolve maps a tenant-relative path to an absolute one, rejecting
// anything that would escape the tenant directory.
func (s *Store) resolve(teamID, relPath string) (string, error) {
	if teamID == "" || strings.ContainsAny(teamID, `/\`) {
		return "", ErrInvalidPath
	}
	if strings.ContainsRune(relPath, 0) {
		return "", ErrInvalidPath
	}

	cleaned := filepath.Clean("/" + filepath.FromSlash(relPath))
	if cleaned == "/" {
		cleaned = ""
	}

	teamRoot := filepath.Join(s.root, teamID)
	abs := filepath.Join(teamRoot, cleaned)
	if abs != teamRoot && !strings.HasPrefix(abs, teamRoot+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	// Symlinks could point outside the tenant directory.
	if fi, err := os.Lstat(abs); err == nil && fi.Mode()&os.ModeSymlink != 0 {
		return "", ErrInvalidPath
	}
	return abs, nil
}

// List returns the files under a tenant directory, recursively, sorted by
// path. A tenant with no workspace yet lists empty.
func (s *Store) List(teamID, relPath string) ([]FileInfo, error) {
	base, err := s.resolve(teamID, relPath)
	if err != nil {
		return nil, err
	}

	var out []FileInfo
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if path == base {
			return nil
		}
		// Hidden entries stay out of listings.
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(filepath.Join(s.root, teamID), path)
		if err != nil {
			return err
		}
		out = append(out, FileInfo{
			Path:      filepath.ToSlash(rel),
			SizeBytes: info.Size(),
			IsDir:     d.IsDir(),
			UpdatedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace: %w", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Read returns a file's content.
func (s *Store) Read(teamID, relPath string) ([]byte, error) {
	abs, err := s.resolve(teamID, relPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// Write creates or replaces a file, honoring any live lock held by another
// owner. Parent directories are created as needed.
func (s *Store) Write(teamID, relPath, owner string, content []byte) error {
	if len(content) > maxFileSize {
		return ErrTooLarge
	}
	abs, err := s.resolve(teamID, relPath)
	if err != nil {
		return err
	}
	if err := s.checkLock(teamID, relPath, owner); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	if err := os.WriteFile(abs, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes a file, honoring any live lock held by another owner.
func (s *Store) Delete(teamID, relPath, owner string) error {
	abs, err := s.resolve(teamID, relPath)
	if err != nil {
		return err
	}
	if err := s.checkLock(teamID, relPath, owner); err != nil {
		return err
	}

	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Acquire takes the cooperative lock on a file for owner. Re-acquiring an
// already held lock refreshes its TTL; expired locks are free to take.
func (s *Store) Acquire(teamID, relPath, owner string) error {
	if _, err := s.resolve(teamID, relPath); err != nil {
		return err
	}

	key := lockKey(teamID, relPath)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.locks[key]; ok && now.Before(entry.expiresAt) && entry.owner != owner {
		return lockedError(entry, now)
	}
	s.locks[key] = lockEntry{owner: owner, expiresAt: now.Add(lockTTL)}
	return nil
}

// Release drops the lock if owner holds it. Releasing a lock you don't
// hold is a no-op.
func (s *Store) Release(teamID, relPath, owner string) {
	key := lockKey(teamID, relPath)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.locks[key]; ok && entry.owner == owner {
		delete(s.locks, key)
	}
}

// checkLock fails with ErrLocked when a live lock belongs to someone else.
func (s *Store) checkLock(teamID, relPath, owner string) error {
	key := lockKey(teamID, relPath)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.locks[key]; ok {
		if now.After(entry.expiresAt) {
			delete(s.locks, key)
			return nil
		}
		if entry.owner != owner {
			return lockedError(entry, now)
		}
	}
	return nil
}

// lockedError tells the caller who holds the lock and when retrying makes
// sense.
func lockedError(entry lockEntry, now time.Time) error {
	remaining := int(entry.expiresAt.Sub(now).Round(time.Second).Seconds())
	if remaining < 1 {
		remaining = 1
	}
	return fmt.Errorf("%w: locked by %s, try again in %d seconds", ErrLocked, entry.owner, remaining)
}

func lockKey(teamID, relPath string) string {
	return teamID + "/" + filepath.ToSlash(filepath.Clean("/"+relPath))
}
