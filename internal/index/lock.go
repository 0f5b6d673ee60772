package index

import (
	"os"
)

// FileLock is an exclusive OS advisory lock on a sidecar "<path>.lock"
// file. It serialises read-modify-write cycles on one document across
// processes. The lock file is never removed.
type FileLock struct {
	f *os.File
}

// LockPath returns the sidecar lock file for a document.
func LockPath(path string) string {
	return path + ".lock"
}

// Lock blocks until the exclusive lock for path is held.
func Lock(path string) (*FileLock, error) {
	f, err := os.OpenFile(LockPath(path), os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	l := &FileLock{f: f}
	if err := l.lock(); err != nil {
		f.Close()
		return nil, err
	}
	return l, nil
}

// Unlock releases the lock and closes the lock file. Safe on nil.
func (l *FileLock) Unlock() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := l.unlock()
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	l.f = nil
	return err
}
