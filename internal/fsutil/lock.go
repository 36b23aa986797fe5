package fsutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// FileLock is an advisory flock tied to a sidecar lock file. Two
// sftpjail invocations editing the same sshd_config serialize on it;
// other writers are not excluded (flock is advisory).
type FileLock struct {
	f *os.File
}

// LockFile takes an exclusive advisory lock on path+".lock", blocking
// until it is available.
func LockFile(path string) (*FileLock, error) {
	f, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &FileLock{f: f}, nil
}

func (l *FileLock) Unlock() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	l.f = nil
	return err
}
