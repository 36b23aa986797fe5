package sshdconf

import (
	"fmt"
	"os"

	"github.com/sftpjail/sftpjail/internal/fsutil"
)

// Editor applies block operations to the sshd_config at Path.
// Each operation holds an advisory flock across its
// read-modify-write window and persists through an atomic replace.
type Editor struct {
	Path string
}

// Ensure makes sure the block identified by marker exists, appending
// it if absent. Returns true when the file was modified.
func (e *Editor) Ensure(marker string, block []string) (bool, error) {
	return e.edit(func(d *Document) bool {
		return d.EnsureBlock(marker, block)
	})
}

// Remove deletes the block spanning startMarker through the first
// following endSentinel line. A missing marker is reported as
// (false, nil), not an error.
func (e *Editor) Remove(startMarker, endSentinel string) (bool, error) {
	return e.edit(func(d *Document) bool {
		return d.RemoveBlock(startMarker, endSentinel)
	})
}

func (e *Editor) edit(op func(*Document) bool) (bool, error) {
	lock, err := fsutil.LockFile(e.Path)
	if err != nil {
		return false, fmt.Errorf("lock %s: %w", e.Path, err)
	}
	defer func() { _ = lock.Unlock() }()

	b, err := os.ReadFile(e.Path)
	if err != nil {
		return false, err
	}
	perm := os.FileMode(0644)
	if st, err := os.Stat(e.Path); err == nil {
		perm = st.Mode().Perm()
	}

	doc := Parse(b)
	if !op(doc) {
		return false, nil
	}
	if err := fsutil.WriteFileAtomic(e.Path, doc.Bytes(), perm); err != nil {
		return false, fmt.Errorf("write %s: %w", e.Path, err)
	}
	return true, nil
}
