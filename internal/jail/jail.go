// Package jail creates and removes chroot jail directory trees.
//
// sshd refuses a chroot whose root is writable by the session user,
// and it refuses at session time, not at config reload, so the
// ownership and mode invariants here are enforced unconditionally on
// every create to self-heal drift.
package jail

import (
	"fmt"
	"path/filepath"

	"github.com/sftpjail/sftpjail/internal/system"
)

type Manager struct {
	sys system.Collaborator
}

func NewManager(sys system.Collaborator) *Manager {
	return &Manager{sys: sys}
}

// Create builds root (root:root, 0755) and root/uploadSubdir owned
// by uid:gid. Ownership and mode are reapplied even when the
// directories already exist.
func (m *Manager) Create(root, uploadSubdir string, uid, gid int) error {
	if err := m.sys.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("create jail root %s: %w", root, err)
	}
	// root:root before anything else touches the tree; a non-root
	// owner makes sshd reject every session into this chroot.
	if err := m.sys.Chown(root, 0, 0); err != nil {
		return fmt.Errorf("chown jail root %s: %w", root, err)
	}
	if err := m.sys.Chmod(root, 0755); err != nil {
		return fmt.Errorf("chmod jail root %s: %w", root, err)
	}

	child := filepath.Join(root, uploadSubdir)
	if err := m.sys.MkdirAll(child, 0755); err != nil {
		return fmt.Errorf("create upload dir %s: %w", child, err)
	}
	if err := m.sys.Chown(child, uid, gid); err != nil {
		return fmt.Errorf("chown upload dir %s: %w", child, err)
	}
	if err := m.sys.Chmod(child, 0755); err != nil {
		return fmt.Errorf("chmod upload dir %s: %w", child, err)
	}
	return nil
}

// Destroy removes the jail tree. A missing root is a no-op.
func (m *Manager) Destroy(root string) error {
	return m.sys.RemoveAll(root)
}
