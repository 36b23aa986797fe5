package system

import (
	"context"
	"errors"
	"os"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
)

// Collaborator is the narrow surface sftpjail needs from the host:
// account and group mutation, filesystem ownership, sshd config
// validation and service reload. The provisioning logic never builds
// command lines itself; it issues typed requests here, which keeps
// it testable against the Fake.
type Collaborator interface {
	UserExists(name string) (bool, error)
	// CreateUser adds an account without materializing its home
	// directory; directory creation belongs to the jail manager.
	CreateUser(name, home, shell string) error
	DeleteUser(name string) error
	// SetPasswordHash installs a pre-hashed crypt(3) string, so the
	// cleartext never crosses a process boundary.
	SetPasswordHash(name, hash string) error
	// LookupIDs resolves the numeric UID and primary GID of name.
	LookupIDs(name string) (uid, gid int, err error)

	GroupExists(name string) (bool, error)
	CreateGroup(name string) error
	AddToGroup(user, group string) error

	PathExists(path string) (bool, error)
	MkdirAll(path string, perm os.FileMode) error
	Chown(path string, uid, gid int) error
	Chmod(path string, perm os.FileMode) error
	RemoveAll(path string) error

	// ValidateSSHDConfig syntax-checks the daemon config; a non-nil
	// error means the file must not be loaded by the service.
	ValidateSSHDConfig(path string) error
	ReloadSSHD(ctx context.Context) error
}
