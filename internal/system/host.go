package system

import (
	"fmt"
	"os"

	"github.com/sftpjail/sftpjail/internal/nss"
)

// Host is the real Collaborator. Account and group mutation go
// through the standard shadow-utils tools; existence checks and
// UID/GID resolution read /etc/passwd and /etc/group directly.
type Host struct {
	PasswdPath string
	GroupPath  string

	r *runner
}

func NewHost() *Host {
	return &Host{
		PasswdPath: "/etc/passwd",
		GroupPath:  "/etc/group",
		r:          newRunner(),
	}
}

func (h *Host) UserExists(name string) (bool, error) {
	pw, err := nss.LoadPasswd(h.PasswdPath)
	if err != nil {
		return false, err
	}
	return pw.Find(name) != nil, nil
}

func (h *Host) CreateUser(name, home, shell string) error {
	// -M: the jail manager owns directory creation.
	return h.r.run("useradd", "-M", "-d", home, "-s", shell, name)
}

func (h *Host) DeleteUser(name string) error {
	exists, err := h.UserExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return h.r.run("userdel", name)
}

func (h *Host) SetPasswordHash(name, hash string) error {
	// chpasswd -e reads "user:hash" lines from stdin.
	line := fmt.Sprintf("%s:%s\n", name, hash)
	return h.r.runWithStdin([]byte(line), "chpasswd", "-e")
}

func (h *Host) LookupIDs(name string) (int, int, error) {
	pw, err := nss.LoadPasswd(h.PasswdPath)
	if err != nil {
		return 0, 0, err
	}
	e := pw.Find(name)
	if e == nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrUserNotFound, name)
	}
	return e.UID, e.GID, nil
}

func (h *Host) GroupExists(name string) (bool, error) {
	gr, err := nss.LoadGroup(h.GroupPath)
	if err != nil {
		return false, err
	}
	return gr.Find(name) != nil, nil
}

func (h *Host) CreateGroup(name string) error {
	return h.r.run("groupadd", name)
}

func (h *Host) AddToGroup(user, group string) error {
	gr, err := nss.LoadGroup(h.GroupPath)
	if err != nil {
		return err
	}
	if gr.Find(group) == nil {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}
	if gr.HasMember(group, user) {
		return nil
	}
	return h.r.run("usermod", "-aG", group, user)
}

func (h *Host) PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (h *Host) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (h *Host) Chown(path string, uid, gid int) error {
	return os.Chown(path, uid, gid)
}

func (h *Host) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}

func (h *Host) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (h *Host) ValidateSSHDConfig(path string) error {
	return h.r.run("sshd", "-t", "-f", path)
}
