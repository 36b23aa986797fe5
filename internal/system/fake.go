package system

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Fake is an in-memory Collaborator for tests. Inject failures per
// operation name via Errs; inspect state directly afterwards.
type Fake struct {
	Users        map[string]*FakeUser
	Groups       map[string][]string
	Dirs         map[string]*FakeDir
	MissingPaths map[string]bool

	Reloads     int
	Validations int
	Removed     []string
	Calls       []string
	Errs        map[string]error

	nextUID int
}

type FakeUser struct {
	Home  string
	Shell string
	Hash  string
	UID   int
	GID   int
}

type FakeDir struct {
	UID  int
	GID  int
	Perm os.FileMode
}

func NewFake() *Fake {
	return &Fake{
		Users:        map[string]*FakeUser{},
		Groups:       map[string][]string{},
		Dirs:         map[string]*FakeDir{},
		MissingPaths: map[string]bool{},
		Errs:         map[string]error{},
		nextUID:      1000,
	}
}

func (f *Fake) call(op string) error {
	f.Calls = append(f.Calls, op)
	return f.Errs[op]
}

func (f *Fake) UserExists(name string) (bool, error) {
	if err := f.call("UserExists"); err != nil {
		return false, err
	}
	_, ok := f.Users[name]
	return ok, nil
}

func (f *Fake) CreateUser(name, home, shell string) error {
	if err := f.call("CreateUser"); err != nil {
		return err
	}
	if _, ok := f.Users[name]; ok {
		return fmt.Errorf("useradd: user %q already exists", name)
	}
	uid := f.nextUID
	f.nextUID++
	f.Users[name] = &FakeUser{Home: home, Shell: shell, UID: uid, GID: uid}
	return nil
}

func (f *Fake) DeleteUser(name string) error {
	if err := f.call("DeleteUser"); err != nil {
		return err
	}
	delete(f.Users, name)
	for g, members := range f.Groups {
		var out []string
		for _, m := range members {
			if m != name {
				out = append(out, m)
			}
		}
		f.Groups[g] = out
	}
	return nil
}

func (f *Fake) SetPasswordHash(name, hash string) error {
	if err := f.call("SetPasswordHash"); err != nil {
		return err
	}
	u, ok := f.Users[name]
	if !ok {
		return fmt.Errorf("chpasswd: user %q does not exist", name)
	}
	u.Hash = hash
	return nil
}

func (f *Fake) LookupIDs(name string) (int, int, error) {
	if err := f.call("LookupIDs"); err != nil {
		return 0, 0, err
	}
	u, ok := f.Users[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUserNotFound, name)
	}
	return u.UID, u.GID, nil
}

func (f *Fake) GroupExists(name string) (bool, error) {
	if err := f.call("GroupExists"); err != nil {
		return false, err
	}
	_, ok := f.Groups[name]
	return ok, nil
}

func (f *Fake) CreateGroup(name string) error {
	if err := f.call("CreateGroup"); err != nil {
		return err
	}
	if _, ok := f.Groups[name]; ok {
		return fmt.Errorf("groupadd: group %q already exists", name)
	}
	f.Groups[name] = nil
	return nil
}

func (f *Fake) AddToGroup(user, group string) error {
	if err := f.call("AddToGroup"); err != nil {
		return err
	}
	members, ok := f.Groups[group]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}
	for _, m := range members {
		if m == user {
			return nil
		}
	}
	f.Groups[group] = append(members, user)
	sort.Strings(f.Groups[group])
	return nil
}

// MissingPaths marks paths PathExists should report absent; every
// other path exists.
func (f *Fake) PathExists(path string) (bool, error) {
	if err := f.call("PathExists"); err != nil {
		return false, err
	}
	return !f.MissingPaths[path], nil
}

func (f *Fake) MkdirAll(path string, perm os.FileMode) error {
	if err := f.call("MkdirAll"); err != nil {
		return err
	}
	if _, ok := f.Dirs[path]; !ok {
		f.Dirs[path] = &FakeDir{Perm: perm}
	}
	return nil
}

func (f *Fake) Chown(path string, uid, gid int) error {
	if err := f.call("Chown"); err != nil {
		return err
	}
	d, ok := f.Dirs[path]
	if !ok {
		return fmt.Errorf("chown %s: no such file or directory", path)
	}
	d.UID = uid
	d.GID = gid
	return nil
}

func (f *Fake) Chmod(path string, perm os.FileMode) error {
	if err := f.call("Chmod"); err != nil {
		return err
	}
	d, ok := f.Dirs[path]
	if !ok {
		return fmt.Errorf("chmod %s: no such file or directory", path)
	}
	d.Perm = perm
	return nil
}

func (f *Fake) RemoveAll(path string) error {
	if err := f.call("RemoveAll"); err != nil {
		return err
	}
	f.Removed = append(f.Removed, path)
	for p := range f.Dirs {
		if p == path || strings.HasPrefix(p, path+"/") {
			delete(f.Dirs, p)
		}
	}
	return nil
}

func (f *Fake) ValidateSSHDConfig(path string) error {
	if err := f.call("ValidateSSHDConfig"); err != nil {
		return err
	}
	f.Validations++
	return nil
}

func (f *Fake) ReloadSSHD(ctx context.Context) error {
	if err := f.call("ReloadSSHD"); err != nil {
		return err
	}
	f.Reloads++
	return nil
}
