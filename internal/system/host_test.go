package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const passwdFixture = `root:x:0:0:root:/root:/bin/bash
john:x:1001:1001::/sftp/john:/usr/sbin/nologin
`

const groupFixture = `root:x:0:
sftpusers:x:990:john
`

func testHost(t *testing.T) *Host {
	t.Helper()
	dir := t.TempDir()
	passwd := filepath.Join(dir, "passwd")
	group := filepath.Join(dir, "group")
	require.NoError(t, os.WriteFile(passwd, []byte(passwdFixture), 0644))
	require.NoError(t, os.WriteFile(group, []byte(groupFixture), 0644))
	h := NewHost()
	h.PasswdPath = passwd
	h.GroupPath = group
	return h
}

func TestHostUserExists(t *testing.T) {
	h := testHost(t)
	ok, err := h.UserExists("john")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.UserExists("ghost")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHostLookupIDs(t *testing.T) {
	h := testHost(t)
	uid, gid, err := h.LookupIDs("john")
	require.NoError(t, err)
	require.Equal(t, 1001, uid)
	require.Equal(t, 1001, gid)

	_, _, err = h.LookupIDs("ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestHostGroupChecks(t *testing.T) {
	h := testHost(t)
	ok, err := h.GroupExists("sftpusers")
	require.NoError(t, err)
	require.True(t, ok)

	// Already a member: no usermod invocation, no error.
	require.NoError(t, h.AddToGroup("john", "sftpusers"))

	require.ErrorIs(t, h.AddToGroup("john", "ghost"), ErrGroupNotFound)
}

func TestHostDeleteMissingUserIsNoop(t *testing.T) {
	h := testHost(t)
	require.NoError(t, h.DeleteUser("ghost"))
}

func TestHostPathExists(t *testing.T) {
	h := testHost(t)
	ok, err := h.PathExists(h.PasswdPath)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.PathExists(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRunnerCapturesStderr(t *testing.T) {
	r := newRunner()
	require.NoError(t, r.run("sh", "-c", "exit 0"))

	err := r.run("sh", "-c", "echo boom >&2; exit 1")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "boom"), "stderr should be surfaced: %v", err)
}

func TestRunnerStdin(t *testing.T) {
	r := newRunner()
	require.NoError(t, r.runWithStdin([]byte("x\n"), "sh", "-c", "cat >/dev/null"))
}
