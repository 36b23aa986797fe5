package jail

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sftpjail/sftpjail/internal/system"
)

func TestCreateSetsOwnershipInvariants(t *testing.T) {
	fake := system.NewFake()
	m := NewManager(fake)

	require.NoError(t, m.Create("/sftp/john", "uploads", 1001, 1001))

	root := fake.Dirs["/sftp/john"]
	require.NotNil(t, root)
	require.Equal(t, 0, root.UID, "jail root must be owned by root")
	require.Equal(t, 0, root.GID)
	require.Equal(t, os.FileMode(0755), root.Perm)

	child := fake.Dirs["/sftp/john/uploads"]
	require.NotNil(t, child)
	require.Equal(t, 1001, child.UID)
	require.Equal(t, 1001, child.GID)
	require.Equal(t, os.FileMode(0755), child.Perm)
}

func TestCreateHealsDriftedRoot(t *testing.T) {
	fake := system.NewFake()
	// Pre-existing root with an owner/mode sshd would reject.
	fake.Dirs["/sftp/john"] = &system.FakeDir{UID: 1001, GID: 1001, Perm: 0777}
	m := NewManager(fake)

	require.NoError(t, m.Create("/sftp/john", "uploads", 1001, 1001))

	root := fake.Dirs["/sftp/john"]
	require.Equal(t, 0, root.UID)
	require.Equal(t, os.FileMode(0755), root.Perm)
}

func TestCreateStopsOnChownFailure(t *testing.T) {
	fake := system.NewFake()
	fake.Errs["Chown"] = errors.New("operation not permitted")
	m := NewManager(fake)

	err := m.Create("/sftp/john", "uploads", 1001, 1001)
	require.Error(t, err)
	require.NotContains(t, fake.Calls, "Chmod", "must not proceed past a failed chown")
}

func TestDestroyToleratesAbsence(t *testing.T) {
	fake := system.NewFake()
	m := NewManager(fake)

	require.NoError(t, m.Destroy("/sftp/ghost"))
	require.Equal(t, []string{"/sftp/ghost"}, fake.Removed)
}
