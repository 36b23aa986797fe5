package sshdconf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupScopedStrategy(t *testing.T) {
	s := GroupScoped{Group: "sftpusers", BaseDir: "/srv/sftp", UploadSubdir: "incoming"}

	require.Equal(t, "group", s.Name())
	require.Equal(t, "# SFTP group config (sftpusers)", s.Marker("john"))
	require.Equal(t, s.Marker("john"), s.Marker("anna"), "one shared marker for everyone")
	require.False(t, s.RemovesOnDelete())

	block := strings.Join(s.Block("john", "/srv/sftp/john"), "\n")
	require.Contains(t, block, "Match Group sftpusers")
	require.Contains(t, block, "ChrootDirectory /srv/sftp/%u")
	require.Contains(t, block, "ForceCommand internal-sftp -d incoming")
	require.NotContains(t, block, "john", "group block must not mention any user")
}

func TestUserScopedStrategy(t *testing.T) {
	s := UserScoped{UploadSubdir: "uploads"}

	require.Equal(t, "per-user", s.Name())
	require.Equal(t, "# SFTP config for john", s.Marker("john"))
	require.True(t, s.RemovesOnDelete())

	block := strings.Join(s.Block("john", "/sftp/john"), "\n")
	require.Contains(t, block, "Match User john")
	require.Contains(t, block, "ChrootDirectory /sftp/john")
	require.NotContains(t, block, "%u")
}

func TestBlockDirectiveSet(t *testing.T) {
	for _, block := range [][]string{
		GroupBlock("g", "/sftp", "uploads"),
		UserBlock("u", "/sftp/u", "uploads"),
	} {
		text := strings.Join(block, "\n")
		for _, directive := range []string{
			"PasswordAuthentication yes",
			"PermitTunnel no",
			"AllowAgentForwarding no",
			"AllowTcpForwarding no",
		} {
			require.Contains(t, text, directive)
		}
		require.Equal(t, "    "+EndSentinel, block[len(block)-1])
		require.True(t, strings.HasPrefix(block[0], "# "), "marker comment first")
	}
}
