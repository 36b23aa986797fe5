package sshdconf

import (
	"fmt"
	"path"
)

// EndSentinel is the last directive of every managed block; block
// removal deletes through the first line equal to it.
const EndSentinel = "X11Forwarding no"

// GroupMarker returns the marker comment of the shared group-scoped
// block. It must stay grep-matchable as a literal.
func GroupMarker(group string) string {
	return fmt.Sprintf("# SFTP group config (%s)", group)
}

// UserMarker returns the marker comment of a user-scoped block.
func UserMarker(username string) string {
	return fmt.Sprintf("# SFTP config for %s", username)
}

// GroupBlock renders the shared block matching by group membership.
// The chroot path is %u-templated, so adding or removing members
// never touches the file again.
func GroupBlock(group, baseDir, uploadSubdir string) []string {
	return []string{
		GroupMarker(group),
		"Match Group " + group,
		"    ChrootDirectory " + path.Join(baseDir, "%u"),
		"    ForceCommand internal-sftp -d " + uploadSubdir,
		"    PasswordAuthentication yes",
		"    PermitTunnel no",
		"    AllowAgentForwarding no",
		"    AllowTcpForwarding no",
		"    " + EndSentinel,
	}
}

// UserBlock renders a per-account block with the resolved chroot
// path.
func UserBlock(username, home, uploadSubdir string) []string {
	return []string{
		UserMarker(username),
		"Match User " + username,
		"    ForceCommand internal-sftp -d " + uploadSubdir,
		"    ChrootDirectory " + home,
		"    PasswordAuthentication yes",
		"    PermitTunnel no",
		"    AllowAgentForwarding no",
		"    AllowTcpForwarding no",
		"    " + EndSentinel,
	}
}
