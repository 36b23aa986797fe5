package sshdconf

// Strategy selects between the two historical config layouts: one
// shared block matched by group membership, or one block per
// account. The orchestrator is written against this interface and
// never inspects the concrete variant.
type Strategy interface {
	Name() string
	// Marker identifies the managed block relevant to username.
	Marker(username string) string
	// Block renders the full managed block, marker line first.
	// home is the account's resolved jail root; the group variant
	// ignores it.
	Block(username, home string) []string
	// RemovesOnDelete reports whether deleting an account must also
	// remove its block. The group variant never edits the file after
	// setup.
	RemovesOnDelete() bool
}

// GroupScoped matches by membership in Group; the chroot path is
// %u-templated under BaseDir.
type GroupScoped struct {
	Group        string
	BaseDir      string
	UploadSubdir string
}

func (s GroupScoped) Name() string { return "group" }

func (s GroupScoped) Marker(string) string { return GroupMarker(s.Group) }

func (s GroupScoped) Block(_, _ string) []string {
	return GroupBlock(s.Group, s.BaseDir, s.UploadSubdir)
}

func (s GroupScoped) RemovesOnDelete() bool { return false }

// UserScoped writes one block per account, keyed by username.
type UserScoped struct {
	UploadSubdir string
}

func (s UserScoped) Name() string { return "per-user" }

func (s UserScoped) Marker(username string) string { return UserMarker(username) }

func (s UserScoped) Block(username, home string) []string {
	return UserBlock(username, home, s.UploadSubdir)
}

func (s UserScoped) RemovesOnDelete() bool { return true }
