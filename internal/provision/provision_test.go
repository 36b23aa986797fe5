package provision

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sftpjail/sftpjail/internal/config"
	"github.com/sftpjail/sftpjail/internal/sshdconf"
	"github.com/sftpjail/sftpjail/internal/system"
)

const sshdBase = `Port 22
PasswordAuthentication no
Subsystem sftp internal-sftp
`

type stubPrompt struct {
	line     string
	password string
	confirm  bool

	lineCalls     int
	passwordCalls int
}

func (s *stubPrompt) Line(string) (string, error) {
	s.lineCalls++
	return s.line, nil
}

func (s *stubPrompt) Password(string) (string, error) {
	s.passwordCalls++
	return s.password, nil
}

func (s *stubPrompt) Confirm(string) (bool, error) { return s.confirm, nil }

type fixture struct {
	p      *Provisioner
	fake   *system.Fake
	out    *bytes.Buffer
	cfg    *config.Config
	prompt *stubPrompt
}

func newFixture(t *testing.T, perUser bool) *fixture {
	t.Helper()
	sshdPath := filepath.Join(t.TempDir(), "sshd_config")
	require.NoError(t, os.WriteFile(sshdPath, []byte(sshdBase), 0644))

	cfg := &config.Config{
		Username:     "john",
		BaseDir:      "/sftp",
		Group:        "sftpusers",
		SSHDConfig:   sshdPath,
		NologinShell: "/usr/sbin/nologin",
		UploadSubdir: "uploads",
		PerUser:      perUser,
		AssumeYes:    true,
	}
	fake := system.NewFake()
	prompt := &stubPrompt{confirm: true}
	p := New(cfg, fake, prompt)
	out := &bytes.Buffer{}
	p.Out = out
	p.GenPassword = func(int) (string, error) { return "fixedpw123", nil }
	p.HashPassword = func(pw string) (string, error) { return "H:" + pw, nil }
	return &fixture{p: p, fake: fake, out: out, cfg: cfg, prompt: prompt}
}

func (f *fixture) configText(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(f.cfg.SSHDConfig)
	require.NoError(t, err)
	return string(b)
}

func TestAddGroupMode(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, f.p.Add(context.Background()))

	u := f.fake.Users["john"]
	require.NotNil(t, u)
	require.Equal(t, "/sftp/john", u.Home)
	require.Equal(t, "/usr/sbin/nologin", u.Shell)
	require.Equal(t, "H:fixedpw123", u.Hash)

	root := f.fake.Dirs["/sftp/john"]
	require.NotNil(t, root)
	require.Equal(t, 0, root.UID)
	require.Equal(t, os.FileMode(0755), root.Perm)
	child := f.fake.Dirs["/sftp/john/uploads"]
	require.NotNil(t, child)
	require.Equal(t, u.UID, child.UID)

	require.Equal(t, []string{"john"}, f.fake.Groups["sftpusers"])

	text := f.configText(t)
	require.Equal(t, 1, strings.Count(text, sshdconf.GroupMarker("sftpusers")))
	require.Contains(t, text, "ChrootDirectory /sftp/%u")

	require.Equal(t, 1, f.fake.Validations)
	require.Equal(t, 1, f.fake.Reloads)
	require.Contains(t, f.out.String(), "fixedpw123", "generated password must be reported")
}

func TestAddSecondUserReusesGroupBlock(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, f.p.Add(context.Background()))

	f.cfg.Username = "anna"
	require.NoError(t, f.p.Add(context.Background()))

	text := f.configText(t)
	require.Equal(t, 1, strings.Count(text, sshdconf.GroupMarker("sftpusers")))
	require.Equal(t, []string{"anna", "john"}, f.fake.Groups["sftpusers"])
	require.Equal(t, 1, f.fake.Validations, "unedited config needs no re-validation")
}

func TestAddExistingUserMutatesNothing(t *testing.T) {
	f := newFixture(t, false)
	f.fake.Users["john"] = &system.FakeUser{Home: "/sftp/john"}
	before := f.configText(t)

	err := f.p.Add(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	require.Equal(t, before, f.configText(t))
	require.NotContains(t, f.fake.Calls, "CreateUser")
	require.NotContains(t, f.fake.Calls, "MkdirAll")
	require.Empty(t, f.fake.Groups)
}

func TestAddMissingSSHDConfigIsValidationError(t *testing.T) {
	f := newFixture(t, false)
	f.fake.MissingPaths[f.cfg.SSHDConfig] = true

	var verr *ValidationError
	require.ErrorAs(t, f.p.Add(context.Background()), &verr)
}

func TestAddMissingShellIsValidationError(t *testing.T) {
	f := newFixture(t, false)
	f.fake.MissingPaths["/usr/sbin/nologin"] = true

	var verr *ValidationError
	require.ErrorAs(t, f.p.Add(context.Background()), &verr)
	require.NotContains(t, f.fake.Calls, "CreateUser")
}

func TestAddInvalidUsername(t *testing.T) {
	f := newFixture(t, false)
	f.cfg.Username = "John Doe"

	var verr *ValidationError
	require.ErrorAs(t, f.p.Add(context.Background()), &verr)
}

func TestAddDeclinedConfirmAbortsCleanly(t *testing.T) {
	f := newFixture(t, false)
	f.cfg.AssumeYes = false
	f.p.Prompt = &stubPrompt{confirm: false}
	before := f.configText(t)

	require.ErrorIs(t, f.p.Add(context.Background()), ErrAborted)
	require.Equal(t, before, f.configText(t))
	require.Empty(t, f.fake.Users)
}

func TestAddSyntaxErrorWithholdsReload(t *testing.T) {
	f := newFixture(t, false)
	f.fake.Errs["ValidateSSHDConfig"] = errors.New("Bad configuration option")

	err := f.p.Add(context.Background())
	var serr *ConfigSyntaxError
	require.ErrorAs(t, err, &serr)

	require.Equal(t, 0, f.fake.Reloads, "reload must be withheld on a rejected config")
	require.NotContains(t, f.fake.Calls, "CreateUser", "must stop before account creation")
	// The edit is intentionally left on disk for the operator.
	require.Contains(t, f.configText(t), sshdconf.GroupMarker("sftpusers"))
}

func TestAddReloadFailureIsOnlyAWarning(t *testing.T) {
	f := newFixture(t, false)
	f.fake.Errs["ReloadSSHD"] = errors.New("dbus: no such unit")

	require.NoError(t, f.p.Add(context.Background()))
	require.NotNil(t, f.fake.Users["john"])
}

func TestDeleteGroupModeLeavesBlockAlone(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, f.p.Add(context.Background()))

	require.NoError(t, f.p.Delete(context.Background()))

	require.Nil(t, f.fake.Users["john"])
	require.Contains(t, f.fake.Removed, "/sftp/john")
	require.Contains(t, f.configText(t), sshdconf.GroupMarker("sftpusers"))
	require.NotContains(t, f.fake.Groups["sftpusers"], "john")
}

func TestDeletePerUserRemovesExactSpan(t *testing.T) {
	f := newFixture(t, true)
	require.NoError(t, f.p.Add(context.Background()))
	f.cfg.Username = "johnathan"
	require.NoError(t, f.p.Add(context.Background()))

	f.cfg.Username = "john"
	require.NoError(t, f.p.Delete(context.Background()))

	text := f.configText(t)
	require.NotContains(t, text, sshdconf.UserMarker("john")+"\n")
	require.Contains(t, text, "Match User johnathan")
	require.NotContains(t, text, "Match User john\n")
}

func TestDeleteMissingUser(t *testing.T) {
	f := newFixture(t, false)
	var verr *ValidationError
	require.ErrorAs(t, f.p.Delete(context.Background()), &verr)
}

func TestPasswdTouchesOnlyThePassword(t *testing.T) {
	f := newFixture(t, false)
	f.fake.Users["john"] = &system.FakeUser{Home: "/sftp/john", UID: 1001, GID: 1001}
	before := f.configText(t)

	f.cfg.Password = "newpass"
	require.NoError(t, f.p.Passwd(context.Background()))

	require.Equal(t, "H:newpass", f.fake.Users["john"].Hash)
	require.Equal(t, before, f.configText(t))
	require.Empty(t, f.fake.Dirs)
	require.Equal(t, 0, f.fake.Reloads)
}

func TestPasswdMissingUser(t *testing.T) {
	f := newFixture(t, false)
	var verr *ValidationError
	require.ErrorAs(t, f.p.Passwd(context.Background()), &verr)
}

func TestSetupIdempotent(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, f.p.Setup(context.Background()))
	once := f.configText(t)
	require.Equal(t, 1, f.fake.Reloads)

	require.NoError(t, f.p.Setup(context.Background()))
	require.Equal(t, once, f.configText(t))
	require.Equal(t, 1, strings.Count(once, sshdconf.GroupMarker("sftpusers")))
	require.Equal(t, 1, f.fake.Reloads, "no edit, no reload")
	_, ok := f.fake.Groups["sftpusers"]
	require.True(t, ok)
}

func TestSetupRejectedInPerUserMode(t *testing.T) {
	f := newFixture(t, true)
	var verr *ValidationError
	require.ErrorAs(t, f.p.Setup(context.Background()), &verr)
}

func TestUsernamePromptedWhenMissing(t *testing.T) {
	f := newFixture(t, false)
	f.cfg.Username = ""
	f.p.Prompt = &stubPrompt{line: "anna", confirm: true}

	require.NoError(t, f.p.Add(context.Background()))
	require.NotNil(t, f.fake.Users["anna"])
}

func TestInteractivePromptsOnlyForMissingPassword(t *testing.T) {
	f := newFixture(t, false)
	f.cfg.Interactive = true
	f.prompt.password = "typedpw"

	require.NoError(t, f.p.Add(context.Background()))

	require.Zero(t, f.prompt.lineCalls, "a username given up front is never re-prompted")
	require.Equal(t, 1, f.prompt.passwordCalls)
	require.Equal(t, "H:typedpw", f.fake.Users["john"].Hash)
}

func TestInteractiveEmptyPasswordFallsBackToGenerated(t *testing.T) {
	f := newFixture(t, false)
	f.cfg.Interactive = true

	require.NoError(t, f.p.Add(context.Background()))
	require.Equal(t, "H:fixedpw123", f.fake.Users["john"].Hash)
}
