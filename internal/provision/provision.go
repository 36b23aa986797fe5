// Package provision sequences the account, jail, group, and config
// steps behind each command. Every command runs the same stages:
// collect inputs, validate pre-conditions, summarize and confirm,
// execute, report.
//
// There is no transactional rollback: each step is idempotent or
// tolerant of prior partial completion, so the recovery path for a
// failed command is to rerun it.
package provision

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sftpjail/sftpjail/internal/config"
	"github.com/sftpjail/sftpjail/internal/jail"
	"github.com/sftpjail/sftpjail/internal/logger"
	"github.com/sftpjail/sftpjail/internal/secret"
	"github.com/sftpjail/sftpjail/internal/sshdconf"
	"github.com/sftpjail/sftpjail/internal/system"
)

// Prompter is the interactive surface the orchestrator needs; the
// CLI package provides the real one.
type Prompter interface {
	Line(prompt string) (string, error)
	Password(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
}

type Provisioner struct {
	Cfg    *config.Config
	Sys    system.Collaborator
	Jail   *jail.Manager
	Editor *sshdconf.Editor
	Strat  sshdconf.Strategy
	Prompt Prompter
	Out    io.Writer

	// Test seams; default to the secret package.
	GenPassword  func(n int) (string, error)
	HashPassword func(pw string) (string, error)
}

func New(cfg *config.Config, sys system.Collaborator, prompt Prompter) *Provisioner {
	var strat sshdconf.Strategy
	if cfg.PerUser {
		strat = sshdconf.UserScoped{UploadSubdir: cfg.UploadSubdir}
	} else {
		strat = sshdconf.GroupScoped{
			Group:        cfg.Group,
			BaseDir:      cfg.BaseDir,
			UploadSubdir: cfg.UploadSubdir,
		}
	}
	return &Provisioner{
		Cfg:          cfg,
		Sys:          sys,
		Jail:         jail.NewManager(sys),
		Editor:       &sshdconf.Editor{Path: cfg.SSHDConfig},
		Strat:        strat,
		Prompt:       prompt,
		Out:          os.Stdout,
		GenPassword:  secret.Generate,
		HashPassword: secret.Hash,
	}
}

// username returns the account name, prompting if it was not given
// on the command line. An explicit flag always wins over a prompt.
func (p *Provisioner) username() (string, error) {
	name := p.Cfg.Username
	if name == "" {
		var err error
		name, err = p.Prompt.Line("Username")
		if err != nil {
			return "", err
		}
	}
	if !config.ValidUsername(name) {
		return "", validationf("invalid username %q", name)
	}
	return name, nil
}

// password returns the cleartext password to install and whether it
// was generated rather than supplied.
func (p *Provisioner) password() (string, bool, error) {
	if p.Cfg.Password != "" {
		return p.Cfg.Password, false, nil
	}
	if p.Cfg.Interactive {
		pw, err := p.Prompt.Password("Password (empty to generate)")
		if err != nil {
			return "", false, err
		}
		if pw != "" {
			return pw, false, nil
		}
	}
	pw, err := p.GenPassword(secret.DefaultLength)
	if err != nil {
		return "", false, err
	}
	return pw, true, nil
}

func (p *Provisioner) confirm(action string) error {
	if p.Cfg.AssumeYes {
		return nil
	}
	ok, err := p.Prompt.Confirm(fmt.Sprintf("%s — proceed? [y/N]", action))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

// validateConfigIfEdited runs sshd -t after a managed edit. On
// rejection the edit stays on disk and the caller must not reload.
func (p *Provisioner) validateConfigIfEdited(edited bool) error {
	if !edited {
		return nil
	}
	if err := p.Sys.ValidateSSHDConfig(p.Cfg.SSHDConfig); err != nil {
		return &ConfigSyntaxError{Path: p.Cfg.SSHDConfig, Err: err}
	}
	return nil
}

// reload asks sshd to pick up the current config. Failure is a
// warning: the durable state (account, jail, config text) is already
// in place and a later reload will catch up.
func (p *Provisioner) reload(ctx context.Context) {
	if err := p.Sys.ReloadSSHD(ctx); err != nil {
		logger.Warn("ssh daemon reload failed: %v (rerun or reload manually)", err)
	}
}

func (p *Provisioner) setPassword(name, cleartext string) error {
	hash, err := p.HashPassword(cleartext)
	if err != nil {
		return err
	}
	return p.Sys.SetPasswordHash(name, hash)
}

// ensureGroup makes the shared group exist; no-op when present.
func (p *Provisioner) ensureGroup() error {
	exists, err := p.Sys.GroupExists(p.Cfg.Group)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return p.Sys.CreateGroup(p.Cfg.Group)
}
