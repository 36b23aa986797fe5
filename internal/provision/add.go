package provision

import (
	"context"
	"fmt"

	"github.com/sftpjail/sftpjail/internal/logger"
)

// Add provisions a new jailed SFTP account.
func (p *Provisioner) Add(ctx context.Context) error {
	name, err := p.username()
	if err != nil {
		return err
	}
	password, generated, err := p.password()
	if err != nil {
		return err
	}
	home := p.Cfg.HomeDir(name)

	// Pre-conditions; nothing has been mutated yet.
	exists, err := p.Sys.UserExists(name)
	if err != nil {
		return err
	}
	if exists {
		return validationf("account %q already exists", name)
	}
	if ok, err := p.Sys.PathExists(p.Cfg.SSHDConfig); err != nil {
		return err
	} else if !ok {
		return validationf("sshd config not found: %s", p.Cfg.SSHDConfig)
	}
	if ok, err := p.Sys.PathExists(p.Cfg.NologinShell); err != nil {
		return err
	} else if !ok {
		return validationf("no-login shell not found: %s", p.Cfg.NologinShell)
	}

	p.summarizeAdd(name, home, generated)
	if err := p.confirm("create account " + name); err != nil {
		return err
	}

	if !p.Cfg.PerUser {
		if err := p.ensureGroup(); err != nil {
			return err
		}
	}

	edited, err := p.Editor.Ensure(p.Strat.Marker(name), p.Strat.Block(name, home))
	if err != nil {
		return err
	}
	if edited {
		logger.Info("added %s block to %s", p.Strat.Name(), p.Cfg.SSHDConfig)
	}
	if err := p.validateConfigIfEdited(edited); err != nil {
		return err
	}

	if err := p.Sys.CreateUser(name, home, p.Cfg.NologinShell); err != nil {
		return err
	}
	uid, gid, err := p.Sys.LookupIDs(name)
	if err != nil {
		return err
	}
	if err := p.Jail.Create(home, p.Cfg.UploadSubdir, uid, gid); err != nil {
		return err
	}
	if err := p.setPassword(name, password); err != nil {
		return err
	}
	if !p.Cfg.PerUser {
		if err := p.Sys.AddToGroup(name, p.Cfg.Group); err != nil {
			return err
		}
	}
	p.reload(ctx)

	p.reportAdd(name, home, password, generated)
	return nil
}

func (p *Provisioner) summarizeAdd(name, home string, generated bool) {
	pwSource := "supplied"
	if generated {
		pwSource = "generated"
	}
	fmt.Fprintf(p.Out, "About to create SFTP account:\n")
	fmt.Fprintf(p.Out, "  username:     %s\n", name)
	fmt.Fprintf(p.Out, "  jail root:    %s (root:root 0755)\n", home)
	fmt.Fprintf(p.Out, "  upload dir:   %s/%s (%s)\n", home, p.Cfg.UploadSubdir, name)
	fmt.Fprintf(p.Out, "  shell:        %s\n", p.Cfg.NologinShell)
	fmt.Fprintf(p.Out, "  password:     %s\n", pwSource)
	if p.Cfg.PerUser {
		fmt.Fprintf(p.Out, "  sshd config:  per-user block in %s\n", p.Cfg.SSHDConfig)
	} else {
		fmt.Fprintf(p.Out, "  group:        %s\n", p.Cfg.Group)
		fmt.Fprintf(p.Out, "  sshd config:  shared group block in %s\n", p.Cfg.SSHDConfig)
	}
}

func (p *Provisioner) reportAdd(name, home, password string, generated bool) {
	fmt.Fprintf(p.Out, "\nAccount %s is ready.\n", name)
	fmt.Fprintf(p.Out, "  upload to: %s/%s\n", home, p.Cfg.UploadSubdir)
	if generated {
		// Only record of the generated password; nothing is stored.
		fmt.Fprintf(p.Out, "  password:  %s\n", password)
	}
}
