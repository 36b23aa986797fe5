package provision

import (
	"context"
	"fmt"

	"github.com/sftpjail/sftpjail/internal/logger"
)

// Setup performs the one-time group-mode initialization: make sure
// the shared group and the shared config block exist. It is safe to
// rerun.
func (p *Provisioner) Setup(ctx context.Context) error {
	if p.Cfg.PerUser {
		return validationf("setup only applies to group mode; per-user blocks are written by add")
	}
	if ok, err := p.Sys.PathExists(p.Cfg.SSHDConfig); err != nil {
		return err
	} else if !ok {
		return validationf("sshd config not found: %s", p.Cfg.SSHDConfig)
	}

	fmt.Fprintf(p.Out, "About to ensure group %s and its block in %s.\n", p.Cfg.Group, p.Cfg.SSHDConfig)
	if err := p.confirm("set up group " + p.Cfg.Group); err != nil {
		return err
	}

	if err := p.ensureGroup(); err != nil {
		return err
	}
	edited, err := p.Editor.Ensure(p.Strat.Marker(""), p.Strat.Block("", ""))
	if err != nil {
		return err
	}
	if err := p.validateConfigIfEdited(edited); err != nil {
		return err
	}
	if edited {
		logger.Info("added group block for %s to %s", p.Cfg.Group, p.Cfg.SSHDConfig)
		p.reload(ctx)
	}

	fmt.Fprintf(p.Out, "Group mode ready (group %s, chroot %s/%%u).\n", p.Cfg.Group, p.Cfg.BaseDir)
	return nil
}
