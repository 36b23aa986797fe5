package provision

import (
	"context"
	"fmt"

	"github.com/sftpjail/sftpjail/internal/logger"
	"github.com/sftpjail/sftpjail/internal/sshdconf"
)

// Delete retires an account and its jail. In group mode the shared
// config block is left alone; only the per-user strategy removes its
// block.
func (p *Provisioner) Delete(ctx context.Context) error {
	name, err := p.username()
	if err != nil {
		return err
	}

	exists, err := p.Sys.UserExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return validationf("account %q does not exist", name)
	}

	home := p.Cfg.HomeDir(name)
	fmt.Fprintf(p.Out, "About to delete account %s and remove %s.\n", name, home)
	if err := p.confirm("delete account " + name); err != nil {
		return err
	}

	if err := p.Sys.DeleteUser(name); err != nil {
		return err
	}
	if err := p.Jail.Destroy(home); err != nil {
		return err
	}

	edited := false
	if p.Strat.RemovesOnDelete() {
		removed, err := p.Editor.Remove(p.Strat.Marker(name), sshdconf.EndSentinel)
		if err != nil {
			return err
		}
		if removed {
			logger.Info("removed block for %s from %s", name, p.Cfg.SSHDConfig)
		}
		edited = removed
	}
	if err := p.validateConfigIfEdited(edited); err != nil {
		return err
	}
	p.reload(ctx)

	fmt.Fprintf(p.Out, "Account %s deleted.\n", name)
	return nil
}
