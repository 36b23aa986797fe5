package config

import (
	"github.com/spf13/pflag"
)

// applyFlags overlays command-line flags onto cfg and returns the
// remaining positional arguments. Flag defaults are the values cfg
// already carries, so an unset flag changes nothing and an explicit
// one wins over file and environment.
func applyFlags(cfg *Config, args []string) ([]string, error) {
	fs := pflag.NewFlagSet("sftpjail", pflag.ContinueOnError)

	fs.StringVarP(&cfg.Username, "user", "u", cfg.Username, "account name to operate on")
	fs.StringVarP(&cfg.Password, "password", "p", cfg.Password, "password for the account (generated when omitted)")
	fs.StringVarP(&cfg.BaseDir, "base-dir", "b", cfg.BaseDir, "directory holding the per-user chroot jails")
	fs.StringVarP(&cfg.Group, "group", "g", cfg.Group, "shared SFTP group (group mode)")
	fs.StringVar(&cfg.SSHDConfig, "sshd-config", cfg.SSHDConfig, "path to the sshd configuration file")
	fs.StringVar(&cfg.NologinShell, "shell", cfg.NologinShell, "no-login shell assigned to accounts")
	fs.StringVar(&cfg.UploadSubdir, "upload-dir", cfg.UploadSubdir, "writable subdirectory inside each jail")
	fs.BoolVar(&cfg.PerUser, "per-user", cfg.PerUser, "write one config block per account instead of one group block")
	fs.BoolVarP(&cfg.AssumeYes, "yes", "y", cfg.AssumeYes, "skip the confirmation prompt")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", cfg.Interactive, "prompt for a password instead of generating one when none is given")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "directory for the log file (console only when empty)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}
