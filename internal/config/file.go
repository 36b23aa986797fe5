package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with pointer fields so an absent key is
// distinguishable from an explicit zero value.
type fileConfig struct {
	BaseDir      *string `yaml:"base_dir"`
	Group        *string `yaml:"group"`
	SSHDConfig   *string `yaml:"sshd_config"`
	NologinShell *string `yaml:"nologin_shell"`
	UploadSubdir *string `yaml:"upload_subdir"`
	PerUser      *bool   `yaml:"per_user"`
	LogDir       *string `yaml:"log_dir"`
}

// applyFile overlays values from the YAML config file at path. A
// missing file is fine; a malformed one is not.
func applyFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.BaseDir != nil {
		cfg.BaseDir = *fc.BaseDir
	}
	if fc.Group != nil {
		cfg.Group = *fc.Group
	}
	if fc.SSHDConfig != nil {
		cfg.SSHDConfig = *fc.SSHDConfig
	}
	if fc.NologinShell != nil {
		cfg.NologinShell = *fc.NologinShell
	}
	if fc.UploadSubdir != nil {
		cfg.UploadSubdir = *fc.UploadSubdir
	}
	if fc.PerUser != nil {
		cfg.PerUser = *fc.PerUser
	}
	if fc.LogDir != nil {
		cfg.LogDir = *fc.LogDir
	}
	return nil
}
