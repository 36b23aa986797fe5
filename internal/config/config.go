// Package config resolves the tool's settings from, in rising
// precedence: built-in defaults, an optional YAML config file,
// SFTPJAIL_* environment variables, and command-line flags. Values
// still missing after that (username, password) are collected by
// interactive prompts in the CLI layer; an explicit flag always wins
// over a prompt.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseDir      = "/sftp"
	DefaultGroup        = "sftpusers"
	DefaultSSHDConfig   = "/etc/ssh/sshd_config"
	DefaultNologinShell = "/usr/sbin/nologin"
	DefaultUploadSubdir = "uploads"

	DefaultConfigPath = "/etc/sftpjail/config.yaml"
)

// Config is the resolved, immutable configuration handed to every
// component. Nothing downstream reads flags, env, or files again.
type Config struct {
	Username     string
	Password     string
	BaseDir      string
	Group        string
	SSHDConfig   string
	NologinShell string
	UploadSubdir string
	PerUser      bool
	AssumeYes    bool
	Interactive  bool
	LogDir       string
}

func defaults() *Config {
	return &Config{
		BaseDir:      DefaultBaseDir,
		Group:        DefaultGroup,
		SSHDConfig:   DefaultSSHDConfig,
		NologinShell: DefaultNologinShell,
		UploadSubdir: DefaultUploadSubdir,
	}
}

// Load builds the resolved configuration and returns it along with
// the positional arguments left after flag parsing (the command).
func Load(args []string) (*Config, []string, error) {
	// A .env next to the binary seeds the environment; real
	// environment variables are never overridden by it.
	_ = godotenv.Load()

	cfg := defaults()
	if err := applyFile(cfg, configFilePath()); err != nil {
		return nil, nil, err
	}
	applyEnv(cfg)
	rest, err := applyFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}

func configFilePath() string {
	if p := os.Getenv("SFTPJAIL_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SFTPJAIL_BASE_DIR"); v != "" {
		cfg.BaseDir = v
	}
	if v := os.Getenv("SFTPJAIL_GROUP"); v != "" {
		cfg.Group = v
	}
	if v := os.Getenv("SFTPJAIL_SSHD_CONFIG"); v != "" {
		cfg.SSHDConfig = v
	}
	if v := os.Getenv("SFTPJAIL_NOLOGIN_SHELL"); v != "" {
		cfg.NologinShell = v
	}
	if v := os.Getenv("SFTPJAIL_UPLOAD_SUBDIR"); v != "" {
		cfg.UploadSubdir = v
	}
	if v := os.Getenv("SFTPJAIL_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("SFTPJAIL_PER_USER"); v != "" {
		cfg.PerUser = truthy(v)
	}
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// HomeDir is the jail root of a user: <base>/<username>.
func (c *Config) HomeDir(username string) string {
	return strings.TrimRight(c.BaseDir, "/") + "/" + username
}

var usernameRe = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}$`)

// ValidUsername enforces the conservative POSIX account name rule:
// lowercase letters, digits, underscore and dash, starting with a
// letter or underscore.
func ValidUsername(u string) bool {
	return usernameRe.MatchString(u)
}

// Validate checks the settings that every command depends on.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseDir, "/") {
		return fmt.Errorf("base directory must be absolute: %q", c.BaseDir)
	}
	if !strings.HasPrefix(c.SSHDConfig, "/") {
		return fmt.Errorf("sshd config path must be absolute: %q", c.SSHDConfig)
	}
	if strings.Contains(c.UploadSubdir, "/") || c.UploadSubdir == "" {
		return fmt.Errorf("upload subdirectory must be a single path element: %q", c.UploadSubdir)
	}
	if !c.PerUser && c.Group == "" {
		return fmt.Errorf("group name must not be empty in group mode")
	}
	return nil
}
