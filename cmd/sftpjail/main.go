package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sftpjail/sftpjail/internal/cli"
	"github.com/sftpjail/sftpjail/internal/config"
	"github.com/sftpjail/sftpjail/internal/logger"
	"github.com/sftpjail/sftpjail/internal/provision"
	"github.com/sftpjail/sftpjail/internal/system"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, rest, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("%v", err)
		return 1
	}
	if err := logger.Init(cfg.LogDir); err != nil {
		logger.Warn("file logging disabled: %v", err)
	}
	defer logger.Close()

	command := ""
	switch len(rest) {
	case 0:
	case 1:
		command = rest[0]
	default:
		logger.Error("expected at most one command, got %v", rest)
		return 1
	}

	prompt := cli.NewPrompter()
	if command == "" {
		command, err = prompt.Menu()
		if err != nil {
			logger.Error("%v", err)
			return 1
		}
		if command == "" {
			return 0
		}
	}

	p := provision.New(cfg, system.NewHost(), prompt)
	ctx := context.Background()

	switch command {
	case "add":
		err = p.Add(ctx)
	case "delete":
		err = p.Delete(ctx)
	case "passwd":
		err = p.Passwd(ctx)
	case "setup":
		err = p.Setup(ctx)
	default:
		logger.Error("unknown command %q (want add, delete, passwd, or setup)", command)
		return 1
	}

	if err != nil {
		if errors.Is(err, provision.ErrAborted) {
			fmt.Println("Nothing changed.")
			return 0
		}
		logger.Error("%s: %v", command, err)
		return 1
	}
	return 0
}
