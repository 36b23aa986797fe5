package cli

import (
	"fmt"
)

// Menu shows the numbered command menu and returns the chosen
// command name, or "" for quit.
func (p *Prompter) Menu() (string, error) {
	fmt.Fprintln(p.out, "sftpjail — chroot-jailed SFTP accounts")
	fmt.Fprintln(p.out, "  1) add a user")
	fmt.Fprintln(p.out, "  2) delete a user")
	fmt.Fprintln(p.out, "  3) change a password")
	fmt.Fprintln(p.out, "  4) initial setup (group mode)")
	fmt.Fprintln(p.out, "  5) quit")

	for {
		choice, err := p.Line("Choice")
		if err != nil {
			return "", err
		}
		switch choice {
		case "1", "add":
			return "add", nil
		case "2", "delete":
			return "delete", nil
		case "3", "passwd":
			return "passwd", nil
		case "4", "setup":
			return "setup", nil
		case "5", "q", "quit", "exit", "":
			return "", nil
		default:
			fmt.Fprintln(p.out, "Unknown choice:", choice)
		}
	}
}
