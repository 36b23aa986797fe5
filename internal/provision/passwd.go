package provision

import (
	"context"
	"fmt"
)

// Passwd replaces an account's password. No directory or config
// changes happen here.
func (p *Provisioner) Passwd(ctx context.Context) error {
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

	password, generated, err := p.password()
	if err != nil {
		return err
	}

	if err := p.confirm("change password for " + name); err != nil {
		return err
	}
	if err := p.setPassword(name, password); err != nil {
		return err
	}

	fmt.Fprintf(p.Out, "Password for %s updated.\n", name)
	if generated {
		fmt.Fprintf(p.Out, "  password: %s\n", password)
	}
	return nil
}
