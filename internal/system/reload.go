package system

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/sftpjail/sftpjail/internal/logger"
)

// The OpenSSH unit is sshd.service on RHEL-family hosts and
// ssh.service on Debian-family ones; try both.
var sshdUnits = []string{"sshd.service", "ssh.service"}

// ReloadSSHD asks systemd over D-Bus to reload the SSH daemon,
// falling back to systemctl when the system bus is unreachable.
func (h *Host) ReloadSSHD(ctx context.Context) error {
	conn, err := dbus.SystemBus()
	if err != nil {
		logger.Warn("system bus unavailable (%v); falling back to systemctl", err)
		return h.reloadViaSystemctl()
	}
	obj := conn.Object("org.freedesktop.systemd1", dbus.ObjectPath("/org/freedesktop/systemd1"))

	var lastErr error
	for _, unit := range sshdUnits {
		var job dbus.ObjectPath
		call := obj.CallWithContext(ctx, "org.freedesktop.systemd1.Manager.ReloadUnit", 0, unit, "replace")
		if err := call.Store(&job); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("reload ssh daemon: %w", lastErr)
}

func (h *Host) reloadViaSystemctl() error {
	var lastErr error
	for _, unit := range sshdUnits {
		if err := h.r.run("systemctl", "reload", unit); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("reload ssh daemon: %w", lastErr)
}
