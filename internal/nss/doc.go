// Package nss reads the local account and group databases
// (/etc/passwd, /etc/group) for existence checks and UID/GID
// resolution. It never writes; account mutations go through the
// system tools (useradd, groupadd, ...) in internal/system.
package nss
