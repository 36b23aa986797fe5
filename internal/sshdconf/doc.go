// Package sshdconf maintains the managed block inside an sshd_config
// file. A managed block is a contiguous run of lines starting at a
// unique marker comment and ending at a fixed sentinel directive.
//
// Edits are line-based and append-only: unrelated directives are
// never rewritten, and repeated Ensure calls are no-ops once the
// block exists. Persistence goes through an atomic write while an
// advisory flock on a sidecar file serializes concurrent sftpjail
// invocations.
package sshdconf
