//go:build !windows

package store

import "syscall"

// ExecResume replaces the current process with the resume command.
// On success, this function does not return. Changing into the saved
// directory is best-effort: if it has been deleted since the session
// was saved, the handoff proceeds from the current directory.
func ExecResume(info *ResumeInfo) error {
	if info.Dir != "" {
		_ = syscall.Chdir(info.Dir)
	}
	return syscall.Exec(info.Command, info.Args, syscall.Environ())
}
