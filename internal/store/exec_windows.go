//go:build windows

package store

import (
	"errors"
	"os"
	"os/exec"
)

// ExecResume runs the resume command and exits with its status.
// Windows does not support syscall.Exec, so the command runs as a child
// inheriting the terminal's streams and the parent exits with the
// child's code. The saved directory is used only if it still exists.
func ExecResume(info *ResumeInfo) error {
	cmd := exec.Command(info.Command, info.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if info.Dir != "" {
		if _, err := os.Stat(info.Dir); err == nil {
			cmd.Dir = info.Dir
		}
	}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}
	os.Exit(0)
	return nil // unreachable
}
