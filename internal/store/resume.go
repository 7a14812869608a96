package store

import (
	"fmt"
	"os/exec"
	"slices"
)

// ResumeInfo describes how to hand the terminal over to the external
// resume command for a session.
type ResumeInfo struct {
	Command string   // absolute path to binary
	Args    []string // argv (including argv[0])
	Dir     string   // working directory to resume in (empty = current)
}

// NewResumeInfo builds the handoff for a session. argv is the resume
// command (e.g. ["claude", "--resume"]); the session ID is appended as
// the final argument. Returns an error if the command is not on PATH.
func NewResumeInfo(argv []string, sess Session) (*ResumeInfo, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("resume command is empty")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("resume command %q: %w", argv[0], err)
	}
	return &ResumeInfo{
		Command: path,
		Args:    append(slices.Clone(argv), sess.ID),
		Dir:     sess.Pwd,
	}, nil
}
