package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cch-dev/cch/internal/config"
	"github.com/cch-dev/cch/internal/store"
)

var resumeCmd = &cobra.Command{
	Use:     "resume <identifier>",
	Aliases: []string{"r"},
	Short:   "Resume a session (by ID, partial ID, or list index)",
	Long: `Resume a session, handing this terminal over to the resume command.

The identifier is tried as, in order:
  1. A list index from ` + "`cch ls`" + ` (1 = most recent)
  2. An exact session ID
  3. A partial session ID`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

func runResume(cmd *cobra.Command, args []string) error {
	identifier := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	res, err := st.Resolve(identifier)
	if err != nil {
		return err
	}
	switch res.Outcome {
	case store.OutOfRange:
		fmt.Printf("Index %s out of range. Use `cch ls` to see sessions.\n", identifier)
		return nil
	case store.NotFound:
		fmt.Printf("No session found for '%s'.\n", identifier)
		return nil
	}

	sess := *res.Session
	fmt.Printf("Resuming: %s\n", sess.Title)
	fmt.Printf("  Dir: %s\n", sess.Pwd)
	fmt.Printf("  Cmd: %s\n", cfg.ResumeHint(sess.ID))

	info, err := store.NewResumeInfo(cfg.ResumeCommand, sess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resume: %v\n", err)
		return nil
	}

	st.Close()

	// Point of no return: on success the process image is replaced.
	if err := store.ExecResume(info); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to exec %s: %v\n", info.Args[0], err)
	}
	return nil
}
