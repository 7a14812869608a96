// Package cmd provides the CLI commands for cch.
package cmd

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cch-dev/cch/internal/config"
	"github.com/cch-dev/cch/internal/store"
	"github.com/cch-dev/cch/internal/version"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "cch",
	Short: "Save and resume Claude Code session contexts",
	Long: `cch bookmarks interactive Claude Code sessions so you can get back to
them later — by list position, full session ID, or partial ID.

Examples:
  cch abc123 "Fix login bug"    # Shorthand save
  cch ls                        # List saved sessions
  cch r 1                       # Resume the most recent session
  cch rm abc                    # Delete sessions whose ID contains "abc"
  cch web                       # Open the local dashboard`,
	Version: version.Get(),
}

// knownVerbs are first arguments that must never be treated as the
// save shorthand.
var knownVerbs = []string{
	"save", "s", "ls", "list", "find", "f", "resume", "r", "rm", "del",
	"web", "w", "help", "completion", "__complete", "__completeNoDesc",
	"-h", "--help", "-v", "--version",
}

// shorthandSave reports whether args (excluding the program name) are
// the bare two-argument save form: cch <id> "<title>".
func shorthandSave(args []string) (id, title string, ok bool) {
	if len(args) < 2 || slices.Contains(knownVerbs, args[0]) {
		return "", "", false
	}
	// Flag-like arguments go to cobra so unknown flags error instead of
	// being saved as session IDs.
	if strings.HasPrefix(args[0], "-") {
		return "", "", false
	}
	return args[0], args[1], true
}

// Execute runs the CLI.
func Execute() error {
	if id, title, ok := shorthandSave(os.Args[1:]); ok {
		return runSave(id, title)
	}
	return rootCmd.Execute()
}

func init() {
	lsCmd.Flags().IntVarP(&listCount, "n", "n", config.DefaultListLimit, "number of sessions to show")

	webCmd.Flags().IntVarP(&webPort, "port", "p", 0, "port to listen on (default from config, 5111)")
	webCmd.Flags().BoolVar(&webNoOpen, "no-open", false, "don't auto-open browser")
	webCmd.Flags().BoolVarP(&webQuiet, "quiet", "q", false, "suppress HTTP request logging")
	webCmd.Flags().StringVar(&webLogPath, "log", "", "write server log to file")

	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(webCmd)
}

// openStore opens the session store at its standard location.
func openStore() (*store.Store, error) {
	path, err := config.DBPath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
