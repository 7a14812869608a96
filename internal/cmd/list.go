package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cch-dev/cch/internal/config"
	"github.com/cch-dev/cch/internal/store"
)

var listCount int

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List saved sessions",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var findCmd = &cobra.Command{
	Use:     "find <query>",
	Aliases: []string{"f"},
	Short:   "Search sessions by title or ID",
	Args:    cobra.ExactArgs(1),
	RunE:    runFind,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	limit := listCount
	if !cmd.Flags().Changed("n") {
		limit = cfg.ListLimit
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sessions, err := st.List(limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No saved sessions.")
		return nil
	}

	printSessions(sessions, cfg)
	return nil
}

func runFind(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sessions, err := st.Search(query)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Printf("No sessions matching '%s'.\n", query)
		return nil
	}

	printSessions(sessions, cfg)
	return nil
}

func printSessions(sessions []store.Session, cfg config.Config) {
	for i, s := range sessions {
		fmt.Printf("[%d] %s\n", i+1, s.Title)
		fmt.Printf("    ID:  %s\n", s.ID)
		fmt.Printf("    Cmd: %s\n", cfg.ResumeHint(s.ID))
		fmt.Printf("    Dir: %s  (%s)\n", s.Pwd, shortTimestamp(s.CreatedAt))
		if i < len(sessions)-1 {
			fmt.Println()
		}
	}
}

// shortTimestamp trims a stored timestamp to minute precision for display.
func shortTimestamp(ts string) string {
	if len(ts) > 16 {
		ts = ts[:16]
	}
	return strings.ReplaceAll(ts, "T", " ")
}
