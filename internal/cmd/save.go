package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:     "save <session-id> <title>",
	Aliases: []string{"s"},
	Short:   "Save a session",
	Long: `Save a session ID with a descriptive title and the current directory.

Saving an ID that already exists overwrites its title, directory, and
timestamp. The shorthand form works too:

  cch <session-id> "<title>"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSave(args[0], args[1])
	},
}

func runSave(id, title string) error {
	pwd, err := os.Getwd()
	if err != nil {
		pwd = ""
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Upsert(id, title, pwd); err != nil {
		return err
	}

	fmt.Printf("Saved: %s\n", title)
	fmt.Printf("  ID:  %s\n", id)
	fmt.Printf("  Dir: %s\n", pwd)
	return nil
}
