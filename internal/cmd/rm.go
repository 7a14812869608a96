package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cch-dev/cch/internal/store"
)

var rmCmd = &cobra.Command{
	Use:     "rm <identifier>",
	Aliases: []string{"del"},
	Short:   "Delete a saved session",
	Long: `Delete sessions by list index, exact ID, or partial ID.

A list index deletes exactly the session at that position. An exact ID
deletes that one session. Anything else deletes every session whose ID
contains the identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	identifier := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	res, err := st.DeleteByIdentifier(identifier)
	if err != nil {
		return err
	}
	switch res.Outcome {
	case store.OutOfRange:
		fmt.Printf("Index %s out of range.\n", identifier)
	case store.NotFound:
		fmt.Printf("No session found for '%s'.\n", identifier)
	default:
		if res.Session != nil {
			fmt.Printf("Deleted: %s (%s...)\n", res.Session.Title, shortID(res.Session.ID))
		} else {
			fmt.Printf("Deleted %d session(s).\n", res.Count)
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
