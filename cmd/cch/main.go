// cch saves and resumes Claude Code session contexts.
package main

import (
	"fmt"
	"os"

	"github.com/cch-dev/cch/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
