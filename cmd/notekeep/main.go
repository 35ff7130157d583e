package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "notekeep",
		Short:        "Personal notes client",
		Long:         "notekeep keeps short text notes: create, edit, pin, archive, trash.\nWithout a signed-in identity everything stays in memory for the session.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newListCmd(),
		newSearchCmd(),
		newNewCmd(),
		newEditCmd(),
		newToggleCmd("archive", "Toggle the archive flag of a note"),
		newToggleCmd("pin", "Toggle the pin flag of a note"),
		newTrashCmd(),
		newRestoreCmd(),
		newPurgeCmd(),
		newColorCmd(),
		newRemindCmd(),
		newLoginCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
