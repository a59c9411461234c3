package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsalter/cmi5quest/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved game",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes your hero and all progress. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.SaveRepo().Reset(context.Background()); err != nil {
			return fmt.Errorf("reset save: %w", err)
		}
		fmt.Println("Save deleted. A fresh adventure awaits.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation")
}
