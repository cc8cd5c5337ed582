package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/electr1fy0/noteboard/notes"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a note after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.openBoard(cmd)
			if err != nil {
				return err
			}
			c := a.confirmer(cmd)
			if yes {
				c = notes.Confirmed
			}
			deleted, err := board.Delete(args[0], c)
			if err != nil {
				return err
			}
			if deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Kept")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
