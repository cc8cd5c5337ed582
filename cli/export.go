package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/electr1fy0/noteboard/storage"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export DIR",
		Short: "Write every note as a markdown file with front matter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.openBoard(cmd)
			if err != nil {
				return err
			}
			count, err := storage.Export(a.fs, args[0], board.Notes())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s/\n", count, args[0])
			return nil
		},
	}
}
