package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/electr1fy0/noteboard/notes"
)

func newEditCmd(a *app) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a note's title or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.openBoard(cmd)
			if err != nil {
				return err
			}
			if _, ok := board.StartEdit(args[0]); !ok {
				return fmt.Errorf("%s: %w", args[0], notes.ErrNoteNotFound)
			}
			if cmd.Flags().Changed("title") {
				board.SetDraftTitle(title)
			}
			if cmd.Flags().Changed("content") {
				board.SetDraftContent(content)
			}
			n, err := board.SaveEdit()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", n.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	return cmd
}
