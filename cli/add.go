package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/electr1fy0/noteboard/utils"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		title, content string
		useEditor      bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note to the top of the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if useEditor {
				out, err := utils.OpenEditorWithContent(utils.ResolveEditor(a.cfg.Editor), content)
				if err != nil {
					return fmt.Errorf("editor: %w", err)
				}
				content = out
			}
			board, err := a.openBoard(cmd)
			if err != nil {
				return err
			}
			n, err := board.Add(title, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", n.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "note content")
	cmd.Flags().BoolVarP(&useEditor, "editor", "e", false, "write the content in $EDITOR")
	return cmd
}
