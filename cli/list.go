package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/electr1fy0/noteboard/notes"
	"github.com/electr1fy0/noteboard/storage"
)

func newListCmd(a *app) *cobra.Command {
	var (
		query  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.openBoard(cmd)
			if err != nil {
				return err
			}
			view := board.View(query)
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := storage.Encode(view)
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := json.Indent(&buf, data, "", "  "); err != nil {
					return err
				}
				buf.WriteByte('\n')
				_, err = buf.WriteTo(out)
				return err
			}

			if len(view) == 0 {
				fmt.Fprintln(out, "No notes found.")
			}
			for _, n := range view {
				fmt.Fprintf(out, "%s  %s\n", n.ID, n.Title)
				for _, line := range strings.Split(n.Content, "\n") {
					fmt.Fprintf(out, "    %s\n", line)
				}
			}
			fmt.Fprintln(out, notes.CountLabel(len(view)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "search", "s", "", "only notes whose title or content contains this, ignoring case")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored JSON form")
	return cmd
}
