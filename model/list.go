package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/electr1fy0/noteboard/notes"
)

type listItem struct {
	note notes.Note
}

func (i listItem) FilterValue() string { return i.note.Title }

func (i listItem) Title() string { return i.note.Title }

// Description flattens the content onto the delegate's single line.
func (i listItem) Description() string {
	return strings.Join(strings.Fields(i.note.Content), " ")
}

func newNoteList() list.Model {
	d := list.NewDefaultDelegate()
	sel := selectedStyle.GetForeground()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(sel).BorderForeground(sel)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.BorderForeground(sel)

	l := list.New([]list.Item{}, d, 0, 0)
	l.Title = "Notes"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// refreshList loads the board's filtered view into the list. The board's
// filter is the only one; the widget's own filtering stays off.
func (m *Model) refreshList() {
	view := m.board.View(m.searchInput.Value())
	items := make([]list.Item, 0, len(view))
	for _, n := range view {
		items = append(items, listItem{note: n})
	}
	m.list.SetItems(items)
	// SetItems leaves the cursor where it was
	if m.list.Index() >= len(items) {
		m.list.Select(max(len(items)-1, 0))
	}
}

// visible is the filtered view the list shows.
func (m Model) visible() []notes.Note {
	items := m.list.Items()
	out := make([]notes.Note, 0, len(items))
	for _, it := range items {
		out = append(out, it.(listItem).note)
	}
	return out
}

func (m Model) selected() (notes.Note, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it.note, ok
}
