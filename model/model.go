package model

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/electr1fy0/noteboard/notes"
)

func newContentArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(4)
	ta.SetWidth(60)
	return ta
}

func newTitleInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Width = 58
	return ti
}

// New builds the board screen with the add form focused.
func New(board *notes.Board, opts Options) Model {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 80
	si.Width = 30

	m := Model{
		board:            board,
		opts:             opts,
		keys:             defaultKeys(),
		help:             help.New(),
		titleInput:       newTitleInput("Title"),
		contentInput:     newContentArea("Write note..."),
		searchInput:      si,
		list:             newNoteList(),
		editTitleInput:   newTitleInput("Title"),
		editContentInput: newContentArea("Content"),
	}
	m.titleInput.Focus()
	m.refreshList()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(board *notes.Board, opts Options) error {
	_, err := tea.NewProgram(New(board, opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.lastError = ""
}

func (m *Model) setError(msg string, err error) {
	m.status = msg
	m.lastError = err.Error()
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.searchInput.Blur()
	switch f {
	case focusTitle:
		return m.titleInput.Focus()
	case focusContent:
		return m.contentInput.Focus()
	case focusSearch:
		return m.searchInput.Focus()
	}
	return nil
}

func (m *Model) setEditFocus(f editField) tea.Cmd {
	m.editFocus = f
	if f == editTitle {
		m.editContentInput.Blur()
		return m.editTitleInput.Focus()
	}
	m.editTitleInput.Blur()
	return m.editContentInput.Focus()
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	inner := max(w-8, 20)
	m.titleInput.Width = inner
	m.contentInput.SetWidth(inner)
	m.editTitleInput.Width = inner - 4
	m.editContentInput.SetWidth(inner - 4)
	m.help.Width = w
	m.list.SetSize(w, max(h-lipgloss.Height(m.headerView())-lipgloss.Height(m.footerView()), 3))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case editorFinishedMsg:
		m.applyEditorResult(msg)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.overlay {
		case overlayConfirm:
			return m.updateConfirm(msg)
		case overlayEdit:
			return m.updateEdit(msg)
		}
		return m.updateMain(msg)
	}

	// blink and other widget messages go to whatever has focus
	var cmd tea.Cmd
	if m.overlay == overlayEdit {
		if m.editFocus == editTitle {
			m.editTitleInput, cmd = m.editTitleInput.Update(msg)
		} else {
			m.editContentInput, cmd = m.editContentInput.Update(msg)
		}
		return m, cmd
	}
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
	case focusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Export):
		m.export()
		return m, nil
	}

	switch m.focus {
	case focusTitle, focusContent:
		return m.updateForm(msg)
	case focusSearch:
		return m.updateSearch(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submitAdd()
	case key.Matches(msg, m.keys.Editor):
		return m, m.openEditor(targetAdd, m.contentInput.Value())
	case m.focus == focusTitle && msg.Type == tea.KeyEnter:
		return m, m.setFocus(focusContent)
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

// submitAdd runs the add command. Inputs are cleared and the title refocused
// only when the note was created.
func (m *Model) submitAdd() tea.Cmd {
	content := restore(areaSanitizer, m.addContent, m.contentInput.Value())
	n, err := m.board.Add(m.titleInput.Value(), content)
	if errors.Is(err, notes.ErrFieldsRequired) {
		m.setError("Both fields required", err)
		return nil
	}
	m.titleInput.SetValue("")
	m.contentInput.SetValue("")
	m.addContent = ""
	m.refreshList()
	if err != nil {
		m.setError("Added but not saved: "+err.Error(), err)
	} else {
		m.setStatus("Added: " + n.Title)
	}
	return m.setFocus(focusTitle)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyDown:
		return m, m.setFocus(focusList)
	case tea.KeyEsc:
		m.searchInput.SetValue("")
		m.refreshList()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refreshList()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.Add):
		return m, m.setFocus(focusTitle)
	case key.Matches(msg, m.keys.Edit):
		if n, ok := m.selected(); ok {
			return m, m.startEdit(n.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if n, ok := m.selected(); ok {
			m.pendingDelete = n.ID
			m.confirmMsg = fmt.Sprintf("%s '%s' (y/N)", notes.DeletePrompt, n.Title)
			m.overlay = overlayConfirm
		}
	default:
		// cursor and paging keys
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var answer bool
	switch {
	case key.Matches(msg, m.keys.Confirm):
		answer = true
	case key.Matches(msg, m.keys.Decline):
		answer = false
	default:
		return m, nil
	}

	id := m.pendingDelete
	m.pendingDelete = ""
	m.overlay = overlayNone
	deleted, err := m.board.Delete(id, notes.ConfirmFunc(func(string) bool { return answer }))
	switch {
	case err != nil:
		m.setError("Delete not saved: "+err.Error(), err)
	case deleted:
		m.setStatus("Deleted")
	default:
		m.setStatus("Kept")
	}
	m.refreshList()
	return m, nil
}

func (m *Model) startEdit(id string) tea.Cmd {
	d, ok := m.board.StartEdit(id)
	if !ok {
		return nil
	}
	m.editLoaded = d
	m.editTitleInput.SetValue(d.Title)
	m.editContentInput.SetValue(d.Content)
	m.overlay = overlayEdit
	m.setStatus("")
	return m.setEditFocus(editTitle)
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.board.CancelEdit()
		m.overlay = overlayNone
		m.setStatus("Edit cancelled")
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.saveEdit()
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		return m, m.setEditFocus(1 - m.editFocus)
	case key.Matches(msg, m.keys.Editor):
		return m, m.openEditor(targetEdit, m.editContentInput.Value())
	}

	var cmd tea.Cmd
	if m.editFocus == editTitle {
		m.editTitleInput, cmd = m.editTitleInput.Update(msg)
		m.board.SetDraftTitle(restore(lineSanitizer, m.editLoaded.Title, m.editTitleInput.Value()))
	} else {
		m.editContentInput, cmd = m.editContentInput.Update(msg)
		m.board.SetDraftContent(restore(areaSanitizer, m.editLoaded.Content, m.editContentInput.Value()))
	}
	return m, cmd
}

func (m *Model) saveEdit() tea.Cmd {
	n, err := m.board.SaveEdit()
	switch {
	case errors.Is(err, notes.ErrFieldsRequired):
		m.setError("Both fields required", err)
		return nil
	case errors.Is(err, notes.ErrNoteNotFound):
		m.setError("Note no longer exists", err)
	case err != nil:
		m.setError("Edit not saved: "+err.Error(), err)
	default:
		m.setStatus("Saved: " + n.Title)
	}
	m.overlay = overlayNone
	m.refreshList()
	return m.setFocus(m.focus)
}
