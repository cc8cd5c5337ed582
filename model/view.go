package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/electr1fy0/noteboard/notes"
)

func (m Model) View() string {
	switch m.overlay {
	case overlayEdit:
		return m.place(m.editView())
	case overlayConfirm:
		return m.place(m.confirmView())
	}

	body := helpStyle.Render("No notes found.")
	if len(m.list.Items()) > 0 {
		body = m.list.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.footerView())
}

// headerView is everything above the list.
func (m Model) headerView() string {
	card := cardStyle
	if m.focus == focusTitle || m.focus == focusContent {
		card = focusedCard
	}
	search := m.searchInput.View() + "  " + helpStyle.Render(notes.CountLabel(len(m.list.Items())))
	return strings.Join([]string{
		titleStyle.Render("noteboard"),
		helpStyle.Render("Add, edit, delete. Saved locally."),
		"",
		card.Render(m.titleInput.View() + "\n" + m.contentInput.View()),
		search,
		"",
	}, "\n")
}

// footerView is the key help and a status line, kept even when empty so the
// list height does not jump.
func (m Model) footerView() string {
	status := m.status
	switch {
	case status == "":
	case m.lastError != "":
		status = errorStyle.Render(status)
	default:
		status = successStyle.Render(status)
	}
	return m.help.View(m.keys) + "\n" + status
}

func (m Model) editView() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Edit Note"))
	s.WriteString("\n\n")
	s.WriteString(m.editTitleInput.View())
	s.WriteString("\n")
	s.WriteString(m.editContentInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.help.View(editKeys{m.keys}))
	if m.lastError != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(m.status))
	}
	return modalStyle.Render(s.String())
}

func (m Model) confirmView() string {
	return modalStyle.Render(warningStyle.Render(m.confirmMsg) + "\n\n" + m.help.View(confirmKeys{m.keys}))
}

func (m Model) place(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
