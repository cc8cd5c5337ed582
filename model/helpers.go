package model

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/electr1fy0/noteboard/storage"
	"github.com/electr1fy0/noteboard/utils"
)

func (m *Model) export() {
	dir := m.opts.ExportDir
	if dir == "" {
		dir = fmt.Sprintf("noteboard_export_%d", time.Now().Unix())
	}
	count, err := storage.Export(m.opts.Fs, dir, m.board.Notes())
	if err != nil {
		m.setError("Export failed: "+err.Error(), err)
		return
	}
	m.setStatus(fmt.Sprintf("Exported %d notes to %s/", count, dir))
}

// openEditor suspends the program and runs the external editor on text.
func (m *Model) openEditor(target editorTarget, text string) tea.Cmd {
	s, err := utils.NewEditSession(utils.ResolveEditor(m.opts.Editor), text)
	if err != nil {
		m.setError("Editor failed: "+err.Error(), err)
		return nil
	}
	return tea.ExecProcess(s.Cmd, func(err error) tea.Msg {
		return editorFinishedMsg{target: target, session: s, err: err}
	})
}

func (m *Model) applyEditorResult(msg editorFinishedMsg) {
	out, err := msg.session.Result()
	if msg.err != nil {
		err = msg.err
	}
	if err != nil {
		m.setError("Editor failed: "+err.Error(), err)
		return
	}
	switch msg.target {
	case targetAdd:
		m.addContent = out
		m.contentInput.SetValue(out)
	case targetEdit:
		if m.overlay != overlayEdit {
			return
		}
		m.editLoaded.Content = out
		m.editContentInput.SetValue(out)
		m.board.SetDraftContent(out)
	}
	m.setStatus("Content updated from editor")
}
