package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electr1fy0/noteboard/notes"
	"github.com/electr1fy0/noteboard/storage"
	"github.com/electr1fy0/noteboard/utils"
)

type harness struct {
	t     *testing.T
	m     Model
	kv    *storage.MemKV
	board *notes.Board
	fs    afero.Fs
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	kv := storage.NewMemKV()
	h := &harness{t: t, kv: kv, fs: afero.NewMemMapFs()}
	h.board = h.reload()
	h.open(100, 40)
	return h
}

// open builds a fresh screen over the current board at the given size.
func (h *harness) open(width, height int) {
	h.m = New(h.board, Options{Fs: h.fs, ExportDir: "/out"})
	h.send(tea.WindowSizeMsg{Width: width, Height: height})
}

// reload builds a new board over the same storage, like a restart.
func (h *harness) reload() *notes.Board {
	clock := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	return notes.NewBoard(storage.New(h.kv),
		notes.WithClock(notes.ClockFunc(func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		})),
		notes.WithIDSource(notes.IDFunc(func() string {
			n++
			return fmt.Sprintf("n%d", n)
		})),
	)
}

func (h *harness) send(msgs ...tea.Msg) {
	h.t.Helper()
	for _, msg := range msgs {
		next, _ := h.m.Update(msg)
		h.m = next.(Model)
	}
}

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func (h *harness) add(title, content string) {
	h.t.Helper()
	h.send(typed(title), keyOf(tea.KeyTab), typed(content), keyOf(tea.KeyCtrlS))
}

func titles(list []notes.Note) []string {
	out := []string{}
	for _, n := range list {
		out = append(out, n.Title)
	}
	return out
}

func TestModel_AddScenario(t *testing.T) {
	h := newHarness(t)

	h.add("A", "x")
	assert.Equal(t, "", h.m.titleInput.Value())
	assert.Equal(t, "", h.m.contentInput.Value())
	assert.Equal(t, focusTitle, h.m.focus)
	assert.True(t, h.m.titleInput.Focused())

	h.add("B", "y")
	assert.Equal(t, []string{"B", "A"}, titles(h.m.visible()))
	assert.Contains(t, h.m.View(), "2 notes")
	assert.Equal(t, []string{"B", "A"}, titles(h.reload().Notes()))
}

func TestModel_AddRejectsBlank(t *testing.T) {
	h := newHarness(t)

	h.send(typed("only title"), keyOf(tea.KeyTab), typed("   "), keyOf(tea.KeyCtrlS))

	assert.Empty(t, h.board.Notes())
	assert.Equal(t, "only title", h.m.titleInput.Value())
	assert.Equal(t, "   ", h.m.contentInput.Value())
	assert.Equal(t, "Both fields required", h.m.status)
	assert.Contains(t, h.m.View(), "Both fields required")
}

func TestModel_TitleEnterMovesToContent(t *testing.T) {
	h := newHarness(t)
	h.send(typed("q"), keyOf(tea.KeyEnter))
	assert.Equal(t, focusContent, h.m.focus)
	assert.Equal(t, "q", h.m.titleInput.Value())
}

func TestModel_Search(t *testing.T) {
	h := newHarness(t)
	h.add("A", "x")
	h.add("B", "y")

	h.send(keyOf(tea.KeyTab), keyOf(tea.KeyTab), typed("X"))
	require.Equal(t, focusSearch, h.m.focus)
	assert.Equal(t, []string{"A"}, titles(h.m.visible()))
	assert.Contains(t, h.m.View(), "1 note")

	h.send(typed("zz"))
	assert.Contains(t, h.m.View(), "No notes found.")
	assert.Contains(t, h.m.View(), "0 notes")

	h.send(keyOf(tea.KeyEsc))
	assert.Len(t, h.m.visible(), 2)
}

func TestModel_Delete(t *testing.T) {
	h := newHarness(t)
	h.add("A", "x")
	h.add("B", "y")

	h.send(keyOf(tea.KeyShiftTab))
	require.Equal(t, focusList, h.m.focus)

	h.send(typed("d"))
	require.Equal(t, overlayConfirm, h.m.overlay)
	assert.Contains(t, h.m.View(), "Delete permanently?")

	h.send(typed("n"))
	assert.Equal(t, overlayNone, h.m.overlay)
	assert.Len(t, h.board.Notes(), 2)

	h.send(typed("j"), typed("d"), typed("y"))
	assert.Equal(t, []string{"B"}, titles(h.board.Notes()))
	assert.Equal(t, []string{"B"}, titles(h.reload().Notes()))
	assert.Equal(t, 0, h.m.list.Index())
}

func TestModel_EditSave(t *testing.T) {
	h := newHarness(t)
	h.add("A", "x")
	h.add("B", "y")
	before := h.board.Notes()

	h.send(keyOf(tea.KeyShiftTab), typed("e"))
	require.Equal(t, overlayEdit, h.m.overlay)
	assert.Equal(t, "B", h.m.editTitleInput.Value())
	assert.Contains(t, h.m.View(), "Edit Note")

	h.send(keyOf(tea.KeyBackspace), typed("B2"))
	d, ok := h.board.Draft()
	require.True(t, ok)
	assert.Equal(t, "B2", d.Title)
	assert.Equal(t, before, h.board.Notes())

	h.send(keyOf(tea.KeyTab), typed(" more"), keyOf(tea.KeyCtrlS))
	assert.Equal(t, overlayNone, h.m.overlay)

	after := h.reload().Notes()
	require.Len(t, after, 2)
	assert.Equal(t, "B2", after[0].Title)
	assert.Equal(t, "y more", after[0].Content)
	assert.True(t, after[0].UpdatedAt.After(before[0].UpdatedAt))
	assert.Equal(t, before[1], after[1])
}

func TestModel_EditCancel(t *testing.T) {
	h := newHarness(t)
	h.add("A", "x")
	before := h.board.Notes()

	h.send(keyOf(tea.KeyShiftTab), typed("e"), typed("zzz"), keyOf(tea.KeyEsc))

	assert.Equal(t, overlayNone, h.m.overlay)
	assert.False(t, h.board.Editing())
	assert.Equal(t, before, h.board.Notes())
	assert.Equal(t, before, h.reload().Notes())
}

func TestModel_EditRejectsBlank(t *testing.T) {
	h := newHarness(t)
	h.add("A", "x")

	h.send(keyOf(tea.KeyShiftTab), typed("e"), keyOf(tea.KeyBackspace), keyOf(tea.KeyCtrlS))

	assert.Equal(t, overlayEdit, h.m.overlay)
	assert.Equal(t, "Both fields required", h.m.status)
	assert.Equal(t, "A", h.board.Notes()[0].Title)
}

func TestModel_QuitOnlyFromList(t *testing.T) {
	h := newHarness(t)
	h.send(typed("q"))
	assert.Equal(t, "q", h.m.titleInput.Value())

	h.send(keyOf(tea.KeyShiftTab))
	_, cmd := h.m.Update(typed("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Export(t *testing.T) {
	h := newHarness(t)
	h.add("A", "x")
	h.send(keyOf(tea.KeyCtrlX))

	assert.Equal(t, "Exported 1 notes to /out/", h.m.status)
	ok, err := afero.Exists(h.fs, "/out/a-n1.md")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestModel_EditorResult(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte("from editor"), 0o600))

	h.send(editorFinishedMsg{target: targetAdd, session: &utils.EditSession{Path: path}})

	assert.Equal(t, "from editor", h.m.contentInput.Value())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestModel_ListScrollsWithinWindow(t *testing.T) {
	h := newHarness(t)
	for i := range 40 {
		_, err := h.board.Add(fmt.Sprintf("note %02d", i), "body")
		require.NoError(t, err)
	}
	h.open(80, 24)
	h.send(keyOf(tea.KeyShiftTab))
	require.Equal(t, focusList, h.m.focus)

	for range 39 {
		h.send(typed("j"))
	}

	n, ok := h.m.selected()
	require.True(t, ok)
	assert.Equal(t, "note 00", n.Title)
	view := h.m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 24)
	assert.Contains(t, view, "note 00")
	assert.NotContains(t, view, "note 39")

	h.send(typed("k"))
	n, _ = h.m.selected()
	assert.Equal(t, "note 01", n.Title)
}

func TestModel_DeleteKeepsSelectionInRange(t *testing.T) {
	h := newHarness(t)
	h.add("A", "x")
	h.add("B", "y")
	h.add("C", "z")

	h.send(keyOf(tea.KeyShiftTab), typed("j"), typed("j"), typed("d"), typed("y"))

	assert.Equal(t, []string{"C", "B"}, titles(h.m.visible()))
	n, ok := h.m.selected()
	require.True(t, ok)
	assert.Equal(t, "B", n.Title)
}

func TestModel_EditKeepsUntouchedText(t *testing.T) {
	h := newHarness(t)
	title := strings.Repeat("long title ", 14) + "\tend"
	content := "a\tb\n\tindented\r\nlast"
	orig, err := h.board.Add(title, content)
	require.NoError(t, err)
	require.Greater(t, len([]rune(orig.Title)), 150)
	h.open(100, 40)

	h.send(keyOf(tea.KeyShiftTab), typed("e"))
	require.Equal(t, overlayEdit, h.m.overlay)
	h.send(typed("!"), keyOf(tea.KeyTab), typed("!"), keyOf(tea.KeyCtrlS))
	require.Equal(t, overlayNone, h.m.overlay)

	after := h.reload().Notes()
	require.Len(t, after, 1)
	assert.Equal(t, title+"!", after[0].Title)
	assert.Equal(t, content+"!", after[0].Content)
}

func TestModel_EditOnlyContentKeepsTitle(t *testing.T) {
	h := newHarness(t)
	title := "tab\tin title"
	_, err := h.board.Add(title, "x")
	require.NoError(t, err)
	h.open(100, 40)

	h.send(keyOf(tea.KeyShiftTab), typed("e"), keyOf(tea.KeyTab), typed("y"), keyOf(tea.KeyCtrlS))

	after := h.reload().Notes()
	require.Len(t, after, 1)
	assert.Equal(t, title, after[0].Title)
	assert.Equal(t, "xy", after[0].Content)
}

func TestModel_EditorContentKeepsTabs(t *testing.T) {
	h := newHarness(t)
	_, err := h.board.Add("A", "x")
	require.NoError(t, err)
	h.open(100, 40)
	h.send(keyOf(tea.KeyShiftTab), typed("e"), keyOf(tea.KeyTab))

	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte("func main() {\n\treturn\n}"), 0o600))
	h.send(editorFinishedMsg{target: targetEdit, session: &utils.EditSession{Path: path}})
	h.send(typed("!"), keyOf(tea.KeyCtrlS))

	after := h.reload().Notes()
	require.Len(t, after, 1)
	assert.Equal(t, "func main() {\n\treturn\n}!", after[0].Content)
}

func TestModel_AddFromEditorKeepsTabs(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte("col1\tcol2"), 0o600))

	h.send(typed("T"))
	h.send(editorFinishedMsg{target: targetAdd, session: &utils.EditSession{Path: path}})
	h.send(keyOf(tea.KeyCtrlS))

	after := h.reload().Notes()
	require.Len(t, after, 1)
	assert.Equal(t, "col1\tcol2", after[0].Content)
	assert.Empty(t, h.m.addContent)
}
