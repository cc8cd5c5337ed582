package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/spf13/afero"

	"github.com/electr1fy0/noteboard/notes"
	"github.com/electr1fy0/noteboard/utils"
)

// focus is the main-screen widget receiving keys.
type focus int

const (
	focusTitle focus = iota
	focusContent
	focusSearch
	focusList
)

const focusCount = 4

type overlay int

const (
	overlayNone overlay = iota
	overlayEdit
	overlayConfirm
)

type editField int

const (
	editTitle editField = iota
	editContent
)

// editorTarget says which content area an external editor session feeds.
type editorTarget int

const (
	targetAdd editorTarget = iota
	targetEdit
)

type editorFinishedMsg struct {
	target  editorTarget
	session *utils.EditSession
	err     error
}

// Options carries what the screen needs besides the board.
type Options struct {
	Editor    string
	ExportDir string
	Fs        afero.Fs
}

type Model struct {
	board *notes.Board
	opts  Options
	keys  keyMap
	help  help.Model

	width  int
	height int

	focus   focus
	overlay overlay

	titleInput   textinput.Model
	contentInput textarea.Model
	searchInput  textinput.Model
	list         list.Model

	// text loaded into the add content area from an external editor
	addContent string

	editTitleInput   textinput.Model
	editContentInput textarea.Model
	editFocus        editField
	// the draft as the edit widgets were loaded with it
	editLoaded notes.Draft

	pendingDelete string
	confirmMsg    string

	status    string
	lastError string
}
