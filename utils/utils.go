package utils

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor picks the editor command: configured, then $VISUAL and
// $EDITOR, then nvim, vi and finally ed.
func ResolveEditor(configured string) string {
	for _, ed := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(ed) != "" {
			return ed
		}
	}
	for _, name := range []string{"nvim", "vi"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return "ed"
}

// EditSession is a temp file seeded with text plus the command that edits it.
// The command is left unstarted so a caller can hand it to tea.ExecProcess.
type EditSession struct {
	Path string
	Cmd  *exec.Cmd
}

func NewEditSession(editor, initial string) (*EditSession, error) {
	args := strings.Fields(editor)
	if len(args) == 0 {
		return nil, errors.New("no editor configured")
	}

	tmp, err := os.CreateTemp("", "noteboard-*.md")
	if err != nil {
		return nil, err
	}
	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}

	cmd := exec.Command(args[0], append(args[1:], tmp.Name())...)
	return &EditSession{Path: tmp.Name(), Cmd: cmd}, nil
}

// Result reads the edited text back and removes the temp file.
func (s *EditSession) Result() (string, error) {
	defer os.Remove(s.Path)
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// OpenEditorWithContent runs the editor on the terminal and blocks until it exits.
func OpenEditorWithContent(editor, initial string) (string, error) {
	s, err := NewEditSession(editor, initial)
	if err != nil {
		return "", err
	}
	s.Cmd.Stdin = os.Stdin
	s.Cmd.Stdout = os.Stdout
	s.Cmd.Stderr = os.Stderr

	if err := s.Cmd.Run(); err != nil {
		os.Remove(s.Path)
		return "", err
	}
	return s.Result()
}
