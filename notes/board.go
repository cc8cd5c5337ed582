package notes

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"
)

// DeletePrompt is the question asked before a note is removed.
const DeletePrompt = "Delete permanently?"

// Store persists full snapshots of the note list.
type Store interface {
	Load() []Note
	Save(list []Note) error
}

// Board owns the note list, the open draft and the collaborators every
// command needs. It is not safe for concurrent use.
type Board struct {
	store  Store
	clock  Clock
	ids    IDSource
	notify Notifier
	logger *slog.Logger

	list  []Note
	draft *Draft
}

type Option func(*Board)

func WithClock(c Clock) Option         { return func(b *Board) { b.clock = c } }
func WithIDSource(s IDSource) Option   { return func(b *Board) { b.ids = s } }
func WithNotifier(n Notifier) Option   { return func(b *Board) { b.notify = n } }
func WithLogger(l *slog.Logger) Option { return func(b *Board) { b.logger = l } }

// NewBoard loads the current snapshot from store.
func NewBoard(store Store, opts ...Option) *Board {
	b := &Board{
		store:  store,
		clock:  SystemClock,
		ids:    UUIDSource,
		notify: discardNotifier,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.list = store.Load()
	b.logger.Debug("board loaded", "notes", len(b.list))
	return b
}

// Notes returns a copy of the list, newest first.
func (b *Board) Notes() []Note {
	return slices.Clone(b.list)
}

// View returns the notes matching query in list order.
func (b *Board) View(query string) []Note {
	return Filter(b.Notes(), query)
}

func (b *Board) Get(id string) (Note, bool) {
	return Find(b.list, id)
}

func (b *Board) now() time.Time {
	return b.clock.Now().UTC().Truncate(time.Millisecond)
}

// Add creates a note from trimmed title and content and puts it first.
func (b *Board) Add(title, content string) (Note, error) {
	title, content, err := validate(title, content)
	if err != nil {
		b.notify.Notify("Both fields required")
		return Note{}, err
	}
	now := b.now()
	n := Note{
		ID:        b.ids.NewID(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := b.commit(Prepend(b.list, n)); err != nil {
		return n, err
	}
	b.logger.Info("note added", "id", n.ID)
	return n, nil
}

// Delete removes the note with id once c approves. It reports whether the
// removal went ahead; an unknown id is still a successful no-op.
func (b *Board) Delete(id string, c Confirmer) (bool, error) {
	if !c.Confirm(DeletePrompt) {
		return false, nil
	}
	if err := b.commit(Remove(b.list, id)); err != nil {
		return true, err
	}
	b.logger.Info("note deleted", "id", id)
	return true, nil
}

// StartEdit opens a draft of the note with id, replacing any open draft.
func (b *Board) StartEdit(id string) (Draft, bool) {
	n, ok := Find(b.list, id)
	if !ok {
		return Draft{}, false
	}
	b.draft = &Draft{ID: n.ID, Title: n.Title, Content: n.Content}
	return *b.draft, true
}

// Draft returns the open draft, if any.
func (b *Board) Draft() (Draft, bool) {
	if b.draft == nil {
		return Draft{}, false
	}
	return *b.draft, true
}

func (b *Board) Editing() bool { return b.draft != nil }

func (b *Board) SetDraftTitle(title string) {
	if b.draft != nil {
		b.draft.Title = title
	}
}

func (b *Board) SetDraftContent(content string) {
	if b.draft != nil {
		b.draft.Content = content
	}
}

// SaveEdit merges the draft back into the list. Blank fields keep the draft
// open and leave the list untouched.
func (b *Board) SaveEdit() (Note, error) {
	if b.draft == nil {
		return Note{}, fmt.Errorf("save edit: no open draft")
	}
	title, content, err := validate(b.draft.Title, b.draft.Content)
	if err != nil {
		b.notify.Notify("Both fields required")
		return Note{}, err
	}
	d := Draft{ID: b.draft.ID, Title: title, Content: content}
	b.draft = nil

	list, ok := Apply(b.list, d, b.now())
	if !ok {
		return Note{}, fmt.Errorf("save edit %s: %w", d.ID, ErrNoteNotFound)
	}
	n, _ := Find(list, d.ID)
	if err := b.commit(list); err != nil {
		return n, err
	}
	b.logger.Info("note edited", "id", n.ID)
	return n, nil
}

// CancelEdit drops the open draft.
func (b *Board) CancelEdit() {
	b.draft = nil
}

// commit swaps in list and writes the snapshot. The in-memory list is kept
// even when the write fails.
func (b *Board) commit(list []Note) error {
	b.list = list
	if err := b.store.Save(list); err != nil {
		b.logger.Error("save failed", "err", err)
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}
