package notes

import (
	"slices"
	"time"
)

// Prepend returns a new list with n in front of list.
func Prepend(list []Note, n Note) []Note {
	out := make([]Note, 0, len(list)+1)
	out = append(out, n)
	return append(out, list...)
}

// Remove returns a new list without the note identified by id.
// A missing id yields an equal copy.
func Remove(list []Note, id string) []Note {
	out := make([]Note, 0, len(list))
	for _, n := range list {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// Apply merges d back into the matching note of list, stamping it with now.
// The stamp never moves backwards, even when the clock does.
// The second result reports whether a note with the draft's id was found.
func Apply(list []Note, d Draft, now time.Time) ([]Note, bool) {
	i := slices.IndexFunc(list, func(n Note) bool { return n.ID == d.ID })
	if i < 0 {
		return list, false
	}
	out := slices.Clone(list)
	out[i].Title = d.Title
	out[i].Content = d.Content
	if now.After(out[i].UpdatedAt) {
		out[i].UpdatedAt = now
	}
	return out, true
}

// Find returns the note with the given id.
func Find(list []Note, id string) (Note, bool) {
	i := slices.IndexFunc(list, func(n Note) bool { return n.ID == id })
	if i < 0 {
		return Note{}, false
	}
	return list[i], true
}
