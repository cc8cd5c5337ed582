package notes

import (
	"fmt"
	"strings"
)

// Filter returns the notes whose "title content" contains query, ignoring case.
// An empty query returns list itself. Order is preserved.
func Filter(list []Note, query string) []Note {
	if query == "" {
		return list
	}
	q := strings.ToLower(query)
	out := make([]Note, 0, len(list))
	for _, n := range list {
		if strings.Contains(strings.ToLower(n.Title+" "+n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

// CountLabel renders n as "1 note" or "n notes".
func CountLabel(n int) string {
	if n == 1 {
		return "1 note"
	}
	return fmt.Sprintf("%d notes", n)
}
