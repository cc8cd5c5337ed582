package model

import "github.com/charmbracelet/bubbles/runeutil"

// The widgets sanitize whatever SetValue hands them: textinput folds tabs and
// newlines into spaces, textarea expands tabs to four spaces and drops other
// control characters. These mirror them rune for rune.
var (
	lineSanitizer = runeutil.NewSanitizer(runeutil.ReplaceTabs(" "), runeutil.ReplaceNewlines(" "))
	areaSanitizer = runeutil.NewSanitizer()
)

// restore maps a widget's edited value back onto original, the text the
// widget was loaded with. Only the span between the longest common prefix and
// suffix of the shown and edited text is taken from edited; everything the
// user left alone keeps its original runes.
func restore(san runeutil.Sanitizer, original, edited string) string {
	orig := []rune(original)

	// starts[i] is where orig[i] begins in the sanitized text
	starts := make([]int, len(orig)+1)
	var shown []rune
	for i, r := range orig {
		starts[i] = len(shown)
		shown = append(shown, san.Sanitize([]rune{r})...)
	}
	starts[len(orig)] = len(shown)

	ed := []rune(edited)
	if string(shown) == edited {
		return original
	}

	p := 0
	for p < len(shown) && p < len(ed) && shown[p] == ed[p] {
		p++
	}
	s := 0
	for s < len(shown)-p && s < len(ed)-p && shown[len(shown)-1-s] == ed[len(ed)-1-s] {
		s++
	}

	lo := 0
	for i := len(orig); i >= 0; i-- {
		if starts[i] <= p {
			lo = i
			break
		}
	}
	hi := lo
	for hi < len(orig) && starts[hi] < len(shown)-s {
		hi++
	}

	mid := ed[starts[lo] : len(ed)-(len(shown)-starts[hi])]
	out := make([]rune, 0, lo+len(mid)+len(orig)-hi)
	out = append(out, orig[:lo]...)
	out = append(out, mid...)
	return string(append(out, orig[hi:]...))
}
