package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestore(t *testing.T) {
	cases := []struct {
		name     string
		original string
		edited   string
		want     string
	}{
		{"untouched", "a\tb", "a    b", "a\tb"},
		{"append", "a\tb", "a    b!", "a\tb!"},
		{"prepend", "\tx", "!    x", "!\tx"},
		{"edit inside tab", "a\tb", "a   b", "a   b"},
		{"replace word", "one\ttwo\tthree", "one    2    three", "one\t2\tthree"},
		{"carriage return kept", "a\r\nb", "a\n\nbc", "a\r\nbc"},
		{"control char kept", "a\x01b", "aXb", "a\x01Xb"},
		{"cleared", "a\tb", "", ""},
		{"empty original", "", "typed", "typed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, restore(areaSanitizer, tc.original, tc.edited))
		})
	}
}

func TestRestore_SingleLine(t *testing.T) {
	assert.Equal(t, "a\tb\nc!", restore(lineSanitizer, "a\tb\nc", "a b c!"))
	assert.Equal(t, "a\tb", restore(lineSanitizer, "a\tb", "a b"))
}
