// Package bitmap renders a message through a glyph template.
//
// Every non-space character of the template is replaced by a character of
// the message chosen by column: message[column % len(message)]. Spaces stay
// spaces, so the same column on every line pulls the same message character.
package bitmap

import (
	"errors"
	"strings"
)

// ErrEmptyFill is returned when there is no message to draw with.
var ErrEmptyFill = errors.New("fill text must not be empty")

// Render draws fill through template. Lines are joined with "\n"; a trailing
// "\r" on a template line is dropped.
func Render(template, fill string) (string, error) {
	if fill == "" {
		return "", ErrEmptyFill
	}
	ink := []rune(fill)

	var b strings.Builder
	b.Grow(len(template))
	for n, line := range strings.Split(template, "\n") {
		if n > 0 {
			b.WriteByte('\n')
		}
		col := 0
		for _, r := range strings.TrimSuffix(line, "\r") {
			if r == ' ' {
				b.WriteByte(' ')
			} else {
				b.WriteRune(ink[col%len(ink)])
			}
			col++
		}
	}
	return b.String(), nil
}
