package sshdconf

import (
	"strings"
)

// Document is a line-level view of a config file. Line content is
// kept verbatim; mutations build a new line slice rather than
// editing text in place.
type Document struct {
	lines []string
}

func Parse(b []byte) *Document {
	if len(b) == 0 {
		return &Document{}
	}
	lines := strings.Split(string(b), "\n")
	// A trailing newline yields one empty trailing element; drop it so
	// Bytes can re-add the final newline uniformly.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Document{lines: lines}
}

func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d *Document) Bytes() []byte {
	if len(d.lines) == 0 {
		return nil
	}
	return []byte(strings.Join(d.lines, "\n") + "\n")
}

// ContainsLiteral reports whether s occurs anywhere in the document,
// as a plain substring. Cheap presence check for EnsureBlock; span
// endpoints use exact-line matching instead.
func (d *Document) ContainsLiteral(s string) bool {
	for _, l := range d.lines {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

// lineEquals compares a file line against a target ignoring
// surrounding whitespace, so an indented sentinel directive still
// matches. Unlike a substring test it cannot match a longer,
// unrelated line.
func lineEquals(line, target string) bool {
	return strings.TrimSpace(line) == strings.TrimSpace(target)
}

// EnsureBlock appends block if marker is not already present, with a
// blank separator line when the document has prior content. Returns
// true when the document was modified.
func (d *Document) EnsureBlock(marker string, block []string) bool {
	if d.ContainsLiteral(marker) {
		return false
	}
	if len(d.lines) > 0 {
		d.lines = append(d.lines, "")
	}
	d.lines = append(d.lines, block...)
	return true
}

// RemoveBlock deletes exactly the lines from the first line equal to
// startMarker through the first subsequent line equal to endSentinel,
// inclusive; every other line keeps its bytes and order. Returns
// false if startMarker is absent; an unterminated block is removed
// through end of file.
func (d *Document) RemoveBlock(startMarker, endSentinel string) bool {
	start := -1
	for i, l := range d.lines {
		if lineEquals(l, startMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return false
	}
	end := len(d.lines) - 1
	for i := start + 1; i < len(d.lines); i++ {
		if lineEquals(d.lines[i], endSentinel) {
			end = i
			break
		}
	}
	d.lines = append(d.lines[:start:start], d.lines[end+1:]...)
	return true
}
