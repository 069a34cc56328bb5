// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package worldini

import "fmt"

// A fragment is a run of source lines belonging to one section: a header
// (absent for the lines before the first header) and the lines after it up
// to the next header. A section repeated in the source has several
// fragments.
type fragment struct {
	section *Section
	// key is the section name the header was parsed with. The header is
	// rewritten only if the section has been renamed since.
	key    string
	header *sourceLine
	lines  []*sourceLine
}

// A sourceLine is a physical line as it appeared in the input.
type sourceLine struct {
	kind lineKind
	text string
	eol  string

	// Fields below are set for property lines only.

	// norm is the normalized key, which changes when the property is
	// renamed.
	norm string
	// name is the key as it is written back.
	name string

	keyStart, keyEnd     int
	valueStart, valueEnd int

	// shadowed is set when a later line in the same section assigns the
	// same key. A shadowed line does not hold the property's value.
	shadowed bool
	dropped  bool
}

func newPropertyLine(text, eol, key string) *sourceLine {
	l := &sourceLine{
		kind: propertyLine,
		text: text,
		eol:  eol,
		norm: normalize(key),
		name: key,
	}
	l.keyStart, l.keyEnd, l.valueStart, l.valueEnd = propertySpans(text)
	return l
}

func (l *sourceLine) render(value string) string {
	if l.shadowed {
		value = l.text[l.valueStart:l.valueEnd]
	}
	return l.text[:l.keyStart] + l.name + l.text[l.keyEnd:l.valueStart] + value + l.text[l.valueEnd:]
}

// recordLine adds a source line to the end of the document's layout. It is
// called by Parse after the line has been applied to the document model.
func (d *Document) recordLine(curr *Section, kind lineKind, text, eol, key string) {
	if d.eol == "" {
		d.eol = eol
	}
	switch kind {
	case headerLine:
		d.fragments = append(d.fragments, &fragment{
			section: curr,
			header:  &sourceLine{kind: kind, text: text, eol: eol},
		})
		return
	case propertyLine:
		l := newPropertyLine(text, eol, key)
		for _, prev := range curr.lines {
			if prev.norm == l.norm {
				prev.shadowed = true
			}
		}
		curr.lines = append(curr.lines, l)
		d.lastFragment().lines = append(d.lastFragment().lines, l)
	default:
		f := d.lastFragment()
		f.lines = append(f.lines, &sourceLine{kind: kind, text: text, eol: eol})
	}
}

func (d *Document) lastFragment() *fragment {
	return d.fragments[len(d.fragments)-1]
}

// finishLayout records the section key that each fragment was parsed with.
func (d *Document) finishLayout() {
	for _, f := range d.fragments {
		f.key = f.section.key
	}
}

// live reports whether the fragment's section is still part of d.
func (d *Document) live(f *fragment) bool {
	i, ok := d.index[normalize(f.section.key)]
	return ok && d.sections[i] == f.section
}

// format renders d in the layout of the text it was parsed from. See
// SerializeOptions.Preserve.
func (d *Document) format(eol string) ([]byte, error) {
	if d.eol != "" {
		eol = d.eol
	}
	w := &layoutWriter{eol: eol}

	// The last fragment of each section receives properties that no source
	// line holds.
	last := make(map[*Section]*fragment)
	for _, f := range d.fragments {
		if d.live(f) {
			last[f.section] = f
		}
	}

	for _, f := range d.fragments {
		if !d.live(f) {
			continue
		}
		s := f.section
		if f.header != nil {
			text := f.header.text
			if s.key != f.key {
				start, end := trimmedSpan(text, 0, len(text))
				text = text[:start] + "[" + s.key + "]" + text[end:]
			}
			if err := w.line(text, f.header.eol); err != nil {
				return nil, fmt.Errorf("format world ini: section %q: %w", s.key, err)
			}
		}
		// New properties go after the last property line of the section's
		// last fragment, or right after the header if it has none.
		tail := -1
		if last[s] == f {
			tail = len(f.lines)
			for tail > 0 && f.lines[tail-1].kind != propertyLine {
				tail--
			}
			if tail == 0 && f.header == nil {
				tail = len(f.lines)
			}
		}
		for i, l := range f.lines {
			if i == tail {
				if err := w.properties(s, s.uncovered()); err != nil {
					return nil, err
				}
			}
			if err := w.sourceLine(s, l); err != nil {
				return nil, err
			}
		}
		if tail == len(f.lines) {
			if err := w.properties(s, s.uncovered()); err != nil {
				return nil, err
			}
		}
	}

	// Sections added after parsing.
	for _, s := range d.sections {
		if _, ok := last[s]; ok {
			continue
		}
		if s.key != "" {
			if w.started() {
				w.line("", w.eol)
			}
			if err := w.line("["+s.key+"]", w.eol); err != nil {
				return nil, fmt.Errorf("format world ini: section %q: %w", s.key, err)
			}
		}
		if err := w.properties(s, s.properties); err != nil {
			return nil, err
		}
	}
	return w.buf, nil
}

// uncovered returns the properties of s that are not held by any of its
// source lines.
func (s *Section) uncovered() []Property {
	covered := make(map[string]bool, len(s.lines))
	for _, l := range s.lines {
		if !l.dropped && !l.shadowed {
			covered[l.norm] = true
		}
	}
	var props []Property
	for _, p := range s.properties {
		if !covered[normalize(p.Key)] {
			props = append(props, p)
		}
	}
	return props
}

// dropLines removes the source lines of the property with the normalized
// key norm. An empty norm with all set drops every property line.
func (s *Section) dropLines(norm string, all bool) {
	for _, l := range s.lines {
		if all || l.norm == norm {
			l.dropped = true
		}
	}
}

func (s *Section) renameLines(normFrom, to string) {
	normTo := normalize(to)
	for _, l := range s.lines {
		if !l.dropped && l.norm == normFrom {
			l.norm = normTo
			l.name = to
		}
	}
}

type layoutWriter struct {
	buf []byte
	eol string
	// open is set when the last line written had no terminator.
	open bool
}

func (w *layoutWriter) started() bool {
	return len(w.buf) > 0
}

// line writes text followed by eol. A line with an empty eol is the last line
// of its source; it is terminated with the default terminator only if more
// lines follow.
func (w *layoutWriter) line(text, eol string) error {
	if w.open {
		w.buf = append(w.buf, w.eol...)
	}
	var err error
	if w.buf, err = appendEncoded(w.buf, text); err != nil {
		return err
	}
	if eol == "" {
		w.open = true
		return nil
	}
	w.buf = append(w.buf, eol...)
	w.open = false
	return nil
}

func (w *layoutWriter) sourceLine(s *Section, l *sourceLine) error {
	if l.kind != propertyLine {
		return w.line(l.text, l.eol)
	}
	if l.dropped {
		return nil
	}
	value, ok := s.Lookup(l.norm)
	if !ok {
		return nil
	}
	if err := w.line(l.render(value), l.eol); err != nil {
		return fmt.Errorf("format world ini: section %q: key %q: %w", s.key, l.name, err)
	}
	return nil
}

func (w *layoutWriter) properties(s *Section, props []Property) error {
	for _, p := range props {
		if err := w.line(p.Key+"="+p.Value, w.eol); err != nil {
			return fmt.Errorf("format world ini: section %q: key %q: %w", s.key, p.Key, err)
		}
	}
	return nil
}
