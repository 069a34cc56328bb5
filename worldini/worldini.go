// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package worldini

import (
	"fmt"
	"io"
	"strings"
)

// A Document is an ordered collection of sections. The zero value is an
// empty document. Documents can be read by multiple concurrent goroutines,
// but methods that modify a Document require exclusive access.
type Document struct {
	// sections[0] is the top-level section once the document is initialized.
	sections []*Section
	index    map[string]int

	// fragments is the layout of the parsed text, used by Serialize with
	// Preserve set. eol is the first line terminator in the text.
	fragments []*fragment
	eol       string
}

// A Section is an ordered collection of properties keyed case-insensitively.
// Sections are owned by a Document and obtained through Document.Section or
// Document.AppendSection. A Section removed from its Document is detached:
// changes to it are no longer visible through the Document.
type Section struct {
	key        string
	properties []Property
	index      map[string]int
	lines      []*sourceLine
}

// A Property is a single key/value pair.
type Property struct {
	Key   string
	Value string
}

// ParseOptions holds optional parameters for Parse.
type ParseOptions struct {
	// Ignored is called for each non-blank line that has no effect on the
	// document, such as stray text or a malformed section header. lineno is
	// 1-based. Ignored does not change how the document is built.
	Ignored func(lineno int, line string)
}

// Parse parses a Windows-1252 encoded World.ini. Nil options are treated
// identically as passing the zero value. Parse accepts any input: at worst,
// every line is ignored and the document has only an empty top-level
// section.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(data []byte, opts *ParseOptions) *Document {
	d := new(Document)
	d.init()
	curr := d.sections[0]
	d.fragments = []*fragment{{section: curr}}
	lineno := 1
	for rest := Decode(data); rest != ""; lineno++ {
		before := rest
		var line string
		line, rest = nextLine(rest)
		eol := before[len(line) : len(before)-len(rest)]
		kind, key, value := classifyLine(line)
		switch kind {
		case headerLine:
			curr = d.AppendSection(key)
		case propertyLine:
			curr.Set(key, value)
		case ignorableLine:
			if opts != nil && opts.Ignored != nil && trimSpace(line) != "" {
				opts.Ignored(lineno, line)
			}
		}
		d.recordLine(curr, kind, line, eol, key)
	}
	d.finishLayout()
	return d
}

// Read reads all of r and parses it with Parse. The only errors Read
// returns come from r.
func Read(r io.Reader, opts *ParseOptions) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read world ini: %w", err)
	}
	return Parse(data, opts), nil
}

func (d *Document) init() {
	if len(d.sections) > 0 {
		return
	}
	d.sections = []*Section{newSection("")}
	d.index = map[string]int{"": 0}
}

func newSection(key string) *Section {
	return &Section{key: key}
}

// normalize returns the key used to compare section names and property
// keys. Only ASCII letters are folded.
func normalize(key string) string {
	for i := 0; i < len(key); i++ {
		if 'A' <= key[i] && key[i] <= 'Z' {
			return strings.Map(toLowerASCII, key)
		}
	}
	return key
}

func toLowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Section returns the section with the given name or nil if the document
// has no such section. Section("") returns the top-level section.
func (d *Document) Section(name string) *Section {
	if d == nil {
		return nil
	}
	i, ok := d.index[normalize(name)]
	if !ok {
		return nil
	}
	return d.sections[i]
}

// HasSection reports whether the document has a section with the given
// name.
func (d *Document) HasSection(name string) bool {
	return d.Section(name) != nil
}

// AppendSection returns the section with the given name, appending a new
// empty one to the end of the document if necessary.
func (d *Document) AppendSection(name string) *Section {
	d.init()
	norm := normalize(name)
	if i, ok := d.index[norm]; ok {
		return d.sections[i]
	}
	s := newSection(name)
	d.index[norm] = len(d.sections)
	d.sections = append(d.sections, s)
	return s
}

// Sections returns the names of the document's sections in order. The
// top-level section ("") is always first, even if it has no properties.
func (d *Document) Sections() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.key)
	}
	return names
}

// RemoveSection removes the section with the given name. The top-level
// section always exists, so RemoveSection("") removes its properties
// instead.
func (d *Document) RemoveSection(name string) {
	if d == nil {
		return
	}
	norm := normalize(name)
	if norm == "" {
		if len(d.sections) > 0 {
			global := d.sections[0]
			global.properties = nil
			global.index = nil
			global.dropLines("", true)
		}
		return
	}
	i, ok := d.index[norm]
	if !ok {
		return
	}
	copy(d.sections[i:], d.sections[i+1:])
	// Zero out truncated element for garbage collection.
	d.sections[len(d.sections)-1] = nil
	d.sections = d.sections[:len(d.sections)-1]
	d.reindex()
}

// RenameSection changes the name of a section. Any other section already
// named to is removed first. RenameSection does nothing if from does not
// exist or if either name refers to the top-level section.
func (d *Document) RenameSection(from, to string) {
	if d == nil {
		return
	}
	normFrom, normTo := normalize(from), normalize(to)
	if normFrom == "" || normTo == "" {
		return
	}
	i, ok := d.index[normFrom]
	if !ok {
		return
	}
	s := d.sections[i]
	if normFrom != normTo {
		d.RemoveSection(to)
	}
	s.key = to
	d.reindex()
}

func (d *Document) reindex() {
	d.index = make(map[string]int, len(d.sections))
	for i, s := range d.sections {
		d.index[normalize(s.key)] = i
	}
}

// Lookup returns the value of the property with the given key in the given
// section. Passing an empty section name searches the top-level section.
func (d *Document) Lookup(section, key string) (_ string, ok bool) {
	return d.Section(section).Lookup(key)
}

// Get returns the value of the property with the given key in the given
// section. If there is no such property, Get returns the empty string.
func (d *Document) Get(section, key string) string {
	v, _ := d.Lookup(section, key)
	return v
}

// Has reports whether the given section has a property with the given key.
func (d *Document) Has(section, key string) bool {
	_, ok := d.Lookup(section, key)
	return ok
}

// Set sets the property to the given value, creating the section and the
// property if they are absent. An existing property keeps its position and
// the casing of its key.
//
// Set does not validate its arguments: strings that would be read back
// differently are written verbatim. See IsValidSection, IsValidKey and
// IsValidValue.
func (d *Document) Set(section, key, value string) {
	d.AppendSection(section).Set(key, value)
}

// Delete removes the property with the given key from the given section.
// The section itself is kept even if it becomes empty.
func (d *Document) Delete(section, key string) {
	d.Section(section).Delete(key)
}

// Rename changes the key of a property in the given section. See
// Section.Rename.
func (d *Document) Rename(section, from, to string) {
	d.Section(section).Rename(from, to)
}

// Equal reports whether d and other hold the same sections in the same
// order with the same properties in the same order. Section names and keys
// are compared case-insensitively; values are compared exactly.
func (d *Document) Equal(other *Document) bool {
	var a, b []*Section
	if d != nil {
		a = d.sections
	}
	if other != nil {
		b = other.sections
	}
	// A zero Document is equal to one with only an empty top-level section.
	a, b = trimEmptyGlobal(a), trimEmptyGlobal(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if normalize(a[i].key) != normalize(b[i].key) || !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}

func trimEmptyGlobal(sections []*Section) []*Section {
	if len(sections) == 1 && sections[0].key == "" && len(sections[0].properties) == 0 {
		return nil
	}
	return sections
}

// Key returns the section's name as first written.
func (s *Section) Key() string {
	if s == nil {
		return ""
	}
	return s.key
}

// Len returns the number of properties in the section.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.properties)
}

// Properties returns a copy of the section's properties in order.
func (s *Section) Properties() []Property {
	if s == nil || len(s.properties) == 0 {
		return nil
	}
	props := make([]Property, len(s.properties))
	copy(props, s.properties)
	return props
}

// Lookup returns the value of the property with the given key.
func (s *Section) Lookup(key string) (_ string, ok bool) {
	if s == nil {
		return "", false
	}
	i, ok := s.index[normalize(key)]
	if !ok {
		return "", false
	}
	return s.properties[i].Value, true
}

// Get returns the value of the property with the given key. If there is no
// such property, Get returns the empty string.
func (s *Section) Get(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// Set sets the property to the given value. If the section already has a
// property with the key, its value is overwritten in place. Otherwise the
// property is appended.
func (s *Section) Set(key, value string) {
	norm := normalize(key)
	if i, ok := s.index[norm]; ok {
		s.properties[i].Value = value
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[norm] = len(s.properties)
	s.properties = append(s.properties, Property{Key: key, Value: value})
}

// Delete removes the property with the given key.
func (s *Section) Delete(key string) {
	if s == nil {
		return
	}
	i, ok := s.index[normalize(key)]
	if !ok {
		return
	}
	copy(s.properties[i:], s.properties[i+1:])
	// Zero out truncated element for garbage collection.
	s.properties[len(s.properties)-1] = Property{}
	s.properties = s.properties[:len(s.properties)-1]
	s.reindex()
	s.dropLines(normalize(key), false)
}

// Rename changes the key of a property, keeping its value and position.
// Any other property already keyed to is removed first. Rename does nothing
// if the section has no property keyed from.
func (s *Section) Rename(from, to string) {
	if s == nil {
		return
	}
	normFrom, normTo := normalize(from), normalize(to)
	if _, ok := s.index[normFrom]; !ok {
		return
	}
	if normFrom != normTo {
		s.Delete(to)
	}
	s.properties[s.index[normFrom]].Key = to
	s.reindex()
	s.renameLines(normFrom, to)
}

func (s *Section) reindex() {
	s.index = make(map[string]int, len(s.properties))
	for i, p := range s.properties {
		s.index[normalize(p.Key)] = i
	}
}

func (s *Section) equal(other *Section) bool {
	if len(s.properties) != len(other.properties) {
		return false
	}
	for i, p := range s.properties {
		q := other.properties[i]
		if normalize(p.Key) != normalize(q.Key) || p.Value != q.Value {
			return false
		}
	}
	return true
}

// SerializeOptions holds optional parameters for Serialize.
type SerializeOptions struct {
	// CRLF terminates lines with "\r\n" instead of "\n". With Preserve,
	// it applies only to lines added to a document whose source text had no
	// line terminators.
	CRLF bool

	// Preserve writes a parsed document in the layout of its source text.
	// Comments, blank lines, ignored lines and whitespace are kept, and
	// each line is written back unchanged unless its property was modified.
	// Modified values replace the old value between the surrounding
	// whitespace. Deleted properties and removed sections lose their lines.
	// New properties follow the last property of their section and new
	// sections are appended.
	//
	// A document that was not parsed has no source layout and is written as
	// without Preserve.
	Preserve bool
}

// Serialize renders the document as Windows-1252 text. Top-level properties
// come first without a header, followed by each section's header and
// properties in order. Nil options are treated identically as passing the
// zero value.
//
// Nothing is escaped. If a section name, key or value contains a character
// that Windows-1252 cannot represent, Serialize returns an error wrapping an
// *UnrepresentableError.
func (d *Document) Serialize(opts *SerializeOptions) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	eol := "\n"
	if opts != nil && opts.CRLF {
		eol = "\r\n"
	}
	if opts != nil && opts.Preserve && len(d.fragments) > 0 {
		return d.format(eol)
	}
	var buf []byte
	var err error
	for i, s := range d.sections {
		if i > 0 {
			if len(buf) > 0 {
				buf = append(buf, eol...)
			}
			buf = append(buf, '[')
			if buf, err = appendEncoded(buf, s.key); err != nil {
				return nil, fmt.Errorf("serialize world ini: section %q: %w", s.key, err)
			}
			buf = append(buf, ']')
			buf = append(buf, eol...)
		}
		for _, prop := range s.properties {
			if buf, err = appendEncoded(buf, prop.Key); err != nil {
				return nil, fmt.Errorf("serialize world ini: section %q: key %q: %w", s.key, prop.Key, err)
			}
			buf = append(buf, '=')
			if buf, err = appendEncoded(buf, prop.Value); err != nil {
				return nil, fmt.Errorf("serialize world ini: section %q: value of %q: %w", s.key, prop.Key, err)
			}
			buf = append(buf, eol...)
		}
	}
	return buf, nil
}

// MarshalText serializes the document with default options.
func (d *Document) MarshalText() ([]byte, error) {
	return d.Serialize(nil)
}

// UnmarshalText parses the data with default options, replacing any
// sections in d.
func (d *Document) UnmarshalText(data []byte) error {
	*d = *Parse(data, nil)
	return nil
}

// WriteTo serializes the document with default options and writes it to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// IsValidSection reports whether a section name is read back unchanged
// after serialization. Names are written verbatim between brackets, so
// only line terminators are a problem.
func IsValidSection(name string) bool {
	return !strings.ContainsAny(name, "\r\n")
}

// IsValidKey reports whether a property key is read back unchanged after
// serialization.
func IsValidKey(key string) bool {
	if !IsValidValue(key) {
		return false
	}
	if key != "" && (key[0] == '[' || key[0] == ';' || key[0] == '#') {
		return false
	}
	return !strings.ContainsRune(key, '=')
}

// IsValidValue reports whether a property value is read back unchanged
// after serialization.
func IsValidValue(value string) bool {
	if strings.ContainsAny(value, "\r\n") {
		return false
	}
	return value == "" || !isSpace(value[0]) && !isSpace(value[len(value)-1])
}
