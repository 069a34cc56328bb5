// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package worldini

import "strings"

type lineKind int

const (
	ignorableLine lineKind = iota
	commentLine
	headerLine
	propertyLine
)

func (k lineKind) String() string {
	switch k {
	case ignorableLine:
		return "ignorable"
	case commentLine:
		return "comment"
	case headerLine:
		return "header"
	case propertyLine:
		return "property"
	default:
		return "lineKind(?)"
	}
}

// nextLine splits off the first line of s. "\r", "\n" and "\r\n" all
// terminate a line. The terminator is not included in either result.
func nextLine(s string) (line, rest string) {
	i := strings.IndexAny(s, "\r\n")
	if i == -1 {
		return s, ""
	}
	if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
		return s[:i], s[i+2:]
	}
	return s[:i], s[i+1:]
}

// classifyLine determines what a single physical line means. For a header,
// key is the section name. For a property, key and value are trimmed.
func classifyLine(line string) (kind lineKind, key, value string) {
	line = trimSpace(line)
	if line == "" {
		return ignorableLine, "", ""
	}
	switch line[0] {
	case ';', '#':
		return commentLine, "", ""
	case '[':
		// Malformed headers must not fall through to property parsing.
		if len(line) < 2 || line[len(line)-1] != ']' {
			return ignorableLine, "", ""
		}
		return headerLine, line[1 : len(line)-1], ""
	}
	i := strings.IndexByte(line, '=')
	if i == -1 {
		return ignorableLine, "", ""
	}
	return propertyLine, trimSpace(line[:i]), trimSpace(line[i+1:])
}

const spaceChars = " \t\v\f"

func trimSpace(s string) string {
	return strings.Trim(s, spaceChars)
}

func isSpace(c byte) bool {
	return strings.IndexByte(spaceChars, c) != -1
}

// propertySpans returns the byte offsets of the trimmed key and value in a
// property line. An empty key or value is located next to the '='.
func propertySpans(line string) (keyStart, keyEnd, valueStart, valueEnd int) {
	eq := strings.IndexByte(line, '=')
	keyStart, keyEnd = trimmedSpan(line, 0, eq)
	valueStart, valueEnd = trimmedSpan(line, eq+1, len(line))
	if keyStart == keyEnd {
		keyStart, keyEnd = eq, eq
	}
	if valueStart == valueEnd {
		valueStart, valueEnd = eq+1, eq+1
	}
	return
}

func trimmedSpan(s string, start, end int) (int, int) {
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return start, end
}
