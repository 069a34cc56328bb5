// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package worldini provides a parser and serializer for the world-settings
document found in every level package (World.ini).

The format has no formal grammar. This package reproduces the permissive
behavior of the game's own reader: no input is rejected, malformed lines are
dropped, and repeated sections and keys are folded together.

Syntax

A World.ini file is text encoded in Windows-1252. Every byte decodes to a
character, so decoding never fails. Lines end in a carriage return, a line
feed, or both ("\r\n"). The last line does not need a terminator.

Each line is trimmed of surrounding spaces, tabs, vertical tabs and form
feeds and then classified:

	; comment          lines starting with ';' or '#' are dropped
	[Section Name]     a section header
	Key = Value        a property, split on the first '='

A section header starts with '[' and ends with ']'. Everything between the
brackets is the section name, including interior whitespace. A line that
starts with '[' but does not end with ']', such as "[World" or
"[World] extra", is ignored: it neither starts a section nor defines a
property. Lines without '=' are ignored too.

Properties encountered before any header belong to the top-level section,
identified by the empty string (""). The header "[]" also names the
top-level section.

Keys and values have surrounding whitespace removed. Either may be empty.
Values may contain '='.

Repeated names

Section names and property keys are compared case-insensitively (ASCII
only) and keep the casing they were first seen with. A repeated section
header continues the earlier section. A repeated key overwrites the earlier
value in place: the last value wins and the property keeps its position.

Layout

Serialize normally writes a canonical layout: top-level properties, then
each section header followed by its properties, with no comments. Set
SerializeOptions.Preserve to write a parsed document back in the layout of
its source, so that editing one value leaves the rest of the file intact.

Escaping

The format has no escaping mechanism. A key containing '=' or a value with
surrounding whitespace cannot survive a round trip. IsValidSection,
IsValidKey and IsValidValue report which strings round-trip; Set never
rejects input.
*/
package worldini
