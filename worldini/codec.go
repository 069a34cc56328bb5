// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package worldini

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeTable maps each Windows-1252 byte to its code point. Bytes that
// Microsoft left undefined (0x81, 0x8D, 0x8F, 0x90, 0x9D) map to the C1
// control of the same value, as in the WHATWG mapping.
var decodeTable = func() (t [256]rune) {
	for i := range t {
		r := charmap.Windows1252.DecodeByte(byte(i))
		if r == utf8.RuneError {
			r = rune(i)
		}
		t[i] = r
	}
	return t
}()

// Decode converts Windows-1252 bytes to a string. Every byte has a mapping,
// so Decode never fails.
func Decode(data []byte) string {
	sb := new(strings.Builder)
	sb.Grow(len(data))
	for _, b := range data {
		if b < utf8.RuneSelf {
			sb.WriteByte(b)
			continue
		}
		sb.WriteRune(decodeTable[b])
	}
	return sb.String()
}

// Encode converts a string to Windows-1252 bytes. If s contains a character
// that Windows-1252 cannot represent, Encode returns an
// *UnrepresentableError along with the bytes encoded before it.
func Encode(s string) ([]byte, error) {
	return appendEncoded(make([]byte, 0, len(s)), s)
}

func appendEncoded(dst []byte, s string) ([]byte, error) {
	for i, r := range s {
		if r < utf8.RuneSelf {
			dst = append(dst, byte(r))
			continue
		}
		b, ok := encodeRune(r)
		if !ok {
			return dst, &UnrepresentableError{Rune: r, Offset: i}
		}
		dst = append(dst, b)
	}
	return dst, nil
}

func encodeRune(r rune) (byte, bool) {
	if b, ok := charmap.Windows1252.EncodeRune(r); ok {
		return b, true
	}
	if 0x80 <= r && r <= 0xff && decodeTable[r] == r {
		return byte(r), true
	}
	return 0, false
}

// UnrepresentableError is returned when text being encoded contains a
// character outside Windows-1252.
type UnrepresentableError struct {
	// Rune is the offending character.
	Rune rune
	// Offset is the byte offset of Rune in the string being encoded.
	Offset int
}

func (e *UnrepresentableError) Error() string {
	return fmt.Sprintf("character %U at offset %d is not representable in Windows-1252", e.Rune, e.Offset)
}
