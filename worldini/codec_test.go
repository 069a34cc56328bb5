// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package worldini

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestDecodeIsTotal(t *testing.T) {
	for i := 0; i < 256; i++ {
		s := Decode([]byte{byte(i)})
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || size != len(s) {
			t.Errorf("Decode([]byte{%#02x}) = %q; want a single valid character", i, s)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		b    byte
		want rune
	}{
		{0x00, '\x00'},
		{'A', 'A'},
		{0x7f, '\x7f'},
		{0x80, '€'},
		{0x81, '\u0081'},
		{0x8a, 'Š'},
		{0x8d, '\u008d'},
		{0x8f, '\u008f'},
		{0x90, '\u0090'},
		{0x93, '“'},
		{0x9d, '\u009d'},
		{0x9f, 'Ÿ'},
		{0xa0, '\u00a0'},
		{0xe9, 'é'},
		{0xff, 'ÿ'},
	}
	for _, test := range tests {
		if got := Decode([]byte{test.b}); got != string(test.want) {
			t.Errorf("Decode([]byte{%#02x}) = %q; want %q", test.b, got, test.want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	got, err := Encode(Decode(all))
	if err != nil {
		t.Fatal("Encode:", err)
	}
	if string(got) != string(all) {
		t.Errorf("Encode(Decode(all bytes)) = %q; want %q", got, all)
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	tests := []struct {
		s          string
		wantRune   rune
		wantOffset int
		wantPrefix string
	}{
		{"abĀ", 'Ā', 2, "ab"},
		// 0x80 is the euro sign, so U+0080 has no encoding.
		{"\u0080", '\u0080', 0, ""},
		{"é☃", '☃', 2, "\xe9"},
		{"�", '�', 0, ""},
		{"x\xffy", utf8.RuneError, 1, "x"},
	}
	for _, test := range tests {
		got, err := Encode(test.s)
		var uerr *UnrepresentableError
		if !errors.As(err, &uerr) {
			t.Errorf("Encode(%q) error = %v; want *UnrepresentableError", test.s, err)
			continue
		}
		if uerr.Rune != test.wantRune || uerr.Offset != test.wantOffset {
			t.Errorf("Encode(%q) error = {Rune: %q, Offset: %d}; want {Rune: %q, Offset: %d}",
				test.s, uerr.Rune, uerr.Offset, test.wantRune, test.wantOffset)
		}
		if string(got) != test.wantPrefix {
			t.Errorf("Encode(%q) = %q; want %q", test.s, got, test.wantPrefix)
		}
	}
}
