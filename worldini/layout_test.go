// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package worldini

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSerializePreserve(t *testing.T) {
	tests := []struct {
		name   string
		source string
		edit   func(d *Document)
		want   string
	}{
		{
			name:   "Untouched",
			source: "; c\r\n[A]\r\n x = 1 \r\nstray\r\n[A\n\r\n[b]\rk=v",
			want:   "; c\r\n[A]\r\n x = 1 \r\nstray\r\n[A\n\r\n[b]\rk=v",
		},
		{
			name:   "UndefinedBytes",
			source: "[\x81\x8d]\nk=\x8f\x90\x9d\xff\n",
			want:   "[\x81\x8d]\nk=\x8f\x90\x9d\xff\n",
		},
		{
			name:   "SetKeepsComments",
			source: "; Level by someone\r\n[World]\r\nName = X   ; note\r\n\r\n; rooms\r\n[x1000y1000]\r\nA=1\r\n",
			edit: func(d *Document) {
				d.Set("World", "Name", "Y")
			},
			want: "; Level by someone\r\n[World]\r\nName = Y\r\n\r\n; rooms\r\n[x1000y1000]\r\nA=1\r\n",
		},
		{
			name:   "SetRepeatedKey",
			source: "[A]\nk=1\nK=2\n",
			edit: func(d *Document) {
				d.Set("a", "k", "3")
			},
			want: "[A]\nk=1\nK=3\n",
		},
		{
			name:   "NewPropertyBeforeTrailingLines",
			source: "[A]\nx=1\n\n; next\n[B]\ny=2\n",
			edit: func(d *Document) {
				d.Set("A", "z", "3")
			},
			want: "[A]\nx=1\nz=3\n\n; next\n[B]\ny=2\n",
		},
		{
			name:   "NewPropertyInRepeatedSection",
			source: "[A]\nx=1\n[B]\n[a]\ny=2\n",
			edit: func(d *Document) {
				d.Set("A", "z", "3")
			},
			want: "[A]\nx=1\n[B]\n[a]\ny=2\nz=3\n",
		},
		{
			name:   "NewPropertyInEmptySection",
			source: "[A]\n\n[B]\n",
			edit: func(d *Document) {
				d.Set("A", "z", "3")
			},
			want: "[A]\nz=3\n\n[B]\n",
		},
		{
			name:   "NewSectionAndTopLevel",
			source: "[A]\r\nx=1",
			edit: func(d *Document) {
				d.Set("B", "k", "v")
				d.Set("", "top", "1")
			},
			want: "top=1\r\n[A]\r\nx=1\r\n\r\n[B]\r\nk=v\r\n",
		},
		{
			name:   "DeleteAndRemoveSection",
			source: "[A]\nx=1\ny=2\n[B]\nz=3\n[a]\nx=4\n",
			edit: func(d *Document) {
				d.Delete("A", "x")
				d.RemoveSection("B")
			},
			want: "[A]\ny=2\n[a]\n",
		},
		{
			name:   "DeleteThenSet",
			source: "[A]\nx=1\ny=2\n",
			edit: func(d *Document) {
				d.Delete("A", "x")
				d.Set("A", "x", "3")
			},
			want: "[A]\ny=2\nx=3\n",
		},
		{
			name:   "RenameSection",
			source: " [A] \nx=1\n[a]\ny=2\n",
			edit: func(d *Document) {
				d.RenameSection("A", "Level")
			},
			want: " [Level] \nx=1\n[Level]\ny=2\n",
		},
		{
			name:   "RenameSectionOverExisting",
			source: "[A]\nx=1\n[B]\ny=2\n",
			edit: func(d *Document) {
				d.RenameSection("A", "B")
			},
			want: "[B]\nx=1\n",
		},
		{
			name:   "RenameProperty",
			source: "[A]\nold = 1\nnew=2\n",
			edit: func(d *Document) {
				d.Rename("A", "old", "new")
			},
			want: "[A]\nnew = 1\n",
		},
		{
			name:   "ClearTopLevel",
			source: "top=1\n; c\n[A]\nx=1\n",
			edit: func(d *Document) {
				d.RemoveSection("")
			},
			want: "; c\n[A]\nx=1\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := Parse([]byte(test.source), nil)
			if test.edit != nil {
				test.edit(d)
			}
			got, err := d.Serialize(&SerializeOptions{Preserve: true})
			if err != nil {
				t.Fatal("Serialize:", err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
			if reparsed := Parse(got, nil); !reparsed.Equal(d) {
				t.Errorf("Parse(output) = %v; want %v", dump(reparsed), dump(d))
			}
		})
	}
}

func TestSerializePreserveUnparsed(t *testing.T) {
	d := new(Document)
	d.Set("A", "k", "v")
	got, err := d.Serialize(&SerializeOptions{Preserve: true, CRLF: true})
	if err != nil {
		t.Fatal(err)
	}
	if want := "[A]\r\nk=v\r\n"; string(got) != want {
		t.Errorf("Serialize(...) = %q; want %q", got, want)
	}
}

func TestSerializePreserveUnrepresentable(t *testing.T) {
	d := Parse([]byte("[A]\nk=1\n"), nil)
	d.Set("A", "k", "☃")
	_, err := d.Serialize(&SerializeOptions{Preserve: true})
	var e *UnrepresentableError
	if !errors.As(err, &e) {
		t.Fatalf("Serialize(...) error = %v; want *UnrepresentableError", err)
	}
	if e.Rune != '☃' {
		t.Errorf("Rune = %U; want %U", e.Rune, '☃')
	}
}
