// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package worldini_test

import (
	"fmt"
	"os"

	"github.com/knytt-tools/levelkit/worldini"
)

func ExampleParse() {
	const worldIni = `
		[World]
		Name = The Machine
		Author = Nifflas
		[x1000y1000]
		ShiftVisible(A) = False`
	d := worldini.Parse([]byte(worldIni), nil)

	fmt.Printf("Sections: %q\n", d.Sections())
	fmt.Println("Name:", d.Get("World", "Name"))
	fmt.Println("Shift:", d.Get("X1000Y1000", "shiftvisible(a)"))

	// Output:
	// Sections: ["" "World" "x1000y1000"]
	// Name: The Machine
	// Shift: False
}

// Malformed lines are never errors. They can be observed with the Ignored
// option.
func ExampleParse_ignored() {
	const worldIni = "[World\r\nName=Lost\r\n[World] trailing\r\nstray text\r\n"
	d := worldini.Parse([]byte(worldIni), &worldini.ParseOptions{
		Ignored: func(lineno int, line string) {
			fmt.Printf("line %d ignored: %q\n", lineno, line)
		},
	})
	fmt.Printf("Top-level Name: %q\n", d.Get("", "Name"))
	fmt.Println("Has World:", d.HasSection("World"))

	// Output:
	// line 1 ignored: "[World"
	// line 3 ignored: "[World] trailing"
	// line 4 ignored: "stray text"
	// Top-level Name: "Lost"
	// Has World: false
}

// Repeated sections are merged case-insensitively and the last value wins.
func ExampleParse_merge() {
	const worldIni = "[World]\nName=First\n[WORLD]\nname=Second\n"
	d := worldini.Parse([]byte(worldIni), nil)
	text, err := d.MarshalText()
	if err != nil {
		// handle error
	}
	fmt.Print(string(text))

	// Output:
	// [World]
	// Name=Second
}

func ExampleDocument_Set() {
	// Using new(worldini.Document) creates an empty Document.
	// You can also modify an existing Document from Parse.
	d := new(worldini.Document)
	d.Set("World", "Name", "My Level")
	d.Set("World", "Author", "Me")
	d.Set("world", "NAME", "My Level 2")

	text, err := d.MarshalText()
	if err != nil {
		// handle error
	}
	if _, err := os.Stdout.Write(text); err != nil {
		// handle error
	}

	// Output:
	// [World]
	// Name=My Level 2
	// Author=Me
}
