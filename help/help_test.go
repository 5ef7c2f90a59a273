// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package help

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/DavidGamba/go-getopt"
)

func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("Index: %d | diff: got '%s' - exp '%s'\n", len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("Index: %d | diff: got '%c' - exp '%c'\nsame '%s'\n", i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("Index: %d | diff: got '%s' - exp '%s'\n", len(got), got, expected)
	}
	return ""
}

func testEntries() []Entry {
	verbose := 0
	return Entries("ab:c::", []getopt.Option{
		{Name: "bee", HasArg: getopt.RequiredArgument, Val: 'b'},
		{Name: "color", HasArg: getopt.OptionalArgument, Val: 'x'},
		{Name: "verbose", HasArg: getopt.NoArgument, Flag: &verbose, Val: 'a'},
	})
}

func TestEntries(t *testing.T) {
	expected := []Entry{
		{Short: 'a', HasArg: getopt.NoArgument},
		{Short: 'b', Long: "bee", HasArg: getopt.RequiredArgument},
		{Short: 'c', HasArg: getopt.OptionalArgument},
		{Long: "color", HasArg: getopt.OptionalArgument},
		{Long: "verbose", HasArg: getopt.NoArgument},
	}
	if got := testEntries(); !reflect.DeepEqual(got, expected) {
		t.Errorf("got %+v, want %+v", got, expected)
	}

	// Different argument requirements are listed apart.
	got := Entries("o:", []getopt.Option{{Name: "output", HasArg: getopt.OptionalArgument, Val: 'o'}, {}})
	expected = []Entry{
		{Short: 'o', HasArg: getopt.RequiredArgument},
		{Long: "output", HasArg: getopt.OptionalArgument},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %+v, want %+v", got, expected)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		entry    Entry
		expected string
	}{
		{Entry{Short: 'a'}, "-a"},
		{Entry{Long: "all"}, "--all"},
		{Entry{Short: 'a', Long: "all"}, "-a|--all"},
		{Entry{Short: 'o', HasArg: getopt.RequiredArgument, ArgName: "file"}, "-o <file>"},
		{Entry{Short: 'o', Long: "output", HasArg: getopt.RequiredArgument}, "-o|--output <arg>"},
		{Entry{Short: 'c', HasArg: getopt.OptionalArgument}, "-c[<arg>]"},
		{Entry{Short: 'c', Long: "color", HasArg: getopt.OptionalArgument, ArgName: "when"}, "-c|--color[=<when>]"},
	}
	for _, tt := range tests {
		if got := tt.entry.Label(); got != tt.expected {
			t.Errorf("got %q, want %q", got, tt.expected)
		}
	}
}

func TestHelp(t *testing.T) {
	wide := []Entry{
		{Short: 'x', Long: "exec", Description: "run it"},
		{Long: "名前", HasArg: getopt.RequiredArgument, ArgName: "name", Description: "wide\nsecond line"},
		{Short: 'q'},
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Synopsis", Synopsis("prog", testEntries()), `SYNOPSIS:
    prog [-a] [-b|--bee <arg>] [-c[<arg>]] [--color[=<arg>]] [--verbose]
         [<args>]
`},
		{"Synopsis flags", Synopsis("prog", Entries("a", nil)), `SYNOPSIS:
    prog [-a] [<args>]
`},
		{"Synopsis empty", Synopsis("prog", nil), `SYNOPSIS:
    prog [<args>]
`},
		{"OptionList empty", OptionList(nil), ""},
		{"OptionList wide", OptionList(wide), `OPTIONS:
    -x|--exec        run it
    --名前 <name>    wide
                     second line
    -q
`},
		{"Help", Help("prog", Entries("a", nil)), `SYNOPSIS:
    prog [-a] [<args>]

OPTIONS:
    -a
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Unexpected help:\n%s", firstDiff(tt.got, tt.expected))
			}
		})
	}
}
