// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - renders the synopsis and option list of an option set.
package help

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/internal/optspec"
	"github.com/mattn/go-runewidth"
)

// Padding - spaces before each line and between columns.
var Padding = 4

// Width - column at which the synopsis wraps.
var Width = 80

// Section headers
const (
	SynopsisHeader = "SYNOPSIS"
	OptionsHeader  = "OPTIONS"
)

// Entry - an option as shown in the help, a short option, a long one or both.
type Entry struct {
	Short       rune
	Long        string
	HasArg      getopt.HasArg
	ArgName     string // defaults to "arg"
	Description string
}

// Entries - Builds the entries of an option string and a long option table.
// A long option is shown next to the short option it returns, when they take
// the same kind of argument.
func Entries(optstring string, longopts []getopt.Option) []Entry {
	spec := optspec.Parse(optstring)
	entries := []Entry{}
	index := map[rune]int{}
	for _, r := range spec.Order {
		hasArg, _ := spec.Lookup(r)
		index[r] = len(entries)
		entries = append(entries, Entry{Short: r, HasArg: hasArg})
	}
	for _, o := range longopts {
		if o.Name == "" {
			continue
		}
		if i, ok := index[rune(o.Val)]; ok && o.Flag == nil && entries[i].Long == "" && entries[i].HasArg == o.HasArg {
			entries[i].Long = o.Name
			continue
		}
		entries = append(entries, Entry{Long: o.Name, HasArg: o.HasArg})
	}
	return entries
}

func (e Entry) argName() string {
	if e.ArgName == "" {
		return "arg"
	}
	return e.ArgName
}

// names - "-o|--output"
func (e Entry) names() string {
	names := []string{}
	if e.Short != 0 {
		names = append(names, "-"+string(e.Short))
	}
	if e.Long != "" {
		names = append(names, "--"+e.Long)
	}
	return strings.Join(names, "|")
}

// Label - Returns the option names followed by the argument they take, for
// example "-o|--output <file>" or "--color[=<when>]".
func (e Entry) Label() string {
	arg := "<" + e.argName() + ">"
	switch e.HasArg {
	case getopt.RequiredArgument:
		return e.names() + " " + arg
	case getopt.OptionalArgument:
		if e.Long != "" {
			return e.names() + "[=" + arg + "]"
		}
		return e.names() + "[" + arg + "]"
	}
	return e.names()
}

// Synopsis - Returns the synopsis section. Short options without arguments
// are grouped as in "[-abc]".
func Synopsis(scriptName string, entries []Entry) string {
	prefix := strings.Repeat(" ", Padding) + scriptName
	items := []string{}
	flags := ""
	for _, e := range entries {
		if e.Short != 0 && e.Long == "" && e.HasArg == getopt.NoArgument {
			flags += string(e.Short)
		}
	}
	if flags != "" {
		items = append(items, "[-"+flags+"]")
	}
	for _, e := range entries {
		if e.Short != 0 && e.Long == "" && e.HasArg == getopt.NoArgument {
			continue
		}
		items = append(items, "["+e.Label()+"]")
	}
	items = append(items, "[<args>]")

	out := ""
	line := prefix
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))
	for _, item := range items {
		if runewidth.StringWidth(line)+1+runewidth.StringWidth(item) > Width && line != prefix && line != indent {
			out += line + "\n"
			line = indent
		}
		line += " " + item
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", SynopsisHeader, out)
}

// OptionList - Returns the option list section with descriptions aligned
// on display width, so options using wide characters line up.
func OptionList(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	factor := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Label()); w > factor {
			factor = w
		}
	}
	padding := strings.Repeat(" ", Padding)
	out := ""
	for _, e := range entries {
		if e.Description == "" {
			out += padding + e.Label() + "\n"
			continue
		}
		descIndent := "\n" + padding + strings.Repeat(" ", factor) + padding
		description := strings.ReplaceAll(e.Description, "\n", descIndent)
		out += padding + runewidth.FillRight(e.Label(), factor) + padding + description + "\n"
	}
	return fmt.Sprintf("%s:\n%s", OptionsHeader, out)
}

// Help - Returns the synopsis and the option list.
func Help(scriptName string, entries []Entry) string {
	out := Synopsis(scriptName, entries)
	if list := OptionList(entries); list != "" {
		out += "\n" + list
	}
	return out
}
