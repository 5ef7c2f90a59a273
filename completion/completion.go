// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package completion - completes partially typed options of an option set.
package completion

import (
	"io"
	"log"
	"sort"
	"strings"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/internal/optspec"
)

// Debug Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Debug.SetOutput(os.Stderr)`
var Debug = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Complete - Returns the completions of word.
//
//   - "-" lists every short and long option.
//   - "-c" returns itself when c is a short option.
//   - "--pre" lists the long options starting with "pre". An exact name only
//     completes to itself. Options taking an argument end in '='.
//
// Words that are not options, or that already carry "=value", have no
// completions. Results are sorted ignoring leading dashes.
func Complete(word, optstring string, longopts []getopt.Option) []string {
	results := []string{}
	spec := optspec.Parse(optstring)
	switch {
	case word == "-":
		for _, r := range spec.Order {
			results = append(results, "-"+string(r))
		}
		for _, o := range longopts {
			if o.Name != "" {
				results = append(results, longCompletion(o))
			}
		}
	case strings.HasPrefix(word, "--"):
		prefix := word[2:]
		if strings.Contains(prefix, "=") {
			break
		}
		for _, o := range longopts {
			if o.Name == "" {
				continue
			}
			if o.Name == prefix {
				results = []string{longCompletion(o)}
				break
			}
			if strings.HasPrefix(o.Name, prefix) {
				results = append(results, longCompletion(o))
			}
		}
	case strings.HasPrefix(word, "-"):
		rest := []rune(word[1:])
		if len(rest) == 1 {
			if _, ok := spec.Lookup(rest[0]); ok {
				results = append(results, word)
			}
		}
	}
	sortOptions(results)
	Debug.Printf("completions for %q: %v", word, results)
	return results
}

func longCompletion(o getopt.Option) string {
	if o.HasArg != getopt.NoArgument {
		return "--" + o.Name + "="
	}
	return "--" + o.Name
}

// sortOptions - Sorts by option name ignoring the leading dashes, short
// options first on ties.
func sortOptions(s []string) {
	sort.SliceStable(s, func(i, j int) bool {
		ci, ni := trimLeftDashes(s[i])
		cj, nj := trimLeftDashes(s[j])
		if ni == nj {
			return ci < cj
		}
		return ni < nj
	})
}

// trimLeftDashes - Given a string it trims the leading dashes ("-") and returns a count of how many were removed.
func trimLeftDashes(s string) (int, string) {
	trimmed := strings.TrimLeft(s, "-")
	return len(s) - len(trimmed), trimmed
}
