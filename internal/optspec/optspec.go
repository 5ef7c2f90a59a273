// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package optspec - compiles short option strings and long option lists.
package optspec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// HasArg - Indicates whether an option takes an argument.
type HasArg int

// Argument requirements
const (
	NoArgument HasArg = iota
	RequiredArgument
	OptionalArgument
)

func (h HasArg) String() string {
	switch h {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return fmt.Sprintf("HasArg(%d)", int(h))
	}
}

// ParseHasArg - Parses the textual form returned by String.
func ParseHasArg(s string) (HasArg, error) {
	switch strings.ToLower(s) {
	case "", "none", "no":
		return NoArgument, nil
	case "required":
		return RequiredArgument, nil
	case "optional":
		return OptionalArgument, nil
	}
	return NoArgument, fmt.Errorf("%w: %q", ErrInvalidHasArg, s)
}

var (
	// ErrInvalidHasArg - has_arg value is not none, required or optional.
	ErrInvalidHasArg = errors.New("invalid argument requirement")
	// ErrEmptyLongName - a long option list contains an empty name.
	ErrEmptyLongName = errors.New("empty long option name")
)

// Short - compiled short option string.
type Short struct {
	// Silent is set when the option string starts with ':'.
	Silent bool
	// Order keeps the option characters in declaration order.
	Order []rune
	opts  map[rune]HasArg
}

// Parse - compiles an option string such as ":ab:c::".
//
// A leading '+' is accepted and ignored, scanning already stops at the first
// non-option. A leading ':' selects silent error reporting.
// The ':' character itself can never be an option.
func Parse(optstring string) Short {
	s := Short{opts: map[rune]HasArg{}}
	optstring = strings.TrimPrefix(optstring, "+")
	if strings.HasPrefix(optstring, ":") {
		s.Silent = true
		optstring = optstring[1:]
	}
	for i := 0; i < len(optstring); {
		r, size := utf8.DecodeRuneInString(optstring[i:])
		i += size
		if r == ':' {
			continue
		}
		hasArg := NoArgument
		if i < len(optstring) && optstring[i] == ':' {
			hasArg = RequiredArgument
			i++
			if i < len(optstring) && optstring[i] == ':' {
				hasArg = OptionalArgument
				i++
			}
		}
		if _, ok := s.opts[r]; !ok {
			s.Order = append(s.Order, r)
		}
		s.opts[r] = hasArg
	}
	return s
}

// Lookup - Returns the argument requirement of the option character r.
func (s Short) Lookup(r rune) (HasArg, bool) {
	if r == ':' {
		return NoArgument, false
	}
	h, ok := s.opts[r]
	return h, ok
}

// Long - entry of a long option list.
type Long struct {
	Name   string
	HasArg HasArg
}

// ParseLong - parses a comma separated long option list such as
// "alpha,beta:,gamma::". Names may be given with leading dashes.
func ParseLong(list string) ([]Long, error) {
	longs := []Long{}
	if strings.TrimSpace(list) == "" {
		return longs, nil
	}
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		name := strings.TrimRight(item, ":")
		hasArg := NoArgument
		switch len(item) - len(name) {
		case 0:
		case 1:
			hasArg = RequiredArgument
		default:
			hasArg = OptionalArgument
		}
		name = strings.TrimLeft(name, "-")
		if name == "" {
			return nil, fmt.Errorf("%w in %q", ErrEmptyLongName, list)
		}
		longs = append(longs, Long{Name: name, HasArg: hasArg})
	}
	return longs, nil
}
