// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDone - Returned by Next when there are no more options to scan.
var ErrDone = errors.New("no more options")

// Parse error causes, match them with errors.Is.
var (
	// ErrUnknownOption - Unrecognized short option character or long option name.
	ErrUnknownOption = errors.New("unknown option")

	// ErrAmbiguousOption - Long option abbreviation matching more than one name.
	ErrAmbiguousOption = errors.New("ambiguous option")

	// ErrMissingArgument - Option requires an argument and none is available.
	ErrMissingArgument = errors.New("missing argument")

	// ErrExtraneousArgument - Argument attached to a long option that takes none.
	ErrExtraneousArgument = errors.New("extraneous argument")
)

// ParseError - Describes why an option couldn't be recognized.
// All parse errors are recoverable, scanning continues with the next call.
type ParseError struct {
	Err error // One of the Err* causes

	// Option is the short option character, 0 for long options.
	Option rune

	// Name is the long option name. For unknown and ambiguous options it is
	// the name as given, otherwise the name of the matched option.
	Name string

	// Candidates lists the long option names an ambiguous abbreviation matches.
	Candidates []string
}

func (e *ParseError) Error() string {
	if e.Option != 0 {
		switch e.Err {
		case ErrMissingArgument:
			return fmt.Sprintf("option requires an argument -- '%c'", e.Option)
		default:
			return fmt.Sprintf("invalid option -- '%c'", e.Option)
		}
	}
	switch e.Err {
	case ErrAmbiguousOption:
		possibilities := make([]string, 0, len(e.Candidates))
		for _, c := range e.Candidates {
			possibilities = append(possibilities, "'--"+c+"'")
		}
		return fmt.Sprintf("option '--%s' is ambiguous; possibilities: %s", e.Name, strings.Join(possibilities, " "))
	case ErrMissingArgument:
		return fmt.Sprintf("option '--%s' requires an argument", e.Name)
	case ErrExtraneousArgument:
		return fmt.Sprintf("option '--%s' doesn't allow an argument", e.Name)
	default:
		return fmt.Sprintf("unrecognized option '--%s'", e.Name)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
