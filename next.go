// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"github.com/DavidGamba/go-getopt/internal/optspec"
	"github.com/samber/mo"
)

// Result - option recognized by Next.
type Result struct {
	// Code is what GetoptLong would have returned.
	Code int

	// Option is the short option character, 0 for long options.
	Option rune

	// Name is the long option name, empty for short options.
	Name string

	// Arg is the option argument when one was attached or consumed.
	Arg mo.Option[string]

	// LongIndex is the index of the matched long option, -1 for short options.
	LongIndex int
}

// Next - Scans the next option the same way GetoptLong does but reports
// the outcome as a Result and an error instead of a return code.
//
// It returns ErrDone when there are no more options and a *ParseError for
// unknown options, ambiguous abbreviations, missing or extraneous arguments.
// Next never writes diagnostics, Opterr is ignored.
//
// The Parser fields are updated exactly as GetoptLong updates them.
//
//	for {
//		res, err := p.Next(args, "ab:", longopts)
//		if errors.Is(err, getopt.ErrDone) {
//			break
//		}
//		...
//	}
//	positional := p.Remaining(args)
func (p *Parser) Next(args []string, optstring string, longopts []Option) (Result, error) {
	res, perr := p.scan(args, optspec.Parse(optstring), longopts, true)
	if perr != nil {
		return res, perr
	}
	if res.Code == Done {
		return res, ErrDone
	}
	return res, nil
}
