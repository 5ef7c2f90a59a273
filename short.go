// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"unicode/utf8"

	"github.com/DavidGamba/go-getopt/internal/optspec"
	"github.com/samber/mo"
)

// Getopt - Scans the next short option of args according to optstring.
//
// optstring lists the option characters. A character followed by ':' takes
// a required argument, one followed by '::' takes an optional argument that
// must be attached to it, as in "-ofile". A leading ':' disables
// diagnostics and makes a missing argument return ':' instead of '?'.
//
// It returns the option character, '?' for an unknown option, '?' or ':' for
// a missing argument, or Done when the first non-option, "-", "--" or the end
// of args is reached. args[0] is the program name and is never scanned.
func (p *Parser) Getopt(args []string, optstring string) int {
	spec := optspec.Parse(optstring)
	res, perr := p.scan(args, spec, nil, false)
	p.report(args, spec, perr)
	return res.Code
}

// scan - Common entry of every parsing call. It clears the per call state,
// stops at non-options and dispatches to the short or long scanner.
func (p *Parser) scan(args []string, spec optspec.Short, longopts []Option, long bool) (Result, *ParseError) {
	p.Optarg = mo.None[string]()
	p.Optopt = 0
	done := Result{Code: Done, LongIndex: -1}

	if p.Optind <= 0 {
		p.Reset()
	}
	if p.endAt != 0 && p.Optind == p.endAt {
		return done, nil
	}
	if p.Optind >= len(args) {
		p.cursor = 0
		return done, nil
	}

	tok := args[p.Optind]
	if p.cursor == 0 || p.cursorAt != p.Optind || p.cursor >= len(tok) {
		p.cursor = 0
		kind := classify(tok)
		Logger.Printf("optind %d: %q is %s", p.Optind, tok, kind)
		switch kind {
		case tokenNonOption, tokenLoneDash:
			return done, nil
		case tokenTerminator:
			p.Optind++
			p.endAt = p.Optind
			return done, nil
		case tokenLong:
			if long {
				return p.scanLong(args, longopts)
			}
		}
		p.cursor = 1
		p.cursorAt = p.Optind
	}
	return p.scanShort(args, spec)
}

// scanShort - Recognizes the option character at the cursor.
func (p *Parser) scanShort(args []string, spec optspec.Short) (Result, *ParseError) {
	tok := args[p.Optind]
	r, size := utf8.DecodeRuneInString(tok[p.cursor:])
	p.cursor += size
	p.Optopt = int(r)

	res := Result{Code: int(r), Option: r, LongIndex: -1}
	var perr *ParseError
	rest := tok[p.cursor:]

	hasArg, ok := spec.Lookup(r)
	switch {
	case !ok:
		res.Code = Unknown
		perr = &ParseError{Err: ErrUnknownOption, Option: r}
	case hasArg == RequiredArgument:
		p.cursor = len(tok)
		if rest != "" {
			p.Optarg = mo.Some(rest)
		} else if p.Optind+1 < len(args) {
			p.Optind++
			p.Optarg = mo.Some(args[p.Optind])
		} else {
			// Past the end, the final increment below leaves Optind at len(args)+1.
			p.Optind++
			res.Code = Unknown
			if spec.Silent {
				res.Code = MissingArg
			}
			perr = &ParseError{Err: ErrMissingArgument, Option: r}
		}
	case hasArg == OptionalArgument:
		p.cursor = len(tok)
		if rest != "" {
			p.Optarg = mo.Some(rest)
		}
	}

	if p.cursor >= len(tok) {
		p.Optind++
		p.cursor = 0
	}
	res.Arg = p.Optarg
	Logger.Printf("short option %q: code %d, arg %q (%t)", r, res.Code, p.Optarg.OrEmpty(), p.Optarg.IsPresent())
	return res, perr
}
