// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"strings"

	"github.com/DavidGamba/go-getopt/internal/optspec"
	"github.com/samber/mo"
)

// HasArg - Indicates whether an option takes an argument.
type HasArg = optspec.HasArg

// Argument requirements of a long option.
const (
	NoArgument       = optspec.NoArgument
	RequiredArgument = optspec.RequiredArgument
	OptionalArgument = optspec.OptionalArgument
)

// Option - describes a long option.
//
// When Flag is nil a match returns Val. Otherwise Val is stored in *Flag and
// the match returns 0. Options with an empty Name are ignored.
type Option struct {
	Name   string
	HasArg HasArg
	Flag   *int
	Val    int
}

// GetoptLong - Same as Getopt but also recognizes long options described by
// longopts, given as "--name", "--name=value" or "--name value" when the
// option requires an argument.
//
// Names can be abbreviated to any prefix that matches a single option, an
// exact match always wins. Tokens that don't start with "--" are scanned as
// short options against optstring.
//
// When longindex is not nil, it receives the index in longopts of every
// successfully matched option.
// A long option missing its required argument always returns ':'.
func (p *Parser) GetoptLong(args []string, optstring string, longopts []Option, longindex *int) int {
	spec := optspec.Parse(optstring)
	res, perr := p.scan(args, spec, longopts, true)
	p.report(args, spec, perr)
	if perr == nil && longindex != nil && res.LongIndex >= 0 {
		*longindex = res.LongIndex
	}
	return res.Code
}

// scanLong - Resolves the long option token at Optind. The token is always
// consumed.
func (p *Parser) scanLong(args []string, longopts []Option) (Result, *ParseError) {
	tok := args[p.Optind]
	p.Optind++
	name, value, hasValue := splitLong(tok)
	res := Result{Code: Unknown, Name: name, LongIndex: -1}

	idx, candidates := matchLong(longopts, name)
	Logger.Printf("long option %q: index %d, candidates %v", name, idx, candidates)
	if idx < 0 {
		if len(candidates) > 1 {
			return res, &ParseError{Err: ErrAmbiguousOption, Name: name, Candidates: candidates}
		}
		return res, &ParseError{Err: ErrUnknownOption, Name: name}
	}

	opt := longopts[idx]
	res.Name = opt.Name
	switch opt.HasArg {
	case NoArgument:
		if hasValue {
			p.Optopt = opt.Val
			return res, &ParseError{Err: ErrExtraneousArgument, Name: opt.Name}
		}
	case RequiredArgument:
		if hasValue {
			p.Optarg = mo.Some(value)
		} else if p.Optind < len(args) {
			p.Optarg = mo.Some(args[p.Optind])
			p.Optind++
		} else {
			p.Optind++
			p.Optopt = opt.Val
			res.Code = MissingArg
			return res, &ParseError{Err: ErrMissingArgument, Name: opt.Name}
		}
	case OptionalArgument:
		if hasValue {
			p.Optarg = mo.Some(value)
		}
	}

	res.Arg = p.Optarg
	res.LongIndex = idx
	if opt.Flag != nil {
		*opt.Flag = opt.Val
		res.Code = 0
	} else {
		res.Code = opt.Val
	}
	return res, nil
}

// matchLong - Returns the index of the option name resolves to, or -1.
// An exact match wins over abbreviations. Otherwise every option starting with
// name is a candidate and more than one candidate is ambiguous.
func matchLong(longopts []Option, name string) (int, []string) {
	if name == "" {
		return -1, nil
	}
	idx := -1
	candidates := []string{}
	for i, o := range longopts {
		if o.Name == "" {
			continue
		}
		if o.Name == name {
			return i, []string{o.Name}
		}
		if strings.HasPrefix(o.Name, name) {
			if idx < 0 {
				idx = i
			}
			candidates = append(candidates, o.Name)
		}
	}
	if len(candidates) == 1 {
		return idx, candidates
	}
	return -1, candidates
}
