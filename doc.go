// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopt - POSIX getopt and GNU getopt_long style option scanning.

It operates on any given slice of strings, index 0 being the program name,
and recognizes one option per call, reporting it through a return code and
the state of a Parser.

Options are Unicode characters, so "-é" is as valid as "-e".

# Features

• Short options, clustered or not: `-a -b`, `-ab`.

• Required arguments attached or separate: `-ofile`, `-o file`.

• Optional arguments, only when attached: `-ofile`, `--output=file`.

• Long options, `--name` and `--name=value`, abbreviated to any unambiguous prefix.

• Long options that store their value in a flag variable.

• Scanning stops at the first non-option, at "-" and after "--". Arguments
are never reordered.

# Usage

	p := getopt.New()
	verbose := 0
	longopts := []getopt.Option{
		{Name: "verbose", HasArg: getopt.NoArgument, Flag: &verbose, Val: 1},
		{Name: "output", HasArg: getopt.RequiredArgument, Val: 'o'},
	}
	for {
		c := p.GetoptLong(os.Args, "ao:", longopts, nil)
		if c == getopt.Done {
			break
		}
		switch c {
		case 'a':
			// ...
		case 'o':
			output := p.Optarg.MustGet()
			// ...
		case '?', ':':
			os.Exit(1)
		}
	}
	positional := p.Remaining(os.Args)

The package level Getopt, GetoptLong and Reset functions work on the process
wide CommandLine parser. Reset must be called before scanning a different
argument vector.

Next offers the same scan with a Result and errors instead of return codes.
*/
package getopt
