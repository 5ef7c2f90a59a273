// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import "unicode/utf16"

// DecodeArgv - Converts a wide character argument vector, as handed over by
// Windows APIs such as CommandLineToArgvW, into strings that can be scanned.
// A trailing NUL in an element ends it. Unpaired surrogates become U+FFFD.
func DecodeArgv(argv [][]uint16) []string {
	args := make([]string, 0, len(argv))
	for _, w := range argv {
		for i, c := range w {
			if c == 0 {
				w = w[:i]
				break
			}
		}
		args = append(args, string(utf16.Decode(w)))
	}
	return args
}
