// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import "strings"

type tokenKind int

const (
	tokenNonOption  tokenKind = iota // text that doesn't start with a dash
	tokenLoneDash                    // -
	tokenTerminator                  // --
	tokenLong                        // --name or --name=value
	tokenShort                       // -a or a cluster like -abc
)

func (k tokenKind) String() string {
	switch k {
	case tokenNonOption:
		return "non-option"
	case tokenLoneDash:
		return "lone dash"
	case tokenTerminator:
		return "terminator"
	case tokenLong:
		return "long"
	case tokenShort:
		return "short"
	}
	return "unknown"
}

/*
classify - Tells what kind of token s is.

The lone dash is reported apart from other non-options because it is a
common way of naming stdin, but both stop the scan.
Whether a long token is handled as such depends on the caller: Getopt
decomposes "--name" as a cluster starting with the '-' character.
*/
func classify(s string) tokenKind {
	switch s {
	case "-":
		return tokenLoneDash
	case "--":
		return tokenTerminator
	}
	if !strings.HasPrefix(s, "-") {
		return tokenNonOption
	}
	if strings.HasPrefix(s, "--") {
		return tokenLong
	}
	return tokenShort
}

// splitLong - Splits the body of a long option token, "--name=value", into
// its name and attached value. The value is only present when '=' is.
func splitLong(s string) (name, value string, hasValue bool) {
	return strings.Cut(strings.TrimPrefix(s, "--"), "=")
}
