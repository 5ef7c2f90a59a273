// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"io"
	"log"
	"os"

	"github.com/samber/mo"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - io.Writer to write diagnostics to when a Parser doesn't set its own. Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// Return codes that are not option characters.
const (
	Done       = -1  // No more options.
	Unknown    = '?' // Unknown option, ambiguous abbreviation or bad argument.
	MissingArg = ':' // Missing required argument.
)

const initOptind = 1

// Parser - holds the state of one parse over one argument vector.
//
// The exported fields are the parse state and can be read or changed between
// calls, for example to rewind Optind and parse the vector again.
//
// A Parser is not safe for concurrent use. Independent parses, concurrent or
// not, should each use their own Parser.
type Parser struct {
	// Optind is the index of the next element of the argument vector to scan.
	Optind int

	// Optarg holds the argument of the option recognized by the last call.
	// It is None when that option had no argument.
	Optarg mo.Option[string]

	// Optopt holds the offending option code after an error.
	// After a short option is scanned it holds that option character.
	Optopt int

	// Opterr enables diagnostics on unknown options and missing arguments.
	Opterr bool

	// Writer receives diagnostics. When nil the package Writer is used.
	Writer io.Writer

	cursor   int // byte offset into args[cursorAt] of the next short option, 0 when not in a cluster
	cursorAt int // index of the token the cursor belongs to
	endAt    int // Optind right after a "--" terminator, 0 when not seen
}

// New - Returns a Parser ready to scan a new argument vector from index 1.
func New() *Parser {
	return &Parser{
		Optind: initOptind,
		Opterr: true,
	}
}

// Reset - Restores the scan state so a new argument vector can be parsed.
// Opterr and Writer keep their current values.
func (p *Parser) Reset() {
	p.Optind = initOptind
	p.Optarg = mo.None[string]()
	p.Optopt = 0
	p.cursor = 0
	p.cursorAt = 0
	p.endAt = 0
}

func (p *Parser) writer() io.Writer {
	if p.Writer != nil {
		return p.Writer
	}
	return Writer
}

// CommandLine - process wide Parser used by the package level functions.
var CommandLine = New()

// Getopt - Calls CommandLine.Getopt.
func Getopt(args []string, optstring string) int {
	return CommandLine.Getopt(args, optstring)
}

// GetoptLong - Calls CommandLine.GetoptLong.
func GetoptLong(args []string, optstring string, longopts []Option, longindex *int) int {
	return CommandLine.GetoptLong(args, optstring, longopts, longindex)
}

// Reset - Resets CommandLine. It must be called before parsing a different argument vector.
func Reset() {
	CommandLine.Reset()
}
