// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"fmt"
	"path/filepath"

	"github.com/DavidGamba/go-getopt/internal/optspec"
)

// Remaining - Returns the elements of args that haven't been scanned yet,
// usually the positional arguments once Done has been returned.
func (p *Parser) Remaining(args []string) []string {
	if p.Optind >= len(args) {
		return []string{}
	}
	if p.Optind <= 0 {
		return args
	}
	return args[p.Optind:]
}

// report - Writes the diagnostic for perr unless disabled by Opterr or a
// silent optstring.
func (p *Parser) report(args []string, spec optspec.Short, perr *ParseError) {
	if perr == nil {
		return
	}
	Logger.Printf("optind %d: %s", p.Optind, perr)
	if !p.Opterr || spec.Silent {
		return
	}
	fmt.Fprintf(p.writer(), "%s: %s\n", progName(args), perr)
}

func progName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "getopt"
	}
	return filepath.Base(args[0])
}
