// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command wgetopt - parses shell script options the way getopt_long does.
//
//	eval set -- "$(wgetopt -o ab:c:: -l alpha,beta:,gamma:: -n myscript -- "$@")"
package main

import (
	"os"

	"github.com/DavidGamba/go-getopt/internal/cli"
)

func main() {
	os.Exit(program(os.Args))
}

func program(args []string) int {
	return cli.Execute(args[1:], os.Stdout, os.Stderr)
}
