// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/DavidGamba/go-getopt"
)

func ExampleParser_Getopt() {
	args := []string{"tar", "-xvf", "archive.tar", "-C", "/tmp", "file1", "-v"}

	p := getopt.New()
	p.Writer = os.Stdout
	for {
		c := p.Getopt(args, "xvf:C:")
		if c == getopt.Done {
			break
		}
		if arg, ok := p.Optarg.Get(); ok {
			fmt.Printf("-%c %s\n", c, arg)
		} else {
			fmt.Printf("-%c\n", c)
		}
	}
	fmt.Println("remaining:", p.Remaining(args))

	// Output:
	// -x
	// -v
	// -f archive.tar
	// -C /tmp
	// remaining: [file1 -v]
}

func ExampleParser_GetoptLong() {
	args := []string{"prog", "--verb", "--out=result.txt", "-n", "3", "--dry", "input"}

	verbose := 0
	longopts := []getopt.Option{
		{Name: "verbose", HasArg: getopt.NoArgument, Flag: &verbose, Val: 1},
		{Name: "output", HasArg: getopt.RequiredArgument, Val: 'o'},
		{Name: "dry-run", HasArg: getopt.NoArgument, Val: 'd'},
	}

	p := getopt.New()
	p.Writer = os.Stdout
	for {
		longindex := -1
		c := p.GetoptLong(args, "n:o:", longopts, &longindex)
		if c == getopt.Done {
			break
		}
		switch c {
		case 0:
			fmt.Printf("flag --%s set\n", longopts[longindex].Name)
		case 'o':
			fmt.Printf("output: %s\n", p.Optarg.MustGet())
		case 'n':
			fmt.Printf("count: %s\n", p.Optarg.MustGet())
		case 'd':
			fmt.Println("dry run")
		}
	}
	fmt.Println("verbose:", verbose)
	fmt.Println("remaining:", p.Remaining(args))

	// Output:
	// flag --verbose set
	// output: result.txt
	// count: 3
	// dry run
	// verbose: 1
	// remaining: [input]
}

func ExampleParser_Next() {
	args := []string{"prog", "-a", "--fi", "--second=2", "rest"}
	longopts := []getopt.Option{
		{Name: "first", HasArg: getopt.NoArgument, Val: '1'},
		{Name: "fifth", HasArg: getopt.NoArgument, Val: '5'},
		{Name: "second", HasArg: getopt.RequiredArgument, Val: '2'},
	}

	p := getopt.New()
	for {
		res, err := p.Next(args, "a", longopts)
		if errors.Is(err, getopt.ErrDone) {
			break
		}
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%q %q\n", res.Code, res.Arg.OrEmpty())
	}
	fmt.Println(p.Remaining(args))

	// Output:
	// 'a' ""
	// error: option '--fi' is ambiguous; possibilities: '--first' '--fifth'
	// '2' "2"
	// [rest]
}
