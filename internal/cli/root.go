// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cli - wgetopt, a getopt(1) style command to parse options in shell scripts.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/completion"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes
const (
	ExitOK       = 0
	ExitParse    = 1
	ExitParams   = 2
	ExitInternal = 3
	ExitTest     = 4
)

const commandName = "wgetopt"

// exitError - error carrying the exit code of the command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

type options struct {
	optstring    string
	longs        []string
	name         string
	quiet        bool
	quietOutput  bool
	shell        string
	shellChanged bool
	unquoted     bool
	configPath   string
	usage        bool
	complete     string
	test         bool
	debug        bool
}

// Execute - Runs wgetopt with args, which exclude the program name, and
// returns the exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		exitErr = &exitError{code: ExitInternal, err: err}
	}
	if exitErr.err != nil {
		fmt.Fprintf(stderr, "%s %s\n", errorPrefix(stderr), exitErr.err)
	}
	return exitErr.code
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           commandName + " [flags] -- [args...]",
		Short:         "Parse command options the way getopt_long does and print them normalized",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.shellChanged = cmd.Flags().Changed("shell")
			return run(opts, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.optstring, "options", "o", "", "short option string, for example \"ab:c::\"")
	flags.StringArrayVarP(&opts.longs, "longoptions", "l", nil, "comma separated long options, for example \"alpha,beta:,gamma::\"")
	flags.StringVarP(&opts.name, "name", "n", "", "program name used in diagnostics")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print diagnostics for bad options")
	flags.BoolVarP(&opts.quietOutput, "quiet-output", "Q", false, "do not print the normalized options")
	flags.StringVarP(&opts.shell, "shell", "s", "bash", "shell to quote the output for: bash, sh, mksh or posix")
	flags.BoolVarP(&opts.unquoted, "unquoted", "u", false, "do not quote the output")
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML file describing the options")
	flags.BoolVar(&opts.usage, "usage", false, "print the usage of the described options")
	flags.StringVar(&opts.complete, "complete", "", "print the completions of a partial option")
	flags.BoolVarP(&opts.test, "test", "T", false, "exit with status 4")
	flags.BoolVar(&opts.debug, "debug", false, "print debug logs to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: ExitParams, err: err}
	})
	return cmd
}

func run(opts *options, args []string, stdout, stderr io.Writer) error {
	if opts.test {
		return &exitError{code: ExitTest}
	}
	if opts.debug {
		getopt.Logger.SetOutput(stderr)
		completion.Debug.SetOutput(stderr)
	}
	set, err := buildOptionSet(opts)
	if err != nil {
		return &exitError{code: ExitParams, err: err}
	}

	switch {
	case opts.usage:
		return printUsage(set, stdout)
	case opts.complete != "":
		for _, c := range completion.Complete(opts.complete, set.optstring, set.longopts) {
			fmt.Fprintln(stdout, c)
		}
		return nil
	}

	words, ok := normalize(set, args, stderr)
	if !opts.quietOutput {
		line, err := quoteWords(words, set.shell, set.unquoted)
		if err != nil {
			return &exitError{code: ExitInternal, err: err}
		}
		fmt.Fprintln(stdout, line)
	}
	if !ok {
		return &exitError{code: ExitParse}
	}
	return nil
}

func errorPrefix(w io.Writer) string {
	prefix := commandName + ":"
	if !writerIsTerminal(w) {
		return prefix
	}
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	return c.Sprint(prefix)
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
