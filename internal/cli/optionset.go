// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/help"
	"github.com/DavidGamba/go-getopt/internal/config"
	"github.com/DavidGamba/go-getopt/internal/optspec"
	"golang.org/x/term"
	"mvdan.cc/sh/v3/syntax"
)

// optionSet - options to parse the arguments with and how to print them.
type optionSet struct {
	name      string
	optstring string
	longopts  []getopt.Option
	entries   []help.Entry
	shell     string
	quiet     bool
	unquoted  bool
}

// buildOptionSet - Combines the config file, if any, with the command line
// flags. Flags win over the config file, long options from both are kept.
func buildOptionSet(opts *options) (optionSet, error) {
	cfg := config.Config{Shell: "bash"}
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return optionSet{}, err
		}
	}
	set := optionSet{
		name:      commandName,
		optstring: cfg.Short,
		longopts:  cfg.Longopts(),
		entries:   cfg.Entries(),
		shell:     cfg.Shell,
		quiet:     cfg.Quiet || opts.quiet,
		unquoted:  opts.unquoted,
	}
	if cfg.Name != "" {
		set.name = cfg.Name
	}
	if opts.name != "" {
		set.name = opts.name
	}
	if opts.optstring != "" {
		set.optstring = opts.optstring
	}
	if opts.shellChanged || opts.configPath == "" {
		set.shell = strings.ToLower(opts.shell)
	}
	if _, err := shellVariant(set.shell); err != nil {
		return optionSet{}, err
	}
	fromConfig := len(set.longopts)
	for _, list := range opts.longs {
		longs, err := optspec.ParseLong(list)
		if err != nil {
			return optionSet{}, err
		}
		for _, l := range longs {
			set.longopts = append(set.longopts, getopt.Option{Name: l.Name, HasArg: l.HasArg, Val: config.LongBase + len(set.longopts)})
		}
	}
	if opts.optstring != "" || len(set.longopts) > fromConfig {
		// The help entries only carry descriptions for options known to the config file.
		described := map[string]help.Entry{}
		for _, e := range set.entries {
			if e.Long != "" {
				described[e.Long] = e
			}
		}
		set.entries = help.Entries(set.optstring, set.longopts)
		for i, e := range set.entries {
			if d, ok := described[e.Long]; ok && e.Long != "" {
				set.entries[i].ArgName = d.ArgName
				set.entries[i].Description = d.Description
			}
		}
	}
	return set, nil
}

func shellVariant(shell string) (syntax.LangVariant, error) {
	switch shell {
	case "bash":
		return syntax.LangBash, nil
	case "sh", "posix":
		return syntax.LangPOSIX, nil
	case "mksh":
		return syntax.LangMirBSDKorn, nil
	}
	return 0, fmt.Errorf("%w, got %q", config.ErrInvalidShell, shell)
}

// normalize - Parses args with the option set and returns each option
// followed by its argument, then "--" and the remaining arguments.
// Options that fail to parse are reported and left out, ok is false then.
func normalize(set optionSet, args []string, stderr io.Writer) ([]string, bool) {
	argv := append([]string{set.name}, args...)
	spec := optspec.Parse(set.optstring)
	p := getopt.New()
	p.Writer = stderr
	p.Opterr = !set.quiet

	words := []string{}
	ok := true
	for {
		longindex := -1
		code := p.GetoptLong(argv, set.optstring, set.longopts, &longindex)
		if code == getopt.Done {
			break
		}
		if code == getopt.Unknown || code == getopt.MissingArg {
			ok = false
			continue
		}
		var hasArg getopt.HasArg
		if longindex >= 0 {
			o := set.longopts[longindex]
			hasArg = o.HasArg
			words = append(words, "--"+o.Name)
		} else {
			hasArg, _ = spec.Lookup(rune(code))
			words = append(words, "-"+string(rune(code)))
		}
		if hasArg != getopt.NoArgument {
			// An absent optional argument is printed as an empty word.
			words = append(words, p.Optarg.OrEmpty())
		}
	}
	words = append(words, "--")
	words = append(words, p.Remaining(argv)...)
	return words, ok
}

// quoteWords - Joins the words quoted for the shell.
func quoteWords(words []string, shell string, unquoted bool) (string, error) {
	if unquoted {
		return strings.Join(words, " "), nil
	}
	lang, err := shellVariant(shell)
	if err != nil {
		return "", err
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		q, err := syntax.Quote(w, lang)
		if err != nil {
			return "", fmt.Errorf("quote %q: %w", w, err)
		}
		out = append(out, q)
	}
	return strings.Join(out, " "), nil
}

func printUsage(set optionSet, stdout io.Writer) error {
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			help.Width = width
		}
	}
	_, err := fmt.Fprint(stdout, help.Help(set.name, set.entries))
	return err
}
