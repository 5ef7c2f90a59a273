// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package config - TOML description of an option set.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/help"
	"github.com/DavidGamba/go-getopt/internal/optspec"
	toml "github.com/pelletier/go-toml/v2"
)

// LongBase - Val assigned to long options without a short alias is LongBase
// plus their index. It is above the Unicode range so it never collides with
// an option character.
const LongBase = utf8.MaxRune + 1

// Config captures an option set: the short option string, the long option
// table and how the parsed result is printed.
type Config struct {
	Name  string `toml:"name"`
	Short string `toml:"short"`
	Shell string `toml:"shell"`
	Quiet bool   `toml:"quiet"`
	Long  []Long `toml:"long"`
}

// Long describes one long option.
type Long struct {
	Name        string `toml:"name"`
	HasArg      string `toml:"has_arg"`
	Short       string `toml:"short"`
	ArgName     string `toml:"arg_name"`
	Description string `toml:"description"`
}

var (
	// ErrInvalidShell indicates the shell is not one the output can be quoted for.
	ErrInvalidShell = errors.New("config.shell must be bash, sh, mksh or posix")
	// ErrMissingLongName indicates a [[long]] entry without a name.
	ErrMissingLongName = errors.New("config.long.name must be set")
	// ErrDuplicateLongName indicates two [[long]] entries share a name.
	ErrDuplicateLongName = errors.New("config.long.name must be unique")
	// ErrInvalidShortAlias indicates a short alias that is not a single option character.
	ErrInvalidShortAlias = errors.New("config.long.short must be a single character other than ':' or '-'")
)

// Shells - Names accepted by the shell setting.
var Shells = []string{"bash", "sh", "mksh", "posix"}

func (c *Config) applyDefaults() {
	if c.Shell == "" {
		c.Shell = "bash"
	} else {
		c.Shell = strings.ToLower(c.Shell)
	}
	for i := range c.Long {
		c.Long[i].Name = strings.TrimLeft(c.Long[i].Name, "-")
		c.Long[i].HasArg = strings.ToLower(c.Long[i].HasArg)
	}
}

// Validate ensures the option set can be compiled.
func (c Config) Validate() error {
	if !validShell(c.Shell) {
		return fmt.Errorf("%w, got %q", ErrInvalidShell, c.Shell)
	}
	seen := map[string]bool{}
	for i, l := range c.Long {
		if l.Name == "" {
			return fmt.Errorf("long option %d: %w", i+1, ErrMissingLongName)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateLongName, l.Name)
		}
		seen[l.Name] = true
		if _, err := optspec.ParseHasArg(l.HasArg); err != nil {
			return fmt.Errorf("long option %q: %w", l.Name, err)
		}
		if l.Short != "" {
			if _, err := l.shortRune(); err != nil {
				return fmt.Errorf("long option %q: %w", l.Name, err)
			}
		}
	}
	return nil
}

func validShell(s string) bool {
	for _, shell := range Shells {
		if s == shell {
			return true
		}
	}
	return false
}

func (l Long) shortRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(l.Short)
	if size != len(l.Short) || r == utf8.RuneError || r == ':' || r == '-' {
		return 0, ErrInvalidShortAlias
	}
	return r, nil
}

// Load reads an option set from disk.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data, path)
}

// Parse decodes an option set, name is used in error messages.
func Parse(data []byte, name string) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", name, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Longopts - Returns the long option table. A long option with a short alias
// returns the alias character, any other returns LongBase plus its index.
// Call it on a validated Config.
func (c Config) Longopts() []getopt.Option {
	longopts := make([]getopt.Option, 0, len(c.Long))
	for i, l := range c.Long {
		hasArg, _ := optspec.ParseHasArg(l.HasArg)
		val := LongBase + i
		if r, err := l.shortRune(); err == nil {
			val = int(r)
		}
		longopts = append(longopts, getopt.Option{Name: l.Name, HasArg: hasArg, Val: val})
	}
	return longopts
}

// Entries - Returns the help entries of the option set with the argument
// names and descriptions of the long options.
func (c Config) Entries() []help.Entry {
	entries := help.Entries(c.Short, c.Longopts())
	byName := map[string]Long{}
	for _, l := range c.Long {
		byName[l.Name] = l
	}
	for i, e := range entries {
		if l, ok := byName[e.Long]; ok && e.Long != "" {
			entries[i].ArgName = l.ArgName
			entries[i].Description = l.Description
		}
	}
	return entries
}
