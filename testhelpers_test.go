// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"bytes"
	"errors"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// newTestParser - Returns a Parser writing its diagnostics to the returned buffer.
func newTestParser() (*Parser, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	p := New()
	p.Writer = buf
	return p, buf
}

func checkOptind(t *testing.T, p *Parser, expected int) {
	t.Helper()
	if p.Optind != expected {
		t.Errorf("wrong optind: got %d, want %d", p.Optind, expected)
	}
}

func checkOptopt(t *testing.T, p *Parser, expected int) {
	t.Helper()
	if p.Optopt != expected {
		t.Errorf("wrong optopt: got %q, want %q", p.Optopt, expected)
	}
}

func checkNoOptarg(t *testing.T, p *Parser) {
	t.Helper()
	if v, ok := p.Optarg.Get(); ok {
		t.Errorf("unexpected optarg: %q", v)
	}
}

func checkOptarg(t *testing.T, p *Parser, expected string) {
	t.Helper()
	v, ok := p.Optarg.Get()
	if !ok {
		t.Errorf("missing optarg, want %q", expected)
		return
	}
	if v != expected {
		t.Errorf("wrong optarg: got %q, want %q", v, expected)
	}
}
