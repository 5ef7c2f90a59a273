// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package completion

import (
	"reflect"
	"testing"

	"github.com/DavidGamba/go-getopt"
)

func TestComplete(t *testing.T) {
	longopts := []getopt.Option{
		{Name: "version", HasArg: getopt.NoArgument, Val: 'v'},
		{Name: "help", HasArg: getopt.NoArgument, Val: 'h'},
		{Name: "first", HasArg: getopt.RequiredArgument, Val: '1'},
		{Name: "firstly", HasArg: getopt.NoArgument, Val: '2'},
		{Name: "fifth", HasArg: getopt.OptionalArgument, Val: '5'},
		{},
	}
	tests := []struct {
		name    string
		word    string
		results []string
	}{
		{"all options", "-", []string{"-h", "--help", "-v", "--version", "--fifth=", "--first=", "--firstly"}},
		{"short option", "-h", []string{"-h"}},
		{"unknown short option", "-x", []string{}},
		{"cluster", "-hv", []string{}},
		{"all long options", "--", []string{"--fifth=", "--first=", "--firstly", "--help", "--version"}},
		{"prefix", "--fi", []string{"--fifth=", "--first=", "--firstly"}},
		{"exact", "--first", []string{"--first="}},
		{"unique", "--v", []string{"--version"}},
		{"unknown", "--x", []string{}},
		{"with value", "--first=x", []string{}},
		{"not an option", "fi", []string{}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Complete(tt.word, "hv", longopts)
			if !reflect.DeepEqual(got, tt.results) {
				t.Errorf("Complete(%q) = %q, want %q", tt.word, got, tt.results)
			}
		})
	}
}
