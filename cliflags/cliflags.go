// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliflags implements the command-line surface (§6): flags are
// either single- or double-dash prefixed identifiers followed by zero or
// more positional arguments; arguments with no preceding flag are
// warnings. Typed accessors convert the nth positional argument of a
// flag, returning a descriptive error on missing flag, missing
// argument, or failed conversion. Generalizes main.go's single-binary-
// argument `flag.Parse()`/`flag.Args()`/`utl.Atob` use to per-flag
// positional-argument accessors.
package cliflags

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Scanner holds the parsed flag -> positional-argument-list mapping for
// one argv, plus any bare (flag-less) arguments encountered as warnings.
type Scanner struct {
	args     map[string][]string
	order    []string
	Warnings []string
}

func isFlag(s string) bool {
	return strings.HasPrefix(s, "-")
}

func trimFlag(s string) string {
	return strings.TrimLeft(s, "-")
}

// Parse scans argv (typically os.Args[1:]) into flag -> positional-
// argument groups. Everything before the first flag is recorded as a
// warning (a positional argument with no owning flag).
func Parse(argv []string) *Scanner {
	s := &Scanner{args: make(map[string][]string)}
	var current string
	haveCurrent := false
	for _, a := range argv {
		if isFlag(a) {
			current = trimFlag(a)
			if _, ok := s.args[current]; !ok {
				s.args[current] = []string{}
				s.order = append(s.order, current)
			}
			haveCurrent = true
			continue
		}
		if !haveCurrent {
			s.Warnings = append(s.Warnings, a)
			continue
		}
		s.args[current] = append(s.args[current], a)
	}
	return s
}

// HasFlag reports whether flag was present on the command line.
func (s *Scanner) HasFlag(flag string) bool {
	_, ok := s.args[flag]
	return ok
}

// Flags returns every flag encountered, in first-seen order.
func (s *Scanner) Flags() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Scanner) nth(flag string, n int) (string, error) {
	vals, ok := s.args[flag]
	if !ok {
		return "", chk.Err("cliflags: flag %q not found\n", flag)
	}
	if n < 0 || n >= len(vals) {
		return "", chk.Err("cliflags: flag %q is missing argument %d\n", flag, n)
	}
	return vals[n], nil
}

// String returns the nth positional argument of flag as a string.
func (s *Scanner) String(flag string, n int) (string, error) {
	return s.nth(flag, n)
}

// Bool returns the nth positional argument of flag converted to bool.
func (s *Scanner) Bool(flag string, n int) (bool, error) {
	v, err := s.nth(flag, n)
	if err != nil {
		return false, err
	}
	b, convErr := strconv.ParseBool(v)
	if convErr != nil {
		return false, chk.Err("cliflags: flag %q argument %d (%q) is not a bool: %v\n", flag, n, v, convErr)
	}
	return b, nil
}

// Int returns the nth positional argument of flag converted to int.
func (s *Scanner) Int(flag string, n int) (int, error) {
	v, err := s.nth(flag, n)
	if err != nil {
		return 0, err
	}
	i, convErr := strconv.Atoi(v)
	if convErr != nil {
		return 0, chk.Err("cliflags: flag %q argument %d (%q) is not an int: %v\n", flag, n, v, convErr)
	}
	return i, nil
}

// Double returns the nth positional argument of flag converted to
// float64.
func (s *Scanner) Double(flag string, n int) (float64, error) {
	v, err := s.nth(flag, n)
	if err != nil {
		return 0, err
	}
	f, convErr := strconv.ParseFloat(v, 64)
	if convErr != nil {
		return 0, chk.Err("cliflags: flag %q argument %d (%q) is not a double: %v\n", flag, n, v, convErr)
	}
	return f, nil
}
