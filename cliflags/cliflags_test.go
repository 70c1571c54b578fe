// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliflags

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cliflags_basic01(tst *testing.T) {

	chk.PrintTitle("Test cliflags basic01")

	s := Parse([]string{"warn1", "-verbose", "true", "--reps", "10", "3.5", "-name", "bench01"})

	if len(s.Warnings) != 1 || s.Warnings[0] != "warn1" {
		tst.Errorf("warnings failed: got %v\n", s.Warnings)
	}

	b, err := s.Bool("verbose", 0)
	if err != nil || !b {
		tst.Errorf("bool accessor failed: got %v, %v\n", b, err)
	}

	reps, err := s.Int("reps", 0)
	if err != nil || reps != 10 {
		tst.Errorf("int accessor failed: got %v, %v\n", reps, err)
	}
	f, err := s.Double("reps", 1)
	if err != nil || f != 3.5 {
		tst.Errorf("double accessor failed: got %v, %v\n", f, err)
	}

	name, err := s.String("name", 0)
	if err != nil || name != "bench01" {
		tst.Errorf("string accessor failed: got %v, %v\n", name, err)
	}
}

func Test_cliflags_missing01(tst *testing.T) {

	chk.PrintTitle("Test cliflags missing01")

	s := Parse([]string{"-verbose"})
	if _, err := s.Bool("missing", 0); err == nil {
		tst.Errorf("expected error for missing flag\n")
	}
	if _, err := s.Bool("verbose", 0); err == nil {
		tst.Errorf("expected error for missing argument\n")
	}

	s2 := Parse([]string{"-reps", "notanumber"})
	if _, err := s2.Int("reps", 0); err == nil {
		tst.Errorf("expected error for failed int conversion\n")
	}
}
