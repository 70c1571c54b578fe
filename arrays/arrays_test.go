// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrays

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_unique01(tst *testing.T) {

	chk.PrintTitle("Test unique01")

	xs := []int{1, 1, 2, 3, 3, 3, 4}
	u := UniqueArray(xs)
	chk.Ints(tst, "unique", u, []int{2, 4})
	if UniqueCount(xs) != 2 {
		tst.Errorf("unique count failed: got %d\n", UniqueCount(xs))
	}
}

func Test_distinct01(tst *testing.T) {

	chk.PrintTitle("Test distinct01")

	xs := []int{1, 1, 2, 3, 3, 3, 4}
	d, m := DistinctArray(xs)
	chk.Ints(tst, "distinct", d, []int{1, 2, 3, 4})
	chk.Ints(tst, "multiplicity", m, []int{2, 1, 3, 1})

	// idempotence: distinctArray(distinctArray(xs)) == distinctArray(xs)
	d2, _ := DistinctArray(d)
	chk.Ints(tst, "distinct idempotent", d2, d)
}

func Test_intersect01(tst *testing.T) {

	chk.PrintTitle("Test intersect01")

	a := []int{1, 2, 3, 5, 8}
	b := []int{2, 3, 4, 8, 9}
	chk.Ints(tst, "a∩b", IntersectArray(a, b), []int{2, 3, 8})
	chk.Ints(tst, "b∩a", IntersectArray(b, a), []int{2, 3, 8})
	if IntersectCount(a, b) != 3 {
		tst.Errorf("intersect count failed\n")
	}
}

func Test_minus01(tst *testing.T) {

	chk.PrintTitle("Test minus01")

	a := []int{1, 2, 3, 5, 8}
	b := []int{2, 3, 4, 8, 9}
	chk.Ints(tst, "a-b", MinusArray(a, b), []int{1, 5})
	if MinusCount(a, b) != 2 {
		tst.Errorf("minus count failed\n")
	}
}

func Test_search01(tst *testing.T) {

	chk.PrintTitle("Test search01")

	xs := []int{1, 3, 5, 7, 9}
	idx, err := BinarySearch(xs, 7)
	if err != nil || idx != 3 {
		tst.Errorf("binary search failed: idx=%d err=%v\n", idx, err)
	}
	_, err = BinarySearch(xs, 6)
	if err == nil {
		tst.Errorf("binary search should fail for missing value\n")
	}
	idx, err = LinearSearch([]int{9, 3, 7}, 3)
	if err != nil || idx != 1 {
		tst.Errorf("linear search failed: idx=%d err=%v\n", idx, err)
	}
}

func Test_random01(tst *testing.T) {

	chk.PrintTitle("Test random01")

	dst := make([]int, 100)
	src := rand.New(rand.NewSource(42))
	if err := RandomUniform(dst, 5, 9, src); err != nil {
		tst.Errorf("random uniform failed: %v\n", err)
	}
	for _, v := range dst {
		if v < 5 || v > 9 {
			tst.Errorf("value %d out of range [5,9]\n", v)
		}
	}
}

func Test_helpers01(tst *testing.T) {

	chk.PrintTitle("Test helpers01")

	sum, err := Add([]int{1, 2, 3}, []int{4, 5, 6})
	if err != nil {
		tst.Errorf("add failed: %v\n", err)
	}
	chk.Ints(tst, "add", sum, []int{5, 7, 9})

	if Sum([]int{1, 2, 3}) != 6 {
		tst.Errorf("sum failed\n")
	}

	dup := Duplicate([]int{1, 2, 3})
	dup[0] = 99
	if dup[0] == 1 {
		tst.Errorf("duplicate should not alias original\n")
	}

	dst := make([]int, 1)
	if err := Copy(dst, []int{1, 2}); err == nil {
		tst.Errorf("copy into undersized destination should fail\n")
	}

	if _, err := SafeSizeToInt(-1); err == nil {
		tst.Errorf("safe size to int should reject negative size\n")
	}
}
