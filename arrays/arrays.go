// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrays implements set-like operations over sorted integer
// sequences: uniqueness, distinctness, intersection, difference and search.
// Callers that pass unsorted input must expect undefined results; these
// routines assume sortedness and do not re-sort their arguments.
package arrays

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"
)

// UniqueCount returns the number of elements in the sorted slice xs that
// appear exactly once.
func UniqueCount(xs []int) int {
	n := len(xs)
	count := 0
	for i := 0; i < n; i++ {
		leftDup := i > 0 && xs[i] == xs[i-1]
		rightDup := i < n-1 && xs[i] == xs[i+1]
		if !leftDup && !rightDup {
			count++
		}
	}
	return count
}

// UniqueArray returns the elements of the sorted slice xs that appear
// exactly once, preserving order.
func UniqueArray(xs []int) []int {
	out := make([]int, 0, UniqueCount(xs))
	n := len(xs)
	for i := 0; i < n; i++ {
		leftDup := i > 0 && xs[i] == xs[i-1]
		rightDup := i < n-1 && xs[i] == xs[i+1]
		if !leftDup && !rightDup {
			out = append(out, xs[i])
		}
	}
	return out
}

// DistinctCount returns the number of equivalence classes in the sorted
// slice xs (i.e. the number of distinct values).
func DistinctCount(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	count := 1
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[i-1] {
			count++
		}
	}
	return count
}

// DistinctArray returns one representative per equivalence class of the
// sorted slice xs, preserving sorted order, together with the multiplicity
// of each representative.
func DistinctArray(xs []int) (distinct []int, multiplicity []int) {
	if len(xs) == 0 {
		return nil, nil
	}
	distinct = make([]int, 0, DistinctCount(xs))
	multiplicity = make([]int, 0, DistinctCount(xs))
	cur := xs[0]
	cnt := 1
	for i := 1; i < len(xs); i++ {
		if xs[i] == cur {
			cnt++
			continue
		}
		distinct = append(distinct, cur)
		multiplicity = append(multiplicity, cnt)
		cur = xs[i]
		cnt = 1
	}
	distinct = append(distinct, cur)
	multiplicity = append(multiplicity, cnt)
	return
}

// IntersectCount returns the number of elements common to the sorted,
// duplicate-free slices a and b.
func IntersectCount(a, b []int) int {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return count
}

// IntersectArray returns the elements common to the sorted, duplicate-free
// slices a and b, in sorted order.
func IntersectArray(a, b []int) []int {
	out := make([]int, 0, IntersectCount(a, b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// MinusCount returns the number of elements of the sorted, duplicate-free
// slice a that do not appear in b.
func MinusCount(a, b []int) int {
	count := 0
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) || a[i] < b[j] {
			count++
			i++
			continue
		}
		if a[i] == b[j] {
			i++
			j++
			continue
		}
		j++
	}
	return count
}

// MinusArray returns the elements of the sorted, duplicate-free slice a
// that do not appear in b, in sorted order.
func MinusArray(a, b []int) []int {
	out := make([]int, 0, MinusCount(a, b))
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) || a[i] < b[j] {
			out = append(out, a[i])
			i++
			continue
		}
		if a[i] == b[j] {
			i++
			j++
			continue
		}
		j++
	}
	return out
}

// BinarySearch returns the index of val in the sorted slice xs, or -1 and
// a non-nil error if val is not present.
func BinarySearch(xs []int, val int) (int, error) {
	lo, hi := 0, len(xs)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case xs[mid] == val:
			return mid, nil
		case xs[mid] < val:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1, chk.Err("arrays: value %d not found\n", val)
}

// LinearSearch returns the index of val in xs (unsorted fallback), or -1
// and a non-nil error if val is not present.
func LinearSearch(xs []int, val int) (int, error) {
	for i, x := range xs {
		if x == val {
			return i, nil
		}
	}
	return -1, chk.Err("arrays: value %d not found\n", val)
}

// RandomUniform fills dst with values drawn from U[lo, hi] using the
// seeded PRNG src.
func RandomUniform(dst []int, lo, hi int, src *rand.Rand) error {
	if hi < lo {
		return chk.Err("arrays: invalid range [%d, %d]\n", lo, hi)
	}
	span := hi - lo + 1
	for i := range dst {
		dst[i] = lo + src.Intn(span)
	}
	return nil
}

// Add returns the element-wise sum of a and b.
func Add(a, b []int) ([]int, error) {
	if len(a) != len(b) {
		return nil, chk.Err("arrays: size mismatch %d != %d\n", len(a), len(b))
	}
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Sum returns the sum of all elements of xs.
func Sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

// Zero sets every element of xs to zero.
func Zero(xs []int) {
	for i := range xs {
		xs[i] = 0
	}
}

// Copy copies src into dst, which must be at least as long as src.
func Copy(dst, src []int) error {
	if len(dst) < len(src) {
		return chk.Err("arrays: undersized destination (%d < %d)\n", len(dst), len(src))
	}
	copy(dst, src)
	return nil
}

// Duplicate returns a fresh copy of xs.
func Duplicate(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}

// SafeSizeToInt converts a non-negative size value to int, failing if the
// value would overflow or is negative.
func SafeSizeToInt(size int64) (int, error) {
	if size < 0 {
		return 0, chk.Err("arrays: negative size %d\n", size)
	}
	if int64(int(size)) != size {
		return 0, chk.Err("arrays: size %d overflows int\n", size)
	}
	return int(size), nil
}
