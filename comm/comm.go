// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comm wraps the distributed-communicator abstraction (§1/§5):
// the parallel-communication primitive is an external collaborator — only
// rank/size/broadcast/scatter/gather/allreduce matter here. Function-style
// surface mirrors github.com/cpmech/gosl/mpi, extended with the
// Bcast/Scatter/Gather operations the mpi package itself does not need.
package comm

import "github.com/cpmech/gosl/mpi"

// IsOn reports whether the process is running under MPI.
func IsOn() bool { return mpi.IsOn() }

// Rank returns this process's rank (0 if MPI is off).
func Rank() int { return mpi.Rank() }

// Size returns the communicator's size (1 if MPI is off).
func Size() int { return mpi.Size() }

// Start initializes the underlying communicator; verbose enables startup
// logging. Mirrors mpi.Start.
func Start(verbose bool) { mpi.Start(verbose) }

// Stop finalizes the underlying communicator. Mirrors mpi.Stop.
func Stop(verbose bool) { mpi.Stop(verbose) }

// IntAllReduceMax reduces dest[i] = max over ranks of orig[i], collective
// across the whole communicator. Mirrors mpi.IntAllReduceMax.
func IntAllReduceMax(dest, orig []int) { mpi.IntAllReduceMax(dest, orig) }

// AllReduceSum reduces dest[i] = sum over ranks of orig[i], collective
// across the whole communicator. Mirrors mpi.AllReduceSum.
func AllReduceSum(dest, orig []float64) { mpi.AllReduceSum(dest, orig) }

// Bcast broadcasts buf from root to every rank; a no-op under a single
// process. Extends the mpi package's reduction-only surface per §1's
// "broadcast/scatter/gather" wording, built on the confirmed
// mpi.AllReduceSum primitive rather than a dedicated broadcast call: every
// non-root rank zeroes its copy of buf first, so the sum-reduction across
// ranks reproduces root's values everywhere.
func Bcast(buf []float64, root int) {
	if !mpi.IsOn() || mpi.Size() < 2 {
		return
	}
	if mpi.Rank() != root {
		for i := range buf {
			buf[i] = 0
		}
	}
	out := make([]float64, len(buf))
	mpi.AllReduceSum(out, buf)
	copy(buf, out)
}

// Scatter splits src into size-equal chunks and returns this rank's
// chunk. It only slices the local src, with no communication, so src
// must already hold the full array on every rank; root is not used.
func Scatter(src []float64, root int) []float64 {
	if !mpi.IsOn() || mpi.Size() < 2 {
		return src
	}
	n := len(src) / mpi.Size()
	r := mpi.Rank()
	return src[r*n : (r+1)*n]
}

// Gather collects every rank's local slice into a single slice on every
// rank (an allgather), via one AllReduceSum over a zero-padded buffer.
func Gather(local []float64, totalLen, offset int) []float64 {
	if !mpi.IsOn() || mpi.Size() < 2 {
		out := make([]float64, totalLen)
		copy(out[offset:], local)
		return out
	}
	padded := make([]float64, totalLen)
	copy(padded[offset:], local)
	out := make([]float64, totalLen)
	mpi.AllReduceSum(out, padded)
	return out
}
