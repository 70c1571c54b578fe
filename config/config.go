// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the configuration surface (§6): a structured
// JSON document recognizing BenchmarkName/Repetitions/DataDistribution,
// a LinearSolver.LinearSolverPETSc subconfig, and SparseMatrix/RHSVector/
// SolVector file descriptors. Follows inp/sim.go's Data/LinSolData/
// SolverData SetDefault/PostProcess pattern: defaults are applied first,
// then PostProcess validates and derives fields.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FileFormat enumerates the recognized on-disk vector/matrix encodings.
// Only HDF5 is currently supported (§6).
type FileFormat string

// FileFormatHDF5 is the only currently recognized file format.
const FileFormatHDF5 FileFormat = "HDF5"

// DataDistribution selects how the benchmark distributes work across
// ranks.
type DataDistribution string

const (
	DistributionConcurrent  DataDistribution = "Concurrent"
	DistributionDistributed DataDistribution = "Distributed"
)

// FileDescriptor names a file path and its format.
type FileDescriptor struct {
	FilePath   string     `json:"FilePath"`
	FileFormat FileFormat `json:"FileFormat"`
}

// PostProcess rejects an unrecognized format.
func (d *FileDescriptor) PostProcess(label string) error {
	if d.FileFormat == "" {
		d.FileFormat = FileFormatHDF5
	}
	if d.FileFormat != FileFormatHDF5 {
		return chk.Err("config: %s.FileFormat: unsupported format %q (only HDF5)\n", label, d.FileFormat)
	}
	return nil
}

// LinearSolverPETScData holds the solver-profile knobs (generalizes
// inp/sim.go's LinSolData).
type LinearSolverPETScData struct {
	Algorithm string  `json:"Algorithm"`
	ETol      float64 `json:"eTol"`
	RTol      float64 `json:"rTol"`
}

// SetDefault fills unset fields with the profile's defaults.
func (o *LinearSolverPETScData) SetDefault() {
	if o.Algorithm == "" {
		o.Algorithm = "CommandLine"
	}
	if o.RTol == 0 {
		o.RTol = 1e-8
	}
	if o.ETol == 0 {
		o.ETol = 1e-12
	}
}

// PostProcess rejects an unrecognized algorithm name.
func (o *LinearSolverPETScData) PostProcess() error {
	switch o.Algorithm {
	case "CommandLine", "CGAMG":
		return nil
	default:
		return chk.Err("config: LinearSolver.LinearSolverPETSc.Algorithm: unknown algorithm %q\n", o.Algorithm)
	}
}

// LinearSolverData wraps the PETSc-flavoured solver subconfig.
type LinearSolverData struct {
	LinearSolverPETSc LinearSolverPETScData `json:"LinearSolverPETSc"`
}

// Data is the top-level configuration document.
type Data struct {
	BenchmarkName    string            `json:"BenchmarkName"`
	Repetitions      int               `json:"Repetitions"`
	DataDistribution DataDistribution  `json:"DataDistribution"`
	LinearSolver     LinearSolverData  `json:"LinearSolver"`
	SparseMatrix     struct {
		SparseMatrixFile FileDescriptor `json:"SparseMatrixFile"`
	} `json:"SparseMatrix"`
	RHSVector struct {
		VectorFile FileDescriptor `json:"VectorFile"`
	} `json:"RHSVector"`
	SolVector struct {
		VectorFile FileDescriptor `json:"VectorFile"`
	} `json:"SolVector"`
}

// SetDefault fills unset fields across the whole document.
func (o *Data) SetDefault() {
	if o.Repetitions == 0 {
		o.Repetitions = 1
	}
	if o.DataDistribution == "" {
		o.DataDistribution = DistributionConcurrent
	}
	o.LinearSolver.LinearSolverPETSc.SetDefault()
}

// PostProcess validates derived/cross-field constraints across the whole
// document.
func (o *Data) PostProcess() error {
	switch o.DataDistribution {
	case DistributionConcurrent, DistributionDistributed:
	default:
		return chk.Err("config: DataDistribution: unknown value %q\n", o.DataDistribution)
	}
	if err := o.LinearSolver.LinearSolverPETSc.PostProcess(); err != nil {
		return err
	}
	if err := o.SparseMatrix.SparseMatrixFile.PostProcess("SparseMatrix.SparseMatrixFile"); err != nil {
		return err
	}
	if err := o.RHSVector.VectorFile.PostProcess("RHSVector.VectorFile"); err != nil {
		return err
	}
	return o.SolVector.VectorFile.PostProcess("SolVector.VectorFile")
}

// Read loads, defaults, and post-processes a configuration document from
// path.
func Read(path string) (*Data, error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("config: cannot read %q: %v\n", path, err)
	}
	d := new(Data)
	d.SetDefault()
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, chk.Err("config: cannot parse %q: %v\n", path, err)
	}
	if err := d.PostProcess(); err != nil {
		return nil, err
	}
	return d, nil
}
