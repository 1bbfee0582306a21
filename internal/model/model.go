// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Model and its parameter shapes.
package model

import (
	"math"
	"strconv"
	"strings"
)

// DefaultName is used when no manifest is given.
const DefaultName = "model"

// MaxSize bounds the number of values in one variable and in the parameters
// of a model.
const MaxSize = math.MaxInt32

// Model is the format-agnostic representation of a model manifest. It
// satisfies services.Model.
type Model struct {
	name        string
	Description string
	Parameters  []Variable
	Generated   []Variable
	// Source is the manifest file the block came from.
	Source string
}

// Variable is a named block of values with a fixed shape. An empty Dims is a
// scalar.
type Variable struct {
	Name string
	Dims []int
}

// Empty returns a model with no parameters and no generated quantities.
func Empty() *Model {
	return &Model{name: DefaultName}
}

// Name returns the model name from the manifest label.
func (m *Model) Name() string {
	return m.name
}

// NumParamsR returns the number of unconstrained parameters.
func (m *Model) NumParamsR() int {
	total := 0
	for _, p := range m.Parameters {
		total += p.Size()
	}
	return total
}

// Columns returns the output column names of every parameter followed by
// every generated quantity.
func (m *Model) Columns() []string {
	var cols []string
	for _, p := range m.Parameters {
		cols = append(cols, p.Columns()...)
	}
	for _, g := range m.Generated {
		cols = append(cols, g.Columns()...)
	}
	return cols
}

// Size is the number of scalar values in the variable.
func (v Variable) Size() int {
	size := 1
	for _, d := range v.Dims {
		size *= d
	}
	return size
}

// Columns names each scalar of the variable, last index varying slowest and
// indices starting at 1, e.g. beta.1.1, beta.2.1, beta.1.2.
func (v Variable) Columns() []string {
	if len(v.Dims) == 0 {
		return []string{v.Name}
	}
	size := v.Size()
	cols := make([]string, 0, size)
	idx := make([]int, len(v.Dims))
	for n := 0; n < size; n++ {
		var b strings.Builder
		b.WriteString(v.Name)
		for _, i := range idx {
			b.WriteByte('.')
			b.WriteString(strconv.Itoa(i + 1))
		}
		cols = append(cols, b.String())

		for d := 0; d < len(idx); d++ {
			idx[d]++
			if idx[d] < v.Dims[d] {
				break
			}
			idx[d] = 0
		}
	}
	return cols
}
