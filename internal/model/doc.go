// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model loads the manifest that describes a compiled model to the
// dispatcher: its name and the shape of every free parameter.
//
// A manifest is one or more HCL files holding exactly one model block:
//
//	model "bernoulli" {
//	  description = "Bernoulli trials with a beta prior"
//
//	  parameter "theta" {}
//
//	  parameter "beta" {
//	    dims = [3, 2]
//	  }
//
//	  generated_quantity "y_rep" {
//	    dims = [10]
//	  }
//	}
//
// The number of unconstrained parameters is the sum of the sizes of the
// parameter blocks. Generated quantities are output columns only and never
// count toward it, which is what lets a model with no parameter blocks run
// under algorithm=fixed_param.
package model
