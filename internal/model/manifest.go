// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes model blocks from parsed HCL files.
package model

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/stangrid/internal/ctxlog"
)

// modelRootSchema defines the top-level structure of a manifest file.
type modelRootSchema struct {
	Models []*hclModel `hcl:"model,block"`
}

// hclModel represents a single 'model' block for decoding purposes.
type hclModel struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

var modelBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "parameter", LabelNames: []string{"name"}},
		{Type: "generated_quantity", LabelNames: []string{"name"}},
	},
}

var variableBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "dims"},
	},
}

// ParseModelFile decodes every 'model' block in hclFile.
func ParseModelFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Model, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing model definitions from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	schema := &modelRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, schema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	models := make([]*Model, 0, len(schema.Models))
	for _, parsed := range schema.Models {
		content, contentDiags := parsed.Body.Content(modelBodySchema)
		allDiags = append(allDiags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		m := &Model{name: parsed.Name, Source: filePath}
		if attr, exists := content.Attributes["description"]; exists {
			allDiags = append(allDiags, gohcl.DecodeExpression(attr.Expr, nil, &m.Description)...)
		}

		// Parameters and generated quantities share one namespace, as they
		// share the output header.
		seen := make(map[string]bool)
		var varDiags hcl.Diagnostics
		m.Parameters, varDiags = parseVariables(content.Blocks.OfType("parameter"), seen)
		allDiags = append(allDiags, varDiags...)
		if total := totalSize(m.Parameters); total > MaxSize {
			allDiags = append(allDiags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Too many parameters",
				Detail:   fmt.Sprintf("Model '%s' declares %d parameter values, more than %d.", parsed.Name, total, MaxSize),
				Subject:  parsed.Body.MissingItemRange().Ptr(),
			})
		}
		m.Generated, varDiags = parseVariables(content.Blocks.OfType("generated_quantity"), seen)
		allDiags = append(allDiags, varDiags...)

		models = append(models, m)
	}
	return models, allDiags
}

// parseVariables decodes parameter or generated_quantity blocks in order.
func parseVariables(blocks hcl.Blocks, seen map[string]bool) ([]Variable, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	vars := make([]Variable, 0, len(blocks))

	for _, block := range blocks {
		// The schema guarantees us one label.
		name := block.Labels[0]
		if seen[name] {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate variable definition",
				Detail:   fmt.Sprintf("A variable named '%s' has already been defined.", name),
				Subject:  &block.DefRange,
			})
			continue
		}
		seen[name] = true

		content, contentDiags := block.Body.Content(variableBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		v := Variable{Name: name}
		if attr, exists := content.Attributes["dims"]; exists {
			decodeDiags := gohcl.DecodeExpression(attr.Expr, nil, &v.Dims)
			diags = append(diags, decodeDiags...)
			if decodeDiags.HasErrors() {
				continue
			}
			if d, ok := negativeDim(v.Dims); ok {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid dimension",
					Detail:   fmt.Sprintf("Dimensions of '%s' must not be negative, got %d.", name, d),
					Subject:  attr.Expr.Range().Ptr(),
				})
				continue
			}
			if !withinMaxSize(v.Dims) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid dimension",
					Detail:   fmt.Sprintf("'%s' holds more than %d values.", name, MaxSize),
					Subject:  attr.Expr.Range().Ptr(),
				})
				continue
			}
		}
		vars = append(vars, v)
	}
	return vars, diags
}

func negativeDim(dims []int) (int, bool) {
	for _, d := range dims {
		if d < 0 {
			return d, true
		}
	}
	return 0, false
}

// withinMaxSize reports whether the product of non-negative dims stays at or
// below MaxSize.
func withinMaxSize(dims []int) bool {
	size := 1
	for _, d := range dims {
		if d == 0 {
			return true
		}
		if size > MaxSize/d {
			return false
		}
		size *= d
	}
	return true
}

func totalSize(vars []Variable) int64 {
	var total int64
	for _, v := range vars {
		total += int64(v.Size())
	}
	return total
}
