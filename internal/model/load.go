// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file finds manifest files on disk and assembles the single Model they
// describe.
package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/stangrid/internal/ctxlog"
	"github.com/specialistvlad/stangrid/internal/fsutil"
)

// ErrNoModel is returned when the manifest files contain no model block.
var ErrNoModel = errors.New("no model block found")

// Manifest file extensions. The JSON form uses the HCL JSON syntax.
const (
	ExtHCL  = ".hcl"
	ExtJSON = ".hcl.json"
)

// Load reads the manifest at path, which is either one manifest file or a
// directory searched recursively for them. Exactly one model block must be
// defined across all files.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading model manifest...", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model manifest: %w", err)
	}

	filePaths := []string{path}
	if info.IsDir() {
		filePaths, err = fsutil.FindFilesByExtension(path, ExtHCL, ExtJSON)
		if err != nil {
			logger.Error("Failed to walk model directory", "path", path, "error", err)
			return nil, err
		}
	}
	logger.Debug("Found HCL files to load", "files", filePaths)

	parser := hclparse.NewParser()
	var models []*Model
	for _, filePath := range filePaths {
		parse := parser.ParseHCLFile
		if fsutil.HasExtension(filePath, ExtJSON) {
			parse = parser.ParseJSONFile
		}
		hclFile, diags := parse(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		found, diags := ParseModelFile(ctx, hclFile, filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to process model definition in %s: %w", filePath, diags)
		}
		models = append(models, found...)
	}

	switch len(models) {
	case 0:
		return nil, fmt.Errorf("%w in %s", ErrNoModel, path)
	case 1:
		m := models[0]
		logger.Info("Model loaded.", "model", m.Name(), "num_params_r", m.NumParamsR(), "file", m.Source)
		return m, nil
	default:
		sources := make([]string, len(models))
		for i, m := range models {
			sources[i] = fmt.Sprintf("%q (%s)", m.Name(), m.Source)
		}
		return nil, fmt.Errorf("expected exactly one model block, found %d: %s", len(models), strings.Join(sources, ", "))
	}
}
