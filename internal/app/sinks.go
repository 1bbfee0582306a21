package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/stangrid/internal/ctxlog"
	"github.com/specialistvlad/stangrid/internal/services"
)

// commentPrefix marks header lines in CSV output.
const commentPrefix = "# "

// sinks are the output files of one run.
type sinks struct {
	files      []*os.File
	sample     *services.StreamWriter
	diagnostic *services.StreamWriter
}

// openSinks creates the sample file and, when a name is given, the
// diagnostic file. On failure nothing is left open.
func openSinks(ctx context.Context, outputPath, diagnosticPath string) (*sinks, error) {
	s := &sinks{}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	s.files = append(s.files, f)
	s.sample = services.NewStreamWriter(f, commentPrefix)

	if diagnosticPath != "" {
		f, err := os.Create(diagnosticPath)
		if err != nil {
			s.Close(ctx)
			return nil, fmt.Errorf("failed to create diagnostic file: %w", err)
		}
		s.files = append(s.files, f)
		s.diagnostic = services.NewStreamWriter(f, commentPrefix)
	}

	ctxlog.FromContext(ctx).Debug("Output files opened.", "output", outputPath, "diagnostic", diagnosticPath)
	return s, nil
}

func (s *sinks) headers() []*services.StreamWriter {
	if s.diagnostic == nil {
		return []*services.StreamWriter{s.sample}
	}
	return []*services.StreamWriter{s.sample, s.diagnostic}
}

func (s *sinks) diagnosticWriter() services.Writer {
	if s.diagnostic == nil {
		return services.NoopWriter{}
	}
	return s.diagnostic
}

// Close closes every file. Failures are logged; the exit code is already
// decided by then.
func (s *sinks) Close(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	for _, f := range s.files {
		if err := f.Close(); err != nil {
			logger.Error("Failed to close output file", "file", f.Name(), "error", err)
		}
	}
	s.files = nil
}
