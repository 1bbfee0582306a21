package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/stangrid/internal/argtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		raw        string
		wantRadius float64
		wantPath   string
	}{
		{name: "default radius", raw: "2", wantRadius: 2},
		{name: "zero radius", raw: "0", wantRadius: 0},
		{name: "fractional radius", raw: "0.5", wantRadius: 0.5},
		{name: "exponent", raw: "1e-1", wantRadius: 0.1},
		{name: "file path", raw: "inits.json", wantRadius: DefaultInitRadius, wantPath: "inits.json"},
		{name: "numeric looking path", raw: "2.json", wantRadius: DefaultInitRadius, wantPath: "2.json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			radius, vc := ResolveInit(tc.raw)

			assert.Equal(t, tc.wantRadius, radius)
			assert.Equal(t, tc.wantPath, vc.Path)
			assert.Equal(t, tc.wantPath == "", vc.Empty())
		})
	}
}

func TestResolveSeed_Explicit(t *testing.T) {
	t.Parallel()
	seed := argtree.Uint("seed", "Random seed", 0, argtree.Unbounded[uint]())
	require.NoError(t, seed.Assign("4711"))

	got := ResolveSeed(seed, func() time.Time { t.Fatal("clock must not be read"); return time.Time{} })

	assert.Equal(t, uint32(4711), got)
}

func TestResolveSeed_FromClock(t *testing.T) {
	t.Parallel()
	seed := argtree.Uint("seed", "Random seed", 0, argtree.Unbounded[uint]())
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	got := ResolveSeed(seed, func() time.Time { return now })

	elapsed := uint64(now.UnixMilli() - seedEpoch.UnixMilli())
	assert.Equal(t, uint32(elapsed), got)
	assert.Equal(t, got, ResolveSeed(seed, func() time.Time { return now }), "same instant gives same seed")
	assert.NotEqual(t, got, ResolveSeed(seed, func() time.Time { return now.Add(time.Millisecond) }))
}

func TestStreamWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := NewStreamWriter(&buf, "# ")

	w.WriteLine("lp__,theta")
	w.Comment("method = sample (Default)")
	_, err := w.Write([]byte("raw\n"))

	require.NoError(t, err)
	assert.Equal(t, "lp__,theta\n# method = sample (Default)\nraw\n", buf.String())
	assert.Equal(t, "# ", w.Prefix())
}

func TestFields_FlattensEmbeddedInOrder(t *testing.T) {
	t.Parallel()
	p := NUTSWindowAdaptParams{
		NUTSParams: NUTSParams{
			SamplingParams: SamplingParams{NumWarmup: 10, NumSamples: 20, Thin: 1, Refresh: 5},
			StepSize:       1,
			MaxDepth:       10,
		},
		StepSizeAdaptation: StepSizeAdaptation{Delta: 0.8},
		WindowAdaptation:   WindowAdaptation{InitBuffer: 75, TermBuffer: 50, Window: 25},
	}

	names := FieldNames(p)

	want := []string{
		"num_warmup", "num_samples", "thin", "save_warmup", "refresh",
		"stepsize", "stepsize_jitter", "max_depth",
		"delta", "gamma", "kappa", "t0",
		"init_buffer", "term_buffer", "window",
	}
	assert.Empty(t, cmp.Diff(want, names))
	assert.Equal(t, FieldNames(p), FieldNames(&p), "pointer and value flatten the same")
}

func TestFields_Values(t *testing.T) {
	t.Parallel()

	fields := Fields(LBFGSParams{HistorySize: 5, BFGSParams: BFGSParams{InitAlpha: 0.001, Iter: 2000, SaveIterations: true}})

	require.NotEmpty(t, fields)
	assert.Equal(t, Field{Name: "history_size", Value: 5}, fields[0])
	assert.Equal(t, Field{Name: "init_alpha", Value: 0.001}, fields[1])
	assert.Equal(t, Field{Name: "save_iterations", Value: true}, fields[len(fields)-2])
}

func TestFields_NonStruct(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Fields(42))
	assert.Nil(t, Fields((*NewtonParams)(nil)))
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1", FormatValue(true))
	assert.Equal(t, "0", FormatValue(false))
	assert.Equal(t, "-3", FormatValue(-3))
	assert.Equal(t, "75", FormatValue(uint(75)))
	assert.Equal(t, "1e-12", FormatValue(1e-12))
	assert.Equal(t, "0.8", FormatValue(0.8))
	assert.Equal(t, "out.csv", FormatValue("out.csv"))
}
