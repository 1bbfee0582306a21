package argfile

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/stangrid/internal/arguments"
	"github.com/specialistvlad/stangrid/internal/parser"
	"github.com/specialistvlad/stangrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		yaml string
		want []string
	}{
		{
			name: "nested in document order",
			yaml: `
				method: sample
				sample:
				  num_samples: 500
				  adapt:
				    engaged: 0
				  thin: 2
				output:
				  file: out.csv
			`,
			want: []string{"method=sample", "sample.num_samples=500", "sample.adapt.engaged=0", "sample.thin=2", "output.file=out.csv"},
		},
		{
			name: "empty values are bare names",
			yaml: `
				sample:
				  save_warmup:
				  adapt: {}
			`,
			want: []string{"sample.save_warmup", "sample.adapt"},
		},
		{
			name: "scalars keep their source text",
			yaml: `
				init: 0.5
				random:
				  seed: 0012
			`,
			want: []string{"init=0.5", "random.seed=0012"},
		},
		{
			name: "sibling after a nested block",
			yaml: `
				variational:
				  adapt:
				    iter: 5
				  iter: 100
			`,
			want: []string{"variational.adapt.iter=5", "variational.iter=100"},
		},
		{
			name: "empty document",
			yaml: "",
			want: nil,
		},
		{
			name: "comments only",
			yaml: "# nothing yet\n",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(strings.NewReader(testutil.Unindent(tc.yaml)))

			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tc.want, got))
		})
	}
}

func TestDecode_TokensParseToTheirOwnLeaves(t *testing.T) {
	t.Parallel()
	tokens, err := Decode(strings.NewReader(testutil.Unindent(`
		variational:
		  adapt:
		    iter: 5
		  iter: 100
		sample:
		  hmc:
		    engine: static
		    static:
		      int_time: 3
		  num_samples: 20
		output:
		  file: out.csv
		random:
		  seed: 7
	`)))
	require.NoError(t, err)

	args := arguments.New()
	var help bytes.Buffer
	_, err = parser.New(args.Root, &help).Parse(context.Background(), tokens)

	require.NoError(t, err)
	assert.Equal(t, 100, args.Variational.Iter.Value())
	assert.Equal(t, 5, args.Variational.AdaptIter.Value())
	assert.Equal(t, arguments.EngineStatic, args.Sample.HMC.SelectedEngine())
	assert.Equal(t, 3.0, args.Sample.HMC.IntTime.Value())
	assert.Equal(t, 20, args.Sample.NumSamples.Value())
	assert.Equal(t, "out.csv", args.OutputFile.Value())
	assert.Equal(t, uint(7), args.Seed.Value())
	assert.Equal(t, arguments.MethodSample, args.SelectedMethod())
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{name: "top level list", yaml: "- sample\n", errContains: "expected a mapping"},
		{name: "list value", yaml: "sample:\n  num_samples: [1, 2]\n", errContains: "num_samples takes a single value"},
		{name: "alias", yaml: "a: &x 1\nb: *x\n", errContains: "aliases are not supported"},
		{name: "bad syntax", yaml: "sample: [\n", errContains: "yaml"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(tc.yaml))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteFiles(t, map[string]string{"args.yaml": "method: optimize\n"})

	got, err := Load(filepath.Join(dir, "args.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"method=optimize"}, got)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open arguments file")
}
