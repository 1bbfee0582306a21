// Package argfile reads argument tokens from a YAML file.
//
// Keys are argument names in document order. Every entry becomes one token
// carrying the full dotted path of its key, so a key after a nested block is
// never read inside that block. A scalar value becomes path=value, an empty
// value or empty mapping is the bare path:
//
//	method: sample
//	sample:
//	  num_samples: 500
//	  adapt:
//	    engaged: 0
//	output:
//	  file: out.csv
//
// yields method=sample, sample.num_samples=500, sample.adapt.engaged=0,
// output.file=out.csv. Later command-line tokens are applied after these.
package argfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the file at path and returns its tokens.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open arguments file: %w", err)
	}
	defer f.Close()

	tokens, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("arguments file %s: %w", path, err)
	}
	return tokens, nil
}

// Decode reads one YAML document from r. An empty document has no tokens.
func Decode(r io.Reader) ([]string, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of argument names", root.Line)
	}
	return appendMapping(nil, "", root)
}

func appendMapping(tokens []string, prefix string, m *yaml.Node) ([]string, error) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: argument names must be plain strings", key.Line)
		}
		path := prefix + key.Value

		switch value.Kind {
		case yaml.ScalarNode:
			if value.Tag == "!!null" {
				tokens = append(tokens, path)
				continue
			}
			tokens = append(tokens, path+"="+value.Value)
		case yaml.MappingNode:
			if len(value.Content) == 0 {
				tokens = append(tokens, path)
				continue
			}
			var err error
			tokens, err = appendMapping(tokens, path+".", value)
			if err != nil {
				return nil, err
			}
		case yaml.AliasNode:
			return nil, fmt.Errorf("line %d: aliases are not supported", value.Line)
		default:
			return nil, fmt.Errorf("line %d: %s takes a single value, not a list", value.Line, key.Value)
		}
	}
	return tokens, nil
}
