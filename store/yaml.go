package store

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/grovetools/tzclock/errors"
	"gopkg.in/yaml.v3"
)

// YAMLBackend stores the table as a YAML mapping. Key order is kept by
// walking the node tree instead of decoding into a Go map.
type YAMLBackend struct {
	path string
}

// NewYAMLBackend returns a backend for the YAML file at path.
func NewYAMLBackend(path string) *YAMLBackend {
	return &YAMLBackend{path: path}
}

func (b *YAMLBackend) Read(ctx context.Context) (*Table, bool, error) {
	data, exists, err := readFile(b.path)
	if err != nil || !exists {
		return NewTable(), false, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, true, errors.StoreCorrupt(b.path, err)
	}

	entries := NewTable()
	// An empty document is an empty table.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return entries, true, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return entries, true, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, true, errors.StoreCorrupt(b.path, fmt.Errorf("line %d: expected a mapping", root.Line))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		var offset int64
		if err := value.Decode(&offset); err != nil {
			return nil, true, errors.StoreCorrupt(b.path, fmt.Errorf("line %d: offset for %q: %w", value.Line, key.Value, err))
		}
		entries.Set(key.Value, offset)
	}
	return entries, true, nil
}

func (b *YAMLBackend) Write(ctx context.Context, entries *Table) error {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(pair.Value, 10)},
		)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return errors.StoreWrite(b.path, err)
	}
	if err := enc.Close(); err != nil {
		return errors.StoreWrite(b.path, err)
	}

	if err := writeFileAtomic(b.path, buf.Bytes()); err != nil {
		return errors.StoreWrite(b.path, err)
	}
	return nil
}

func (b *YAMLBackend) Path() string { return b.path }

func (b *YAMLBackend) Close() error { return nil }
