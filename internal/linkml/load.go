// SPDX-License-Identifier: AGPL-3.0-or-later
package linkml

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/vocabrecon/internal/domain"
)

// MixsRequiredKeys are the top-level keys a full MIxS schema carries.
var MixsRequiredKeys = []string{"slots", "classes", "subsets", "name", "description", "comments", "id", "version"}

type loadOptions struct {
	required []string
}

// Option configures Load and Parse.
type Option func(*loadOptions)

// WithRequiredKeys adds top-level keys that must be present.
func WithRequiredKeys(keys ...string) Option {
	return func(o *loadOptions) { o.required = append(o.required, keys...) }
}

// Load reads and parses the schema file at path.
func Load(path string, opts ...Option) (*Schema, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user supplied schema path
	if err != nil {
		return nil, malformed(path, err)
	}
	s, err := Parse(data, opts...)
	if err != nil {
		var op *domain.OpError
		if errors.As(err, &op) {
			op.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Parse decodes schema YAML. The document must be a mapping with a
// slots key, plus any keys required by opts.
func Parse(data []byte, opts ...Option) (*Schema, error) {
	o := loadOptions{required: []string{"slots"}}
	for _, opt := range opts {
		opt(&o)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, malformed("", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, malformed("", errors.New("top level is not a mapping"))
	}
	root := doc.Content[0]

	top := map[string]*yaml.Node{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		top[root.Content[i].Value] = root.Content[i+1]
	}
	for _, key := range o.required {
		if _, ok := top[key]; !ok {
			return nil, malformed("", fmt.Errorf("missing top-level key %q", key))
		}
	}

	s := &Schema{
		ID:          scalar(top["id"]),
		Name:        scalar(top["name"]),
		Description: scalar(top["description"]),
		Version:     scalar(top["version"]),
		Comments:    scalars(top["comments"]),
	}

	err := eachEntry(top["slots"], func(name string, v *yaml.Node) error {
		var dto struct {
			Title       string `yaml:"title"`
			Description string `yaml:"description"`
			SlotURI     string `yaml:"slot_uri"`
			MixsID      string `yaml:"mixs_id"`
		}
		if err := v.Decode(&dto); err != nil {
			return fmt.Errorf("slot %s: %w", name, err)
		}
		s.Slots = append(s.Slots, Slot{
			Name:        name,
			Title:       dto.Title,
			Description: dto.Description,
			SlotURI:     dto.SlotURI,
			MixsID:      dto.MixsID,
		})
		return nil
	})
	if err != nil {
		return nil, malformed("", err)
	}

	err = eachEntry(top["classes"], func(name string, v *yaml.Node) error {
		var dto struct {
			Description string   `yaml:"description"`
			IsA         string   `yaml:"is_a"`
			Slots       []string `yaml:"slots"`
		}
		if err := v.Decode(&dto); err != nil {
			return fmt.Errorf("class %s: %w", name, err)
		}
		s.Classes = append(s.Classes, Class{Name: name, Description: dto.Description, IsA: dto.IsA, Slots: dto.Slots})
		return nil
	})
	if err != nil {
		return nil, malformed("", err)
	}

	err = eachEntry(top["subsets"], func(name string, _ *yaml.Node) error {
		s.Subsets = append(s.Subsets, name)
		return nil
	})
	if err != nil {
		return nil, malformed("", err)
	}

	s.index()
	return s, nil
}

// eachEntry walks a mapping node in document order. A missing or null
// node has no entries.
func eachEntry(n *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func scalar(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

// scalars accepts a single scalar or a sequence of scalars.
func scalars(n *yaml.Node) []string {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.SequenceNode {
		out := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			if v := scalar(c); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	if v := scalar(n); v != "" {
		return []string{v}
	}
	return nil
}

func malformed(path string, cause error) error {
	return &domain.OpError{Op: "linkml.load", Kind: domain.KindMalformedSchemaFile, Path: path, Cause: cause}
}
