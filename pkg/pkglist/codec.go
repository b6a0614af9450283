// pkg/pkglist/codec.go
package pkglist

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape. Unrecognized top-level keys are
// ignored on read and never emitted on write.
type document struct {
	Packages []Package `yaml:"packages"`
}

// entry is the mapping form of a package in the list file.
type entry struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

// UnmarshalYAML accepts either a bare name scalar or a mapping with
// name and optional version.
func (p *Package) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if name == "" {
			return fmt.Errorf("%w: empty package name at line %d", ErrMalformedEntry, node.Line)
		}
		*p = Package{Name: name}
		return nil
	case yaml.MappingNode:
		var e entry
		if err := node.Decode(&e); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if e.Name == "" {
			return fmt.Errorf("%w: entry at line %d is missing a name", ErrMalformedEntry, node.Line)
		}
		*p = Package{Name: e.Name, Version: e.Version}
		return nil
	default:
		return fmt.Errorf("%w: package entry at line %d must be a string or a mapping", ErrInvalidFormat, node.Line)
	}
}

// MarshalYAML emits the scalar form when no version is recorded.
func (p Package) MarshalYAML() (interface{}, error) {
	if p.Version == "" {
		return p.Name, nil
	}
	return entry{Name: p.Name, Version: p.Version}, nil
}

// Unmarshal parses the on-disk list format. Duplicate names collapse
// last-write-wins.
func Unmarshal(data []byte) (List, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, ErrMalformedEntry) || errors.Is(err, ErrInvalidFormat) {
			return List{}, err
		}
		return List{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return List{Packages: Dedupe(doc.Packages)}, nil
}

// Marshal serializes the list preserving its order.
func Marshal(list List) ([]byte, error) {
	return yaml.Marshal(document{Packages: list.Packages})
}
