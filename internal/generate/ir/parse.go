package ir

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definitions is the YAML document listing the built-in datatypes.
type Definitions struct {
	Namespaces map[string]string `yaml:"namespaces"`
	Datatypes  []struct {
		Name    string `yaml:"name"`
		Numeric bool   `yaml:"numeric"`
	} `yaml:"datatypes"`
}

// Parse reads the datatype definitions. Identities are assigned in definition order.
func Parse(r io.Reader) ([]Datatype, error) {
	var defs Definitions
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}

	var (
		datatypes []Datatype
		seen      = map[string]bool{}
	)
	for i, d := range defs.Datatypes {
		prefix, local, ok := strings.Cut(d.Name, ":")
		if !ok || local == "" {
			return nil, fmt.Errorf("datatype %d: %q is not a prefixed name", i+1, d.Name)
		}
		ns, ok := defs.Namespaces[prefix]
		if !ok {
			return nil, fmt.Errorf("datatype %s: unknown prefix %q", d.Name, prefix)
		}
		dt := Datatype{
			Prefix:    prefix,
			LocalName: local,
			IRI:       ns + local,
			ID:        i + 1,
			Numeric:   d.Numeric,
		}
		if seen[dt.GoName()] {
			return nil, fmt.Errorf("datatype %s: defined twice", d.Name)
		}
		seen[dt.GoName()] = true
		datatypes = append(datatypes, dt)
	}
	if len(datatypes) == 0 {
		return nil, fmt.Errorf("no datatypes defined")
	}
	// fixed identities are stored as uint8
	if len(datatypes) > 255 {
		return nil, fmt.Errorf("%d datatypes exceed the fixed identity range", len(datatypes))
	}
	return datatypes, nil
}
