package shader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyName     = errors.New("program name is empty")
	ErrDuplicateName = errors.New("duplicated program name")
	ErrEmptySource   = errors.New("shader source is empty")
)

// ProgramSource is a named pair of vertex and fragment shader sources.
type ProgramSource struct {
	Name     string `yaml:"name"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Manifest lists the programs an application builds at setup.
type Manifest struct {
	Programs []ProgramSource `yaml:"programs"`
}

// LoadManifest decodes and validates a YAML manifest.
func LoadManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.NewDecoder(r).Decode(m); err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(m.Programs))
	for i, p := range m.Programs {
		if p.Name == "" {
			return nil, fmt.Errorf("programs[%d]: %w", i, ErrEmptyName)
		}
		if _, ok := names[p.Name]; ok {
			return nil, fmt.Errorf("%s: %w", p.Name, ErrDuplicateName)
		}
		names[p.Name] = struct{}{}
		if p.Vertex == "" || p.Fragment == "" {
			return nil, fmt.Errorf("%s: %w", p.Name, ErrEmptySource)
		}
	}
	return m, nil
}

// BuildManifest builds every program in m, in order.
// It stops at the first failure; programs built before it are still returned.
func BuildManifest[S, P any](gl Context[S, P], m *Manifest) (map[string]P, error) {
	programs := make(map[string]P, len(m.Programs))
	for _, src := range m.Programs {
		p, err := NewProgram(gl, src.Vertex, src.Fragment)
		if err != nil {
			return programs, fmt.Errorf("%s: %w", src.Name, err)
		}
		programs[src.Name] = p
	}
	return programs, nil
}
