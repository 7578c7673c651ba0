package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fluxfield/engine"
	"github.com/lixenwraith/fluxfield/parameter"
)

// Preset is a named set of dimension values and locks an operator can apply
// to a running engine. Values write through SetDimensionValue (bypassing the
// smoother); locks pin their dimension until released
type Preset struct {
	Name   string             `yaml:"name"`
	Values map[string]float64 `yaml:"values,omitempty"`
	Locks  map[string]float64 `yaml:"locks,omitempty"`
}

// Validate rejects presets referencing unknown dimensions or carrying
// out-of-range values, so a bad file fails loudly at load time instead of
// silently reading as zero later
func (p *Preset) Validate() error {
	check := func(kind string, m map[string]float64) error {
		for name, v := range m {
			if parameter.DimIndex(name) < 0 {
				return fmt.Errorf("%s: unknown dimension %q", kind, name)
			}
			if v < 0 || v > 1 {
				return fmt.Errorf("%s: dimension %q value %v outside [0,1]", kind, name, v)
			}
		}
		return nil
	}
	if err := check("values", p.Values); err != nil {
		return err
	}
	return check("locks", p.Locks)
}

// Apply writes the preset into the engine
func (p *Preset) Apply(e *engine.Engine) {
	for name, v := range p.Values {
		e.SetDimensionValue(name, v)
	}
	for name, v := range p.Locks {
		e.LockDimension(name, v)
	}
}

// Release unlocks every dimension the preset locked
func (p *Preset) Release(e *engine.Engine) {
	for name := range p.Locks {
		e.UnlockDimension(name)
	}
}

// Load reads and validates a preset file
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates preset YAML
func Parse(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return &p, nil
}

// Save writes a preset file
func Save(path string, p *Preset) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}

// Capture snapshots the engine's current committed values into a preset,
// one entry per dimension
func Capture(name string, e *engine.Engine) *Preset {
	p := &Preset{
		Name:   name,
		Values: make(map[string]float64, parameter.DimCount),
	}
	for _, dim := range parameter.DimNames {
		p.Values[dim] = e.Get(dim)
	}
	return p
}
