// Package preset loads named ramp sessions from YAML files.
//
// A preset file looks like:
//
//	version: v1
//	ramps:
//	  - name: fade
//	    target: 255
//	    duration: 1500ms
//	    loop: forth-and-back
//	    easing: sinusoidal-inout
//	    grain: 1
//
// Durations are Go duration strings or bare numbers of milliseconds. Loop
// defaults to once-forward and easing to linear.
package preset

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/ramp/pkg/easing"
	"github.com/go-drift/ramp/pkg/errors"
	"github.com/go-drift/ramp/pkg/ramp"
)

// SchemaMajor is the preset file major version this package understands.
const SchemaMajor = "v1"

// File is a parsed preset file.
type File struct {
	Version string   `yaml:"version"`
	Ramps   []Preset `yaml:"ramps"`
}

// Preset describes one ramp session.
type Preset struct {
	Name     string        `yaml:"name"`
	Origin   *float64      `yaml:"origin,omitempty"`
	Target   float64       `yaml:"target"`
	Duration Duration      `yaml:"duration"`
	Loop     ramp.LoopMode `yaml:"loop"`
	Easing   string        `yaml:"easing,omitempty"`
	Grain    float64       `yaml:"grain,omitempty"`
}

// Duration is a time.Duration that decodes from "1.5s" style strings or
// from plain numbers of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	if ms, err := strconv.ParseFloat(value.Value, 64); err == nil {
		*d = Duration(time.Duration(ms * float64(time.Millisecond)))
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", value.Line, value.Value)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Load reads and parses the preset file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("preset.Load", errors.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a preset document. Unknown fields are errors.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, invalid("empty document")
		}
		return nil, invalid("%v", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the schema version and every preset.
func (f *File) Validate() error {
	if !semver.IsValid(f.Version) {
		return invalid("version %q is not a semantic version (want %s)", f.Version, SchemaMajor)
	}
	if major := semver.Major(f.Version); major != SchemaMajor {
		return invalid("unsupported version %s (want %s)", major, SchemaMajor)
	}
	if len(f.Ramps) == 0 {
		return invalid("no ramps defined")
	}
	seen := make(map[string]bool, len(f.Ramps))
	for i := range f.Ramps {
		p := &f.Ramps[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.Name] {
			return invalid("duplicate ramp name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Find returns the preset with the given name.
func (f *File) Find(name string) (*Preset, error) {
	for i := range f.Ramps {
		if f.Ramps[i].Name == name {
			return &f.Ramps[i], nil
		}
	}
	return nil, errors.New("preset.Find", errors.KindConfig, fmt.Errorf("%w: no ramp named %q", errors.ErrInvalidPreset, name))
}

// Names lists preset names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Ramps))
	for i, p := range f.Ramps {
		names[i] = p.Name
	}
	return names
}

// Validate checks a single preset.
func (p *Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("ramp name is empty")
	}
	if p.Duration < 0 {
		return invalid("ramp %q: negative duration %s", p.Name, time.Duration(p.Duration))
	}
	if !p.Loop.Valid() {
		return invalid("ramp %q: invalid loop mode", p.Name)
	}
	if p.Grain < 0 || math.IsNaN(p.Grain) || math.IsInf(p.Grain, 0) {
		return invalid("ramp %q: grain must be a finite non-negative number", p.Name)
	}
	if _, err := p.Curve(); err != nil {
		return invalid("ramp %q: %v", p.Name, err)
	}
	return nil
}

// Curve resolves the preset's easing name. An empty name means linear.
func (p *Preset) Curve() (easing.Curve, error) {
	if p.Easing == "" {
		return easing.Linear, nil
	}
	return easing.Lookup(p.Easing)
}

// Start applies grain and origin to r and starts the session.
func (p *Preset) Start(r *ramp.Ramp) error {
	curve, err := p.Curve()
	if err != nil {
		return err
	}
	if _, err := r.SetGrain(p.Grain); err != nil {
		return err
	}
	if p.Origin != nil {
		r.SetValue(*p.Origin)
	}
	_, err = r.Go(p.Target, time.Duration(p.Duration), p.Loop, curve)
	return err
}

func invalid(format string, args ...any) error {
	return errors.New("preset.Parse", errors.KindConfig,
		fmt.Errorf("%w: %s", errors.ErrInvalidPreset, fmt.Sprintf(format, args...)))
}
