package easing

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-drift/ramp/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Curve{
		"linear": Linear,

		"quadratic-in":    QuadraticIn,
		"quadratic-out":   QuadraticOut,
		"quadratic-inout": QuadraticInOut,
		"cubic-in":        CubicIn,
		"cubic-out":       CubicOut,
		"cubic-inout":     CubicInOut,
		"quartic-in":      QuarticIn,
		"quartic-out":     QuarticOut,
		"quartic-inout":   QuarticInOut,
		"quintic-in":      QuinticIn,
		"quintic-out":     QuinticOut,
		"quintic-inout":   QuinticInOut,

		"sinusoidal-in":     SinusoidalIn,
		"sinusoidal-out":    SinusoidalOut,
		"sinusoidal-inout":  SinusoidalInOut,
		"exponential-in":    ExponentialIn,
		"exponential-out":   ExponentialOut,
		"exponential-inout": ExponentialInOut,
		"circular-in":       CircularIn,
		"circular-out":      CircularOut,
		"circular-inout":    CircularInOut,

		"elastic-in":    ElasticIn,
		"elastic-out":   ElasticOut,
		"elastic-inout": ElasticInOut,
		"back-in":       BackIn,
		"back-out":      BackOut,
		"back-inout":    BackInOut,
		"bounce-in":     BounceIn,
		"bounce-out":    BounceOut,
		"bounce-inout":  BounceInOut,

		"ease":        Ease,
		"ease-in":     EaseIn,
		"ease-out":    EaseOut,
		"ease-in-out": EaseInOut,
	}
)

// Lookup returns the curve registered under name. Names are matched case
// insensitively, and underscores are accepted in place of hyphens.
func Lookup(name string) (Curve, error) {
	key := normalize(name)
	registryMu.RLock()
	c, ok := registry[key]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Invalid("easing.Lookup", fmt.Errorf("%w %q", errors.ErrUnknownCurve, name))
	}
	return c, nil
}

// MustLookup is like Lookup but panics on unknown names. Use it for names
// fixed at compile time.
func MustLookup(name string) Curve {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Register adds or replaces a named curve.
func Register(name string, c Curve) error {
	key := normalize(name)
	if key == "" {
		return errors.Invalid("easing.Register", fmt.Errorf("curve name is empty"))
	}
	if c == nil {
		return errors.Invalid("easing.Register", errors.ErrNilCurve)
	}
	registryMu.Lock()
	registry[key] = c
	registryMu.Unlock()
	return nil
}

// Names returns every registered curve name in sorted order.
func Names() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
