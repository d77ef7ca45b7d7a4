// Package materials holds the fixed table of tube materials and their
// mechanical constants. The table is static configuration: filled at init,
// never mutated, so concurrent lookups need no locking.
package materials

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownMaterial is returned by Lookup for names outside the table.
// There is deliberately no default material: callers must reject the
// request instead of computing with substituted constants.
var ErrUnknownMaterial = errors.New("unknown material")

// Properties are rough typical values in MPa, good enough for the
// simplified stress estimate this service produces.
type Properties struct {
	ElasticModulusMPa float64 `json:"e_mpa"`
	YieldStrengthMPa  float64 `json:"yield_mpa"`
}

var table = map[string]Properties{
	"Copper":       {ElasticModulusMPa: 110_000.0, YieldStrengthMPa: 200.0},
	"Carbon Steel": {ElasticModulusMPa: 210_000.0, YieldStrengthMPa: 250.0},
	"Aluminium":    {ElasticModulusMPa: 70_000.0, YieldStrengthMPa: 120.0},
}

// Lookup resolves a material name to its constants.
func Lookup(name string) (Properties, error) {
	props, ok := table[name]
	if !ok {
		return Properties{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return props, nil
}

// Names returns the recognized material names in stable order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the whole table, keyed by name.
func All() map[string]Properties {
	out := make(map[string]Properties, len(table))
	for name, props := range table {
		out[name] = props
	}
	return out
}
