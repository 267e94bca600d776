package coxeter

import (
	"fmt"
	"sort"
)

// PresetInfo describes a registered spherical diagram.
type PresetInfo struct {
	Name   string
	Matrix Matrix
	Order  int // order of the reflection group, i.e. the expected flag count
}

// presets holds the irreducible and reducible spherical diagrams shipped by
// default. Linear diagrams are listed end to end so that ringing node 0
// selects the regular polytope {p, q, ...}.
var presets = map[string]PresetInfo{
	"A1": {Order: 2, Matrix: MustNew([][]int{{1}})},
	"A1xA1": {Order: 4, Matrix: MustNew([][]int{
		{1, 2},
		{2, 1},
	})},
	"I2(5)": {Order: 10, Matrix: MustNew([][]int{
		{1, 5},
		{5, 1},
	})},
	"A2": {Order: 6, Matrix: MustNew([][]int{
		{1, 3},
		{3, 1},
	})},
	"A1xA1xA1": {Order: 8, Matrix: MustNew([][]int{
		{1, 2, 2},
		{2, 1, 2},
		{2, 2, 1},
	})},
	"A3": {Order: 24, Matrix: MustNew([][]int{
		{1, 3, 2},
		{3, 1, 3},
		{2, 3, 1},
	})},
	"B3": {Order: 48, Matrix: MustNew([][]int{
		{1, 4, 2},
		{4, 1, 3},
		{2, 3, 1},
	})},
	"H3": {Order: 120, Matrix: MustNew([][]int{
		{1, 5, 2},
		{5, 1, 3},
		{2, 3, 1},
	})},
	"A4": {Order: 120, Matrix: MustNew([][]int{
		{1, 3, 2, 2},
		{3, 1, 3, 2},
		{2, 3, 1, 3},
		{2, 2, 3, 1},
	})},
	"B4": {Order: 384, Matrix: MustNew([][]int{
		{1, 4, 2, 2},
		{4, 1, 3, 2},
		{2, 3, 1, 3},
		{2, 2, 3, 1},
	})},
	"D4": {Order: 192, Matrix: MustNew([][]int{
		{1, 3, 2, 2},
		{3, 1, 3, 3},
		{2, 3, 1, 2},
		{2, 3, 2, 1},
	})},
	"F4": {Order: 1152, Matrix: MustNew([][]int{
		{1, 3, 2, 2},
		{3, 1, 4, 2},
		{2, 4, 1, 3},
		{2, 2, 3, 1},
	})},
	"H4": {Order: 14400, Matrix: MustNew([][]int{
		{1, 5, 2, 2},
		{5, 1, 3, 2},
		{2, 3, 1, 3},
		{2, 2, 3, 1},
	})},
}

func init() {
	for name, p := range presets {
		p.Name = name
		presets[name] = p
	}
}

// Preset returns the registered diagram called name (case-sensitive).
func Preset(name string) (PresetInfo, error) {
	p, ok := presets[name]
	if !ok {
		return PresetInfo{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return p, nil
}

// Presets returns every registered diagram sorted by dimension, then name.
func Presets() []PresetInfo {
	out := make([]PresetInfo, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Matrix.Dim() != out[j].Matrix.Dim() {
			return out[i].Matrix.Dim() < out[j].Matrix.Dim()
		}
		return out[i].Name < out[j].Name
	})

	return out
}
