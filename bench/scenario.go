// SPDX-License-Identifier: Unlicense OR MIT

package bench

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/math/f32"

	"gioui.org/fillrate/internal/gl"
)

// Flags select the commands a timer query brackets.
type Flags uint8

const (
	// Clear starts the query before the clear.
	Clear Flags = 1 << iota
	// Draw ends the query after the draw.
	Draw
)

func (f Flags) String() string {
	var s []string
	if f&Clear != 0 {
		s = append(s, "clear")
	}
	if f&Draw != 0 {
		s = append(s, "draw")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

// Scenario describes one pipeline state under test.
type Scenario struct {
	ID   string
	Name string
	// ClearMask is passed to glClear before every draw.
	ClearMask  gl.Enum
	ClearColor f32.Vec4
	// Draws is the instance count of the full-screen triangle per
	// sample.
	Draws int
	Flags Flags
	// NoDepth disables the depth test, which also stops depth writes.
	NoDepth bool
}

const (
	ScenarioColor  = "color"
	ScenarioReject = "reject"
	ScenarioClear  = "clear"
	// ScenarioColorOnly shades without any depth buffer traffic.
	ScenarioColorOnly = "coloronly"
)

var (
	gray    = f32.Vec4{0.3, 0.3, 0.3, 1.0}
	reddish = f32.Vec4{1.0, 0.3, 0.3, 1.0}
)

// DefaultScenarios returns the scenarios in the order they must run.
// The depth rejection scenario relies on the depth buffer left
// behind by the color scenario: it clears color only, so the
// triangle fails the GL_LESS test against its own earlier depth.
// The color-only scenario runs last; with the depth test off it
// leaves the depth buffer alone.
func DefaultScenarios(cfg Config) []Scenario {
	return []Scenario{
		{
			ID:         ScenarioColor,
			Name:       "color and depth",
			ClearMask:  gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT,
			ClearColor: gray,
			Draws:      1,
			Flags:      Draw,
		},
		{
			ID:         ScenarioReject,
			Name:       "depth rejected",
			ClearMask:  gl.COLOR_BUFFER_BIT,
			ClearColor: reddish,
			Draws:      cfg.Rejects,
			Flags:      Draw,
		},
		{
			ID:         ScenarioClear,
			Name:       "color clear",
			ClearMask:  gl.COLOR_BUFFER_BIT,
			ClearColor: reddish,
			Draws:      cfg.Rejects,
			Flags:      Clear,
		},
		{
			ID:         ScenarioColorOnly,
			Name:       "color only",
			ClearMask:  gl.COLOR_BUFFER_BIT,
			ClearColor: gray,
			Draws:      1,
			Flags:      Draw,
			NoDepth:    true,
		},
	}
}

// SelectScenarios filters scenarios by a comma separated list of IDs,
// keeping their original order. An empty list selects everything.
// Selecting the depth rejection scenario also selects the color
// scenario that primes the depth buffer.
func SelectScenarios(all []Scenario, ids string) ([]Scenario, error) {
	ids = strings.TrimSpace(ids)
	if ids == "" {
		return all, nil
	}
	want := make(map[string]bool)
	for _, id := range strings.Split(ids, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		found := false
		for _, s := range all {
			if s.ID == id {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown scenario %q", id)
		}
		want[id] = true
	}
	if want[ScenarioReject] {
		want[ScenarioColor] = true
	}
	var sel []Scenario
	for _, s := range all {
		if want[s.ID] {
			sel = append(sel, s)
		}
	}
	return sel, nil
}
