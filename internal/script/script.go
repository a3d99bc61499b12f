package script

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Script is a scripted interaction timeline: a list of timed gesture
// and parameter events replayed against a running session. Scripts make
// hand-input demos reproducible without a tracker attached.
type Script struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Events      []Event `yaml:"events"`
}

// Event is a single timed action.
//
// Actions and the fields they use:
//
//	pinch   hand, pos   a hand pinches, towing its corner toward pos
//	unpinch hand        the hand lets go
//	grab    pos         the pointer picks the particle nearest pos
//	drag    pos, over   the pointer tows the grabbed particle
//	ungrab              the pointer lets go
//	set     set         live parameter edits, applied before the tick
//	reset               drop the sheet back to its spawn layout
//
// A drag with over set glides the tow target to pos over that many
// seconds instead of jumping there.
type Event struct {
	At     float64            `yaml:"at"`
	Action string             `yaml:"action"`
	Hand   string             `yaml:"hand,omitempty"`
	Pos    [3]float64         `yaml:"pos,flow,omitempty"`
	Over   float64            `yaml:"over,omitempty"`
	Set    map[string]float64 `yaml:"set,omitempty"`
}

// Parameter names accepted by set events.
var setKeys = map[string]bool{
	"stiffness":       true,
	"gsm":             true,
	"cloth_friction":  true,
	"sphere_friction": true,
	"sphere_radius":   true,
	"resolution":      true,
	"size":            true,
}

// Load reads a script from a YAML file and orders its events by time.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}

	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].At < s.Events[j].At
	})
	return &s, nil
}

func (s *Script) Validate() error {
	for i, ev := range s.Events {
		if ev.At < 0 {
			return fmt.Errorf("event %d: negative time %v", i, ev.At)
		}
		if ev.Over < 0 {
			return fmt.Errorf("event %d: negative over %v", i, ev.Over)
		}
		if ev.Over > 0 && ev.Action != "drag" {
			return fmt.Errorf("event %d: over only applies to drag", i)
		}
		switch ev.Action {
		case "pinch", "unpinch":
			if ev.Hand != "left" && ev.Hand != "right" {
				return fmt.Errorf("event %d: %s needs hand left or right, got %q", i, ev.Action, ev.Hand)
			}
		case "grab", "drag", "ungrab", "reset":
		case "set":
			if len(ev.Set) == 0 {
				return fmt.Errorf("event %d: set with no parameters", i)
			}
			for k := range ev.Set {
				if !setKeys[k] {
					return fmt.Errorf("event %d: unknown parameter %q", i, k)
				}
			}
		default:
			return fmt.Errorf("event %d: unknown action %q", i, ev.Action)
		}
	}
	return nil
}
