package main

import (
	"encoding/json"
	"os"

	"seehuhn.de/go/maskedit/scenarios"
)

type jsonFile struct {
	Scenarios []jsonScenario `json:"scenarios"`
}

type jsonScenario struct {
	Name         string     `json:"name"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Policy       string     `json:"policy"`
	Brush        float64    `json:"brush"`
	DisplayScale float64    `json:"display_scale,omitempty"`
	Steps        []jsonStep `json:"steps"`
	Expect       jsonExpect `json:"expect"`
	Mask         string     `json:"mask,omitempty"` // base64 PNG, absent if empty
}

type jsonStep struct {
	BrushWidth float64     `json:"brush_width,omitempty"`
	Clear      bool        `json:"clear,omitempty"`
	Gesture    [][]float64 `json:"gesture,omitempty"`
}

type jsonExpect struct {
	Empty      bool     `json:"empty,omitempty"`
	Painted    [][2]int `json:"painted,omitempty"`
	Background [][2]int `json:"background,omitempty"`
}

func toJSON(name string, s scenarios.Scenario, mask string) jsonScenario {
	js := jsonScenario{
		Name:         name,
		Width:        s.Width,
		Height:       s.Height,
		Policy:       s.Policy,
		Brush:        s.Brush,
		DisplayScale: s.DisplayScale,
		Mask:         mask,
	}
	for _, step := range s.Steps {
		jst := jsonStep{
			BrushWidth: step.BrushWidth,
			Clear:      step.Clear,
		}
		for _, p := range step.Gesture {
			jst.Gesture = append(jst.Gesture, []float64{p.X, p.Y})
		}
		js.Steps = append(js.Steps, jst)
	}
	js.Expect.Empty = s.Expect.Empty
	for _, p := range s.Expect.Painted {
		js.Expect.Painted = append(js.Expect.Painted, [2]int{p.X, p.Y})
	}
	for _, p := range s.Expect.Background {
		js.Expect.Background = append(js.Expect.Background, [2]int{p.X, p.Y})
	}
	return js
}

func writeJSON(fname string, data *jsonFile) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
