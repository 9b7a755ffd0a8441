// seehuhn.de/go/maskedit - an interactive region-mask editor
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command maskref replays the editing scenarios and writes reference
// files for them.
//
// For every scenario the command writes the exported mask and the final
// composite as PNG files. All scenarios, together with their base64
// masks, are written to scenarios.json. With -pdf, a vector rendering of
// each mask is written as a PDF file, for comparison with the rasterized
// masks.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"seehuhn.de/go/maskedit"
	"seehuhn.de/go/maskedit/scenarios"
)

func main() {
	out := flag.String("out", "testdata/reference", "output directory")
	only := flag.String("scenario", "", "process only the named scenario")
	withPDF := flag.Bool("pdf", false, "also write vector PDF renderings")
	verbose := flag.Bool("v", false, "log editor events")
	flag.Parse()

	if *verbose {
		maskedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*out, *only, *withPDF); err != nil {
		fmt.Fprintln(os.Stderr, "maskref:", err)
		os.Exit(1)
	}
}

func run(outDir, only string, withPDF bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	var dump jsonFile
	found := false
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, s := range scenarios.All[category] {
			name := category + "_" + s.Name
			if only != "" && only != name {
				continue
			}
			found = true

			mask, err := process(outDir, name, s)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			dump.Scenarios = append(dump.Scenarios, toJSON(name, s, mask))

			if withPDF {
				pdfPath := filepath.Join(outDir, name+".pdf")
				if err := writePDF(s, pdfPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
	}
	if only != "" && !found {
		return fmt.Errorf("unknown scenario %q", only)
	}
	return writeJSON(filepath.Join(outDir, "scenarios.json"), &dump)
}

// process replays s and writes the mask and composite PNG files.
// The return value is the base64 mask, or the empty string if no mask
// was exported.
func process(outDir, name string, s scenarios.Scenario) (string, error) {
	e, err := replay(s)
	if err != nil {
		return "", err
	}

	if err := writePNG(filepath.Join(outDir, name+"_composite.png"), e.Composite()); err != nil {
		return "", err
	}

	data, ok := e.ExportMaskPNG()
	if !ok {
		return "", nil
	}
	if err := os.WriteFile(filepath.Join(outDir, name+"_mask.png"), data, 0644); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// replay runs the steps of s on a new editor.
func replay(s scenarios.Scenario) (*maskedit.Editor, error) {
	policy, err := maskedit.ParsePolicy(s.Policy)
	if err != nil {
		return nil, err
	}
	base, err := baseImage(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	e, err := maskedit.New(maskedit.Config{
		BaseImage:       base,
		BrushWidthPx:    s.Brush,
		ImageDimensions: maskedit.Dimensions{Width: s.Width, Height: s.Height},
		Policy:          policy,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	select {
	case err := <-e.Loaded():
		if err != nil {
			return nil, err
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	scale := s.Scale()
	dw, dh := float64(s.Width)*scale, float64(s.Height)*scale
	for _, step := range s.Steps {
		if step.BrushWidth > 0 {
			if err := e.SetBrushWidth(step.BrushWidth); err != nil {
				return nil, err
			}
		}
		if step.Clear {
			e.Clear()
		}
		if len(step.Gesture) == 0 {
			continue
		}
		for i, p := range step.Gesture {
			ev := maskedit.PointerEvent{
				X:             p.X * scale,
				Y:             p.Y * scale,
				DisplayWidth:  dw,
				DisplayHeight: dh,
			}
			if i == 0 {
				if err := e.OnPress(ev); err != nil {
					return nil, err
				}
			} else {
				e.OnMove(ev)
			}
		}
		err := e.OnRelease()
		if err != nil && !errors.Is(err, maskedit.ErrInvalidGesture) {
			return nil, err
		}
	}
	return e, nil
}

// baseImage returns a PNG-encoded grey gradient of the given size.
func baseImage(width, height int) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			v := 0x40 + 0x80*(x+y)/(width+height)
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
