package maskedit_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"seehuhn.de/go/maskedit"
	"seehuhn.de/go/maskedit/scenarios"
)

func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, s := range scenarios.All[category] {
			name := category + "_" + s.Name
			t.Run(name, func(t *testing.T) {
				e := replay(t, s)

				b64, ok := e.ExportMask()
				if s.Expect.Empty {
					if ok {
						t.Errorf("mask exported, expected none")
					}
					return
				}
				if !ok {
					t.Fatal("no mask exported")
				}
				mask, err := maskedit.DecodeMask(b64)
				if err != nil {
					t.Fatal(err)
				}
				if got := mask.Bounds().Size(); got != image.Pt(s.Width, s.Height) {
					t.Fatalf("mask size %v, expected %dx%d", got, s.Width, s.Height)
				}
				checkSamples(t, name, mask, s.Expect)
			})
		}
	}
}

// TestScenariosComposite checks that the final composite of every
// scenario is at native resolution.
func TestScenariosComposite(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, s := range scenarios.All[category] {
			t.Run(category+"_"+s.Name, func(t *testing.T) {
				e := replay(t, s)
				img := e.Composite()
				if got := img.Bounds(); got != image.Rect(0, 0, s.Width, s.Height) {
					t.Errorf("composite bounds %v", got)
				}
			})
		}
	}
}

func replay(t *testing.T, s scenarios.Scenario) *maskedit.Editor {
	t.Helper()

	policy, err := maskedit.ParsePolicy(s.Policy)
	if err != nil {
		t.Fatal(err)
	}
	e, err := maskedit.New(maskedit.Config{
		BaseImage:       grayPNG(t, s.Width, s.Height),
		BrushWidthPx:    s.Brush,
		ImageDimensions: maskedit.Dimensions{Width: s.Width, Height: s.Height},
		Policy:          policy,
	})
	if err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-e.Loaded():
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timeout while decoding the base image")
	}

	scale := s.Scale()
	dw, dh := float64(s.Width)*scale, float64(s.Height)*scale
	for _, step := range s.Steps {
		if step.BrushWidth > 0 {
			if err := e.SetBrushWidth(step.BrushWidth); err != nil {
				t.Fatal(err)
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
					t.Fatal(err)
				}
			} else {
				e.OnMove(ev)
			}
		}
		err := e.OnRelease()
		if err != nil && !errors.Is(err, maskedit.ErrInvalidGesture) {
			t.Fatal(err)
		}
	}
	return e
}

func grayPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func checkSamples(t *testing.T, name string, mask *image.Alpha, expect scenarios.Expect) {
	t.Helper()
	failed := false
	for _, p := range expect.Painted {
		if mask.AlphaAt(p.X, p.Y).A != 0xFF {
			t.Errorf("sample %v is not painted", p)
			failed = true
		}
	}
	for _, p := range expect.Background {
		if mask.AlphaAt(p.X, p.Y).A != 0 {
			t.Errorf("sample %v is painted", p)
			failed = true
		}
	}
	if failed {
		writeDebugImage(name, mask, expect)
	}
}

// writeDebugImage shows the mask in grey, with missing samples marked in
// red and unexpected samples in green.
func writeDebugImage(name string, mask *image.Alpha, expect scenarios.Expect) {
	os.MkdirAll("debug", 0755)

	b := mask.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := mask.AlphaAt(x, y).A / 2
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	for _, p := range expect.Painted {
		if mask.AlphaAt(p.X, p.Y).A != 0xFF {
			img.Set(p.X, p.Y, color.RGBA{R: 255, A: 255})
		}
	}
	for _, p := range expect.Background {
		if mask.AlphaAt(p.X, p.Y).A != 0 {
			img.Set(p.X, p.Y, color.RGBA{G: 255, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
