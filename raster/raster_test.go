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

package raster

import (
	"image"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Every test runs with both accumulation strategies:
// dense 2-D buffers and the active edge list.
var approaches = []struct {
	name      string
	threshold int
}{
	{"dense", 1 << 30},
	{"active", 0},
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

// renderBinary rasterises into a fresh w×h mask using the given strategy.
func renderBinary(w, h, threshold int, draw func(r *Rasterizer, emit EmitFunc)) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r := NewRasterizer(ClipFor(dst))
	r.smallPathThreshold = threshold
	draw(r, Binary(dst))
	return dst
}

// TestTriangleCoverage checks exact coverage values for the triangle
// (0,0)→(10,0)→(10,1). Its diagonal is y = x/10, so sample x has
// coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	tri := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
			r.smallPathThreshold = a.threshold

			got := make([]float32, 10)
			r.FillNonZero(tri, func(y, xMin int, coverage []float32) {
				if y == 0 {
					copy(got[xMin:], coverage)
				}
			})

			for x := range 10 {
				want := float32(2*x+1) / 20
				if math.Abs(float64(got[x]-want)) > 1e-6 {
					t.Errorf("sample %d: coverage %.4f, want %.4f", x, got[x], want)
				}
			}
		})
	}
}

func TestFillRectangle(t *testing.T) {
	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			mask := renderBinary(64, 64, a.threshold, func(r *Rasterizer, emit EmitFunc) {
				r.FillNonZero(square(10, 10, 50, 50), emit)
			})
			for y := range 64 {
				for x := range 64 {
					inside := x >= 10 && x < 50 && y >= 10 && y < 50
					got := mask.AlphaAt(x, y).A
					if inside && got != 0xFF || !inside && got != 0 {
						t.Fatalf("sample (%d,%d) = %d, inside=%t", x, y, got, inside)
					}
				}
			}
		})
	}
}

// TestFillRules uses two nested squares with the same orientation: the
// inner one is a hole under even-odd and filled under nonzero.
func TestFillRules(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(40, 0)).
		LineTo(pt(40, 40)).
		LineTo(pt(0, 40)).
		Close().
		MoveTo(pt(10, 10)).
		LineTo(pt(30, 10)).
		LineTo(pt(30, 30)).
		LineTo(pt(10, 30)).
		Close()

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			nz := renderBinary(40, 40, a.threshold, func(r *Rasterizer, emit EmitFunc) {
				r.FillNonZero(p, emit)
			})
			eo := renderBinary(40, 40, a.threshold, func(r *Rasterizer, emit EmitFunc) {
				r.FillEvenOdd(p, emit)
			})

			if nz.AlphaAt(20, 20).A != 0xFF {
				t.Error("nonzero: centre of nested squares not filled")
			}
			if eo.AlphaAt(20, 20).A != 0 {
				t.Error("even-odd: centre of nested squares filled")
			}
			for _, m := range []*image.Alpha{nz, eo} {
				if m.AlphaAt(5, 5).A != 0xFF {
					t.Error("ring between the squares not filled")
				}
			}
		})
	}
}

func TestFillOpenSubpath(t *testing.T) {
	// without an explicit Close the subpath is still filled as a polygon
	open := (&path.Data{}).
		MoveTo(pt(10, 10)).
		LineTo(pt(10, 50)).
		LineTo(pt(50, 50)).
		LineTo(pt(50, 10))

	mask := renderBinary(64, 64, smallPathThreshold, func(r *Rasterizer, emit EmitFunc) {
		r.FillNonZero(open, emit)
	})
	if mask.AlphaAt(30, 30).A != 0xFF {
		t.Error("interior of open subpath not filled")
	}
	if mask.AlphaAt(5, 30).A != 0 {
		t.Error("exterior of open subpath filled")
	}
}

func TestStrokeRoundLine(t *testing.T) {
	line := (&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(54, 32))

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			mask := renderBinary(64, 64, a.threshold, func(r *Rasterizer, emit EmitFunc) {
				r.Width = 8
				r.Cap = graphics.LineCapRound
				r.Join = graphics.LineJoinRound
				r.Stroke(line, emit)
			})

			// the body covers rows 28 to 35
			for y := range 64 {
				got := mask.AlphaAt(32, y).A
				want := uint8(0)
				if y >= 28 && y < 36 {
					want = 0xFF
				}
				if got != want {
					t.Errorf("row %d: got %d, want %d", y, got, want)
				}
			}

			// the round caps extend the line by half the width
			if mask.AlphaAt(7, 31).A != 0xFF || mask.AlphaAt(56, 31).A != 0xFF {
				t.Error("round caps missing")
			}
			if mask.AlphaAt(4, 31).A != 0 || mask.AlphaAt(59, 31).A != 0 {
				t.Error("round caps too long")
			}
		})
	}
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(54, 32))

	cases := []struct {
		cap        graphics.LineCapStyle
		first, end int // first painted column, first unpainted column
	}{
		{graphics.LineCapButt, 10, 54},
		{graphics.LineCapSquare, 6, 58},
	}
	for _, c := range cases {
		t.Run(c.cap.String(), func(t *testing.T) {
			mask := renderBinary(64, 64, smallPathThreshold, func(r *Rasterizer, emit EmitFunc) {
				r.Width = 8
				r.Cap = c.cap
				r.Stroke(line, emit)
			})
			for x := range 64 {
				got := mask.AlphaAt(x, 32).A
				want := uint8(0)
				if x >= c.first && x < c.end {
					want = 0xFF
				}
				if got != want {
					t.Errorf("column %d: got %d, want %d", x, got, want)
				}
			}
		})
	}
}

// TestStrokeJoins checks the region just outside the corner of an
// inverted "V": only the miter join reaches up to row 10.
func TestStrokeJoins(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(32, 14)).
		LineTo(pt(54, 50))

	cases := []struct {
		join graphics.LineJoinStyle
		want uint8
	}{
		{graphics.LineJoinMiter, 0xFF},
		{graphics.LineJoinBevel, 0},
		{graphics.LineJoinRound, 0},
	}
	for _, c := range cases {
		t.Run(c.join.String(), func(t *testing.T) {
			mask := renderBinary(64, 64, smallPathThreshold, func(r *Rasterizer, emit EmitFunc) {
				r.Width = 6
				r.Join = c.join
				r.Stroke(corner, emit)
			})
			if got := mask.AlphaAt(31, 10).A; got != c.want {
				t.Errorf("sample above corner: got %d, want %d", got, c.want)
			}
			// every join style covers the corner point itself
			if got := mask.AlphaAt(31, 14).A; got != 0xFF {
				t.Errorf("corner not painted: %d", got)
			}
		})
	}
}

func TestStrokeDot(t *testing.T) {
	dot := (&path.Data{}).MoveTo(pt(20, 20)).LineTo(pt(20, 20))

	for _, style := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound} {
		mask := renderBinary(40, 40, smallPathThreshold, func(r *Rasterizer, emit EmitFunc) {
			r.Width = 6
			r.Cap = style
			r.Stroke(dot, emit)
		})
		painted := mask.AlphaAt(19, 19).A == 0xFF && mask.AlphaAt(20, 20).A == 0xFF
		if style == graphics.LineCapRound && !painted {
			t.Error("round dot not painted")
		}
		if style == graphics.LineCapButt && painted {
			t.Error("butt dot painted")
		}
		if mask.AlphaAt(25, 20).A != 0 {
			t.Errorf("%s: dot too large", style)
		}
	}
}

// TestStrokeSelfIntersection strokes a path crossing itself; the
// crossing must be painted once, not cancelled out.
func TestStrokeSelfIntersection(t *testing.T) {
	cross := (&path.Data{}).
		MoveTo(pt(10, 10)).
		LineTo(pt(50, 50)).
		LineTo(pt(50, 10)).
		LineTo(pt(10, 50))

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			mask := renderBinary(64, 64, a.threshold, func(r *Rasterizer, emit EmitFunc) {
				r.Width = 10
				r.Cap = graphics.LineCapRound
				r.Join = graphics.LineJoinRound
				r.Stroke(cross, emit)
			})
			if mask.AlphaAt(30, 30).A != 0xFF {
				t.Error("crossing point not painted")
			}
			if mask.AlphaAt(30, 45).A != 0 {
				t.Error("area between the strokes painted")
			}
		})
	}
}

// TestStrokeClipped draws partly outside the clip rectangle.
func TestStrokeClipped(t *testing.T) {
	line := (&path.Data{}).MoveTo(pt(-20, 5)).LineTo(pt(100, 5))

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			mask := renderBinary(32, 16, a.threshold, func(r *Rasterizer, emit EmitFunc) {
				r.Width = 4
				r.Cap = graphics.LineCapRound
				r.Stroke(line, emit)
			})
			for x := range 32 {
				if mask.AlphaAt(x, 5).A != 0xFF {
					t.Fatalf("column %d not painted", x)
				}
			}
			if mask.AlphaAt(10, 12).A != 0 {
				t.Error("painted outside the stroke")
			}
		})
	}
}

// TestFarOutsideClip uses edges that reach far beyond the clip
// rectangle. Only the part inside the clip may be visited, and
// coordinates beyond the range of int must not wrap around.
func TestFarOutsideClip(t *testing.T) {
	long := (&path.Data{}).MoveTo(pt(-1e20, 50)).LineTo(pt(1e20, 50))
	sloped := (&path.Data{}).MoveTo(pt(-2e8, 50)).LineTo(pt(2e8, 50.8))
	wedge := (&path.Data{}).
		MoveTo(pt(50, 0)).
		LineTo(pt(-1e12, 50)).
		LineTo(pt(50, 100)).
		Close()

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			for _, line := range []*path.Data{long, sloped} {
				mask := renderBinary(100, 100, a.threshold, func(r *Rasterizer, emit EmitFunc) {
					r.Width = 10
					r.Cap = graphics.LineCapRound
					r.Join = graphics.LineJoinRound
					r.Stroke(line, emit)
				})
				for x := range 100 {
					for y := 46; y <= 53; y++ {
						if mask.AlphaAt(x, y).A != 0xFF {
							t.Fatalf("sample (%d,%d) not painted", x, y)
						}
					}
					if mask.AlphaAt(x, 40).A != 0 || mask.AlphaAt(x, 60).A != 0 {
						t.Fatalf("column %d painted outside the stroke", x)
					}
				}
			}

			mask := renderBinary(100, 100, a.threshold, func(r *Rasterizer, emit EmitFunc) {
				r.FillNonZero(wedge, emit)
			})
			for y := range 100 {
				for x := range 100 {
					want := uint8(0)
					if x < 50 {
						want = 0xFF
					}
					if got := mask.AlphaAt(x, y).A; got != want {
						t.Fatalf("sample (%d,%d) = %d, want %d", x, y, got, want)
					}
				}
			}

			huge := renderBinary(20, 20, a.threshold, func(r *Rasterizer, emit EmitFunc) {
				r.FillNonZero(square(-1e20, -1e20, 1e20, 1e20), emit)
			})
			for i, v := range huge.Pix {
				if v != 0xFF {
					t.Fatalf("sample %d of the covering square is %d", i, v)
				}
			}
		})
	}
}

// TestApproachesAgree compares the raw coverage of both strategies.
func TestApproachesAgree(t *testing.T) {
	const k = 0.5522847498
	circle := func(cx, cy, r float64) *path.Data {
		return (&path.Data{}).
			MoveTo(pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy-k*r), pt(cx+k*r, cy-r), pt(cx, cy-r)).
			CubeTo(pt(cx-k*r, cy-r), pt(cx-r, cy-k*r), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy+k*r), pt(cx-k*r, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx+k*r, cy+r), pt(cx+r, cy+k*r), pt(cx+r, cy)).
			Close()
	}
	zigzag := (&path.Data{}).
		MoveTo(pt(5, 60)).
		LineTo(pt(20, 10)).
		LineTo(pt(35, 60)).
		QuadTo(pt(45, 0), pt(60, 30))

	shapes := map[string]func(r *Rasterizer, emit EmitFunc){
		"circle": func(r *Rasterizer, emit EmitFunc) {
			r.FillNonZero(circle(32, 32, 25), emit)
		},
		"zigzag": func(r *Rasterizer, emit EmitFunc) {
			r.Width = 7
			r.Cap = graphics.LineCapRound
			r.Join = graphics.LineJoinRound
			r.Stroke(zigzag, emit)
		},
	}

	for name, draw := range shapes {
		t.Run(name, func(t *testing.T) {
			var out [2]*image.Alpha
			for i, a := range approaches {
				out[i] = image.NewAlpha(image.Rect(0, 0, 64, 64))
				r := NewRasterizer(ClipFor(out[i]))
				r.smallPathThreshold = a.threshold
				draw(r, Coverage(out[i]))
			}
			for i := range out[0].Pix {
				d := int(out[0].Pix[i]) - int(out[1].Pix[i])
				if d < -1 || d > 1 {
					t.Fatalf("sample %d: %d vs %d", i, out[0].Pix[i], out[1].Pix[i])
				}
			}
		})
	}
}

func TestBinaryKeepsUnion(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 20, 20))
	r := NewRasterizer(ClipFor(dst))
	r.FillNonZero(square(0, 0, 5, 5), Binary(dst))
	r.FillNonZero(square(10, 10, 15, 15), Binary(dst))

	if dst.AlphaAt(2, 2).A != 0xFF || dst.AlphaAt(12, 12).A != 0xFF {
		t.Error("second fill erased the first one")
	}
	if dst.AlphaAt(7, 7).A != 0 {
		t.Error("gap between the squares painted")
	}
}
