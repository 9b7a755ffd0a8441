package main

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/maskedit/scenarios"
)

// writePDF draws the final mask of s as vector graphics, white on black,
// with one PDF point per image sample.
func writePDF(s scenarios.Scenario, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(s.Width), float64(s.Height))
	page.Fill()

	// PDF has the origin in the bottom-left corner, images in the
	// top-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(s.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	gestures := s.Gestures()
	switch s.Policy {
	case "region-fill":
		for _, g := range gestures {
			if len(g) < 3 {
				continue
			}
			page.MoveTo(g[0].X, g[0].Y)
			for _, p := range g[1:] {
				page.LineTo(p.X, p.Y)
			}
			page.ClosePath()
			page.Fill()
		}
	default:
		page.SetLineWidth(s.FinalBrush())
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		drawn := false
		for _, g := range gestures {
			if len(g) < 2 {
				continue
			}
			page.MoveTo(g[0].X, g[0].Y)
			for _, p := range g[1:] {
				page.LineTo(p.X, p.Y)
			}
			drawn = true
		}
		if drawn {
			page.Stroke()
		}
	}

	return page.Close()
}
