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

// Package maskedit implements the state behind an interactive mask editor.
//
// An [Editor] receives pointer events from a host user interface, turns
// freehand gestures into a binary mask at the native resolution of a
// reference image, renders a composite of image and mask for display, and
// exports the mask as a base64-encoded PNG. Samples of the exported mask
// are 0 (background) or 255 (selected).
//
// Two mask semantics are available, chosen per editor:
//
//   - [Swath] paints a round-capped brush line along each gesture. The
//     whole gesture history is kept and replayed with the current brush
//     width, so changing the width affects earlier gestures, too.
//   - [RegionFill] treats each completed gesture as a closed outline and
//     fills its interior into a persistent mask.
//
// Both are driven through the same methods; host code does not need to
// know which one is active.
//
//go:generate go run ./cmd/maskref -out testdata/reference
package maskedit
