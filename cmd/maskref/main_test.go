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

package main

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/maskedit/scenarios"
)

// TestProcessMaskMatchesFile checks that the base64 mask returned by
// process encodes the same bytes as the mask PNG written to disk.
func TestProcessMaskMatchesFile(t *testing.T) {
	dir := t.TempDir()
	for _, category := range []string{"swath", "clear"} {
		for _, s := range scenarios.All[category] {
			name := category + "_" + s.Name
			b64, err := process(dir, name, s)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}

			data, err := os.ReadFile(filepath.Join(dir, name+"_mask.png"))
			if b64 == "" {
				if !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("%s: mask file written for empty mask", name)
				}
				continue
			}
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			got, err := base64.StdEncoding.DecodeString(b64)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if !bytes.Equal(got, data) {
				t.Errorf("%s: returned mask differs from %s_mask.png", name, name)
			}
		}
	}
}
