// SPDX-License-Identifier: Unlicense OR MIT

//go:build !race
// +build !race

package layout

import (
	"image"
	"testing"
)

type fixed image.Point

func (f fixed) SizeHint() image.Point { return image.Point(f) }

func TestSetGeometryAllocs(t *testing.T) {
	var b HBox
	b.AddWidget(fixed{X: 10, Y: 10}, 1, 0)
	b.AddSpacing(4)
	b.AddWidget(fixed{X: 20, Y: 10}, 0, 0)
	b.SetGeometry(image.Rect(0, 0, 100, 10))
	allocs := testing.AllocsPerRun(1, func() {
		b.SetGeometry(image.Rect(0, 0, 100, 10))
	})
	if allocs != 0 {
		t.Errorf("expected no allocs, got %f", allocs)
	}
}
