// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/compose/dsl"
	"gioui.org/compose/dsl/dsltest"
	"gioui.org/compose/layout"
)

func TestSizeHint(t *testing.T) {
	a, b := dsltest.NewLeaf("a", 10, 5), dsltest.NewLeaf("b", 20, 8)

	h := dsl.MakeEx[layout.HBox](dsl.W(a), dsl.W(b)).Spacing(3).Margin(1).Layout()
	v := dsl.MakeEx[layout.VBox](dsl.W(a), dsl.W(b)).Spacing(3).Margin(1).Layout()

	assert.Equal(t, image.Pt(35, 10), h.SizeHint())
	assert.Equal(t, image.Pt(22, 18), v.SizeHint())
}

func TestSpacingSkipsSpacers(t *testing.T) {
	a, b, c := dsltest.NewLeaf("a", 10, 4), dsltest.NewLeaf("b", 10, 4), dsltest.NewLeaf("c", 10, 4)

	row := dsl.MakeEx[layout.HBox](
		dsl.W(a),
		dsl.Spacing(3),
		dsl.W(b),
		dsl.W(c),
	).Spacing(5).Layout()

	assert.Equal(t, image.Pt(38, 4), row.SizeHint())
	row.SetGeometry(image.Rect(0, 0, 38, 4))
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 10, 4),
		image.Rect(10, 0, 13, 4),
		image.Rect(13, 0, 23, 4),
		image.Rect(28, 0, 38, 4),
	}, row.Rects())
}

func TestStretchFactors(t *testing.T) {
	a, b := dsltest.NewLeaf("a", 0, 10), dsltest.NewLeaf("b", 0, 10)

	row := dsl.Make[layout.HBox](
		dsl.Wrap(a).Stretch(1),
		dsl.Wrap(b).Stretch(2),
	)
	row.SetGeometry(image.Rect(0, 0, 100, 10))

	assert.Equal(t, image.Rect(0, 0, 33, 10), a.Geometry)
	assert.Equal(t, image.Rect(33, 0, 100, 10), b.Geometry)
}

func TestStretchItemsShareSpace(t *testing.T) {
	a := dsltest.NewLeaf("a", 10, 6)

	row := dsl.Make[layout.HBox](dsl.Stretch(0), dsl.W(a), dsl.Stretch(0))
	row.SetGeometry(image.Rect(0, 0, 50, 6))

	assert.Equal(t, image.Rect(20, 0, 30, 6), a.Geometry)
}

func TestFactorsWinOverStretchItems(t *testing.T) {
	a := dsltest.NewLeaf("a", 10, 6)

	row := dsl.Make[layout.HBox](dsl.Stretch(0), dsl.WidgetInfo{Widget: a, Stretch: 1})
	row.SetGeometry(image.Rect(0, 0, 50, 6))

	assert.Equal(t, image.Rect(0, 0, 50, 6), a.Geometry)
}

func TestExtraSpaceAtEnd(t *testing.T) {
	a, b := dsltest.NewLeaf("a", 10, 6), dsltest.NewLeaf("b", 10, 6)

	row := dsl.Make[layout.HBox](dsl.W(a), dsl.W(b))
	row.SetGeometry(image.Rect(0, 0, 100, 6))

	assert.Equal(t, image.Rect(0, 0, 10, 6), a.Geometry)
	assert.Equal(t, image.Rect(10, 0, 20, 6), b.Geometry)
}

func TestClipping(t *testing.T) {
	a, b := dsltest.NewLeaf("a", 30, 6), dsltest.NewLeaf("b", 30, 6)

	row := dsl.Make[layout.HBox](dsl.W(a), dsl.W(b))
	row.SetGeometry(image.Rect(0, 0, 40, 6))

	assert.Equal(t, image.Rect(0, 0, 30, 6), a.Geometry)
	assert.Equal(t, image.Rect(30, 0, 40, 6), b.Geometry)
}

func TestAlignment(t *testing.T) {
	a, b := dsltest.NewLeaf("a", 10, 6), dsltest.NewLeaf("b", 10, 6)

	row := dsl.Make[layout.HBox](
		dsl.WidgetInfo{Widget: a, Align: dsl.AlignVCenter},
		dsl.Wrap(b).Stretch(1).Align(dsl.AlignRight|dsl.AlignBottom),
	)
	row.SetGeometry(image.Rect(0, 0, 60, 20))

	assert.Equal(t, image.Rect(0, 7, 10, 13), a.Geometry)
	assert.Equal(t, image.Rect(50, 14, 60, 20), b.Geometry)

	c := dsltest.NewLeaf("c", 10, 6)
	col := dsl.Make[layout.VBox](dsl.Wrap(c).Stretch(1).Align(dsl.AlignCenter))
	col.SetGeometry(image.Rect(0, 0, 30, 30))
	assert.Equal(t, image.Rect(10, 12, 20, 18), c.Geometry)
}

func TestNested(t *testing.T) {
	a, b, c := dsltest.NewLeaf("a", 10, 10), dsltest.NewLeaf("b", 10, 10), dsltest.NewLeaf("c", 30, 5)

	row := dsl.Make[layout.HBox](dsl.W(a), dsl.W(b))
	col := dsl.Make[layout.VBox](dsl.L(row), dsl.W(c))

	require.Equal(t, image.Pt(30, 15), col.SizeHint())
	col.SetGeometry(image.Rect(0, 0, 30, 15))

	assert.Equal(t, image.Rect(0, 0, 30, 10), row.Geometry())
	assert.Equal(t, image.Rect(0, 0, 10, 10), a.Geometry)
	assert.Equal(t, image.Rect(10, 0, 20, 10), b.Geometry)
	assert.Equal(t, image.Rect(0, 10, 30, 15), c.Geometry)
}

func TestNegativeValues(t *testing.T) {
	a := dsltest.NewLeaf("a", 10, 10)

	row := dsl.MakeEx[layout.HBox](dsl.Spacing(-5), dsl.W(a)).
		Spacing(-4).
		ContentsMargins(-1, 2, -3, 4).
		Layout()

	assert.Equal(t, 0, row.Spacing())
	assert.Equal(t, layout.Margins{Top: 2, Bottom: 4}, row.Margins())
	assert.Equal(t, image.Pt(10, 16), row.SizeHint())
}

func TestAddLayoutWithoutSizeHint(t *testing.T) {
	var row layout.HBox

	assert.PanicsWithError(t, "layout: AddLayout: *dsltest.Recorder has no SizeHint method", func() {
		dsl.Add(&row, dsl.L(&dsltest.Recorder{}))
	})
	assert.Equal(t, 0, row.Len())
}

func TestLen(t *testing.T) {
	a := dsltest.NewLeaf("a", 1, 1)

	col := dsl.Make[layout.VBox](dsl.W(a), dsl.Spacing(2), dsl.Stretch(1), dsl.L(&layout.HBox{}))

	assert.Equal(t, 4, col.Len())
	assert.Len(t, col.Rects(), 4)
}

func TestLargeStretchFactors(t *testing.T) {
	a, b := dsltest.NewLeaf("a", 0, 10), dsltest.NewLeaf("b", 0, 10)

	row := dsl.Make[layout.HBox](
		dsl.Wrap(a).Stretch(math.MaxInt/4),
		dsl.Wrap(b).Stretch(math.MaxInt/4),
	)
	row.SetGeometry(image.Rect(0, 0, 100, 10))

	assert.Equal(t, image.Rect(0, 0, 50, 10), a.Geometry)
	assert.Equal(t, image.Rect(50, 0, 100, 10), b.Geometry)
}

func TestAddLayoutToItself(t *testing.T) {
	var row layout.HBox

	assert.PanicsWithError(t, "layout: AddLayout: box added to itself", func() {
		dsl.Add(&row, dsl.L(&row))
	})
	assert.Equal(t, 0, row.Len())

	inner := dsl.Make[layout.VBox]()
	outer := dsl.Make[layout.HBox](dsl.L(inner))
	assert.PanicsWithError(t, "layout: AddLayout: box added to itself", func() {
		dsl.Add(inner, dsl.L(outer))
	})
	assert.Equal(t, 0, inner.Len())
	assert.Equal(t, image.Pt(0, 0), outer.SizeHint())
}

func TestFillRules(t *testing.T) {
	tests := []struct {
		name  string
		items func(a *dsltest.Leaf) []dsl.Item
		size  image.Point
		want  image.Rectangle
	}{
		{
			name: "non-positive factor does not stretch",
			items: func(a *dsltest.Leaf) []dsl.Item {
				return []dsl.Item{dsl.WidgetInfo{Widget: a, Stretch: -2}, dsl.Stretch(0)}
			},
			size: image.Pt(50, 6),
			want: image.Rect(0, 0, 10, 6),
		},
		{
			name: "justify and baseline fill the cell",
			items: func(a *dsltest.Leaf) []dsl.Item {
				return []dsl.Item{dsl.WidgetInfo{Widget: a, Align: dsl.AlignJustify | dsl.AlignBaseline}}
			},
			size: image.Pt(10, 20),
			want: image.Rect(0, 0, 10, 20),
		},
		{
			name: "nil widget takes no space",
			items: func(a *dsltest.Leaf) []dsl.Item {
				return []dsl.Item{dsl.WidgetInfo{}, dsl.W(a)}
			},
			size: image.Pt(50, 6),
			want: image.Rect(0, 0, 10, 6),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := dsltest.NewLeaf("a", 10, 6)
			row := dsl.Make[layout.HBox](tt.items(a)...)
			row.SetGeometry(image.Rectangle{Max: tt.size})
			assert.Equal(t, tt.want, a.Geometry)
		})
	}
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "Horizontal", layout.Horizontal.String())
	assert.Equal(t, "Vertical", layout.Vertical.String())
	assert.Panics(t, func() { _ = layout.Axis(2).String() })
}

func BenchmarkBox(b *testing.B) {
	a, c := dsltest.NewLeaf("a", 60, 60), dsltest.NewLeaf("c", 30, 30)
	row := dsl.Make[layout.HBox](dsl.W(a), dsl.Stretch(1), dsl.Wrap(c).Align(dsl.AlignCenter))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		row.SetGeometry(image.Rect(0, 0, 100, 100))
	}
}
