// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/bits"

	"golang.org/x/exp/slices"

	"gioui.org/compose/dsl"
)

// box holds the children and settings shared by HBox and VBox.
type box struct {
	spacing  int
	margins  Margins
	children []child
	geometry image.Rectangle

	// Scratch space.
	sizes []int
}

type childKind uint8

// child is the descriptor for a box child.
type child struct {
	kind    childKind
	widget  dsl.Widget
	stretch int
	align   dsl.Alignment
	// size of a spacer.
	size int

	rect image.Rectangle
}

const (
	widgetChild childKind = iota
	layoutChild
	spacerChild
	stretchChild
)

// AddWidget adds a widget with a stretch factor and alignment. A nil
// widget takes up no space.
func (b *box) AddWidget(w dsl.Widget, stretch int, align dsl.Alignment) {
	b.children = append(b.children, child{
		kind:    widgetChild,
		widget:  w,
		stretch: stretch,
		align:   align,
	})
}

// AddLayout adds a nested layout. The layout must report its size with
// a SizeHint method, as HBox and VBox do. A box cannot contain itself,
// directly or through its nested boxes.
func (b *box) AddLayout(l dsl.Layout, stretch int) {
	w, ok := l.(dsl.Widget)
	if !ok {
		panic(fmt.Errorf("layout: AddLayout: %T has no SizeHint method", l))
	}
	if n, ok := l.(nested); ok && n.self().contains(b) {
		panic(errors.New("layout: AddLayout: box added to itself"))
	}
	b.children = append(b.children, child{
		kind:    layoutChild,
		widget:  w,
		stretch: stretch,
	})
}

// AddSpacing adds a fixed space. Negative sizes are treated as zero.
func (b *box) AddSpacing(size int) {
	if size < 0 {
		size = 0
	}
	b.children = append(b.children, child{
		kind: spacerChild,
		size: size,
	})
}

// AddStretch adds an empty, stretchable space. When no child has a
// positive stretch factor, the stretches share the extra space equally.
func (b *box) AddStretch(stretch int) {
	b.children = append(b.children, child{
		kind:    stretchChild,
		stretch: stretch,
	})
}

// SetSpacing sets the space between two adjacent widgets or layouts.
// Spacers and stretches are not separated by spacing. Negative values
// are treated as zero.
func (b *box) SetSpacing(spacing int) {
	if spacing < 0 {
		spacing = 0
	}
	b.spacing = spacing
}

// SetMargin sets all four margins to margin.
func (b *box) SetMargin(margin int) {
	b.SetContentsMargins(margin, margin, margin, margin)
}

// SetContentsMargins sets the margins around the children. Negative
// values are treated as zero.
func (b *box) SetContentsMargins(left, top, right, bottom int) {
	b.margins = Margins{
		Left:   clampNeg(left),
		Top:    clampNeg(top),
		Right:  clampNeg(right),
		Bottom: clampNeg(bottom),
	}
}

// Spacing returns the space between adjacent widgets or layouts.
func (b *box) Spacing() int {
	return b.spacing
}

// Margins returns the margins around the children.
func (b *box) Margins() Margins {
	return b.margins
}

// Len returns the number of children, spacers and stretches included.
func (b *box) Len() int {
	return len(b.children)
}

// Rects returns the rectangle of every child as computed by the most
// recent SetGeometry.
func (b *box) Rects() []image.Rectangle {
	rects := make([]image.Rectangle, len(b.children))
	for i, c := range b.children {
		rects[i] = c.rect
	}
	return rects
}

// Geometry returns the rectangle passed to the most recent SetGeometry.
func (b *box) Geometry() image.Rectangle {
	return b.geometry
}

func (b *box) sizeHint(a Axis) image.Point {
	var main, cross int
	for i, c := range b.children {
		h := c.hint(a)
		main += axisMain(a, h)
		if b.spaced(i) {
			main += b.spacing
		}
		if cr := axisCross(a, h); cr > cross {
			cross = cr
		}
	}
	return axisPoint(a, main, cross).Add(b.margins.size())
}

func (b *box) setGeometry(a Axis, r image.Rectangle) {
	b.geometry = r
	inner := b.margins.inset(r)
	mainMax := axisMain(a, inner.Size())
	crossMax := axisCross(a, inner.Size())
	b.sizes = b.sizes[:0]
	used := 0
	for i, c := range b.children {
		sz := axisMain(a, c.hint(a))
		b.sizes = append(b.sizes, sz)
		used += sz
		if b.spaced(i) {
			used += b.spacing
		}
	}
	if extra := mainMax - used; extra > 0 {
		b.distribute(extra)
	}
	pos := 0
	for i := range b.children {
		c := &b.children[i]
		if b.spaced(i) {
			pos += b.spacing
		}
		if pos > mainMax {
			pos = mainMax
		}
		// Clip children that don't fit.
		sz := b.sizes[i]
		if rem := mainMax - pos; sz > rem {
			sz = rem
		}
		cell := image.Rectangle{
			Min: axisPoint(a, pos, 0),
			Max: axisPoint(a, pos+sz, crossMax),
		}.Add(inner.Min)
		c.rect = c.place(a, cell)
		if p, ok := c.widget.(Placer); ok {
			p.SetGeometry(c.rect)
		}
		pos += sz
	}
}

// distribute adds extra to the sizes of the stretching children, in
// proportion to their weights. The shares always sum to extra.
func (b *box) distribute(extra int) {
	byFactor := slices.IndexFunc(b.children, func(c child) bool {
		return c.stretch > 0
	}) >= 0
	var total uint64
	for _, c := range b.children {
		total += c.weight(byFactor)
	}
	if total == 0 {
		return
	}
	var acc uint64
	given := 0
	for i, c := range b.children {
		w := c.weight(byFactor)
		if w == 0 {
			continue
		}
		acc += w
		// extra*acc/total never exceeds extra, so the quotient fits.
		hi, lo := bits.Mul64(uint64(extra), acc)
		q, _ := bits.Div64(hi, lo, total)
		share := int(q) - given
		given += share
		b.sizes[i] += share
	}
}

// nested is implemented by HBox and VBox through their embedded box.
type nested interface {
	self() *box
}

func (b *box) self() *box {
	return b
}

// contains reports whether t is b or a box nested anywhere inside b.
func (b *box) contains(t *box) bool {
	if b == t {
		return true
	}
	for _, c := range b.children {
		if c.kind != layoutChild {
			continue
		}
		if n, ok := c.widget.(nested); ok && n.self().contains(t) {
			return true
		}
	}
	return false
}

// spaced reports whether spacing separates child i from the child
// before it.
func (b *box) spaced(i int) bool {
	if i == 0 {
		return false
	}
	return b.children[i-1].isItem() && b.children[i].isItem()
}

func (c child) isItem() bool {
	return c.kind == widgetChild || c.kind == layoutChild
}

// weight returns the share of extra space the child asks for. Factors
// are capped at math.MaxInt32 so their sum cannot overflow.
func (c child) weight(byFactor bool) uint64 {
	if byFactor {
		if c.stretch <= 0 {
			return 0
		}
		if c.stretch > math.MaxInt32 {
			return math.MaxInt32
		}
		return uint64(c.stretch)
	}
	if c.kind == stretchChild {
		return 1
	}
	return 0
}

func (c child) hint(a Axis) image.Point {
	switch c.kind {
	case widgetChild, layoutChild:
		if c.widget == nil {
			return image.Point{}
		}
		h := c.widget.SizeHint()
		return image.Point{X: clampNeg(h.X), Y: clampNeg(h.Y)}
	case spacerChild:
		return axisPoint(a, c.size, 0)
	default:
		return image.Point{}
	}
}

// place returns the rectangle of a child inside its cell. Aligned
// widgets keep their size hint in the aligned direction; everything
// else fills the cell.
func (c child) place(a Axis, cell image.Rectangle) image.Rectangle {
	if c.kind != widgetChild || c.align == 0 {
		return cell
	}
	h := c.hint(a)
	mainAlign, crossAlign := c.align.Horizontal(), c.align.Vertical()
	if a == Vertical {
		mainAlign, crossAlign = crossAlign, mainAlign
	}
	sz := cell.Size()
	mainOff, mainSz := alignIn(mainAlign, axisMain(a, h), axisMain(a, sz))
	crossOff, crossSz := alignIn(crossAlign, axisCross(a, h), axisCross(a, sz))
	min := cell.Min.Add(axisPoint(a, mainOff, crossOff))
	return image.Rectangle{Min: min, Max: min.Add(axisPoint(a, mainSz, crossSz))}
}

// alignIn positions an extent of size sz in space according to the
// start, end or center flag in al. Other flags fill the space.
func alignIn(al dsl.Alignment, sz, space int) (off, size int) {
	if sz > space {
		sz = space
	}
	switch al {
	case dsl.AlignLeft, dsl.AlignTop:
		return 0, sz
	case dsl.AlignRight, dsl.AlignBottom:
		return space - sz, sz
	case dsl.AlignHCenter, dsl.AlignVCenter:
		return (space - sz) / 2, sz
	default:
		return 0, space
	}
}

func clampNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func axisPoint(a Axis, main, cross int) image.Point {
	if a == Horizontal {
		return image.Point{X: main, Y: cross}
	} else {
		return image.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz image.Point) int {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a Axis, sz image.Point) int {
	if a == Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}
