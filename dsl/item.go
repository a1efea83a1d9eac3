// SPDX-License-Identifier: Unlicense OR MIT

package dsl

import (
	"fmt"
	"image"
	"strings"
)

// Widget is a leaf element placed by a Layout. Widgets are owned by
// the caller.
type Widget interface {
	// SizeHint returns the preferred size of the widget.
	SizeHint() image.Point
}

// Layout is the set of operations a container must provide to be
// filled by Add, Make and MakeEx.
type Layout interface {
	AddWidget(w Widget, stretch int, align Alignment)
	AddLayout(l Layout, stretch int)
	AddSpacing(size int)
	AddStretch(stretch int)
	SetSpacing(spacing int)
	SetMargin(margin int)
	SetContentsMargins(left, top, right, bottom int)
}

// Item is a value that can be appended to a Layout. The implementations
// are the kinds defined in this package.
type Item interface {
	fill(f filler)
}

// Alignment is a set of alignment flags. At most one horizontal and one
// vertical flag are meaningful; the zero value requests no alignment.
type Alignment uint16

const (
	AlignLeft Alignment = 1 << iota
	AlignRight
	AlignHCenter
	AlignJustify
	AlignTop
	AlignBottom
	AlignVCenter
	AlignBaseline
)

const (
	AlignCenter = AlignHCenter | AlignVCenter

	AlignHorizontalMask = AlignLeft | AlignRight | AlignHCenter | AlignJustify
	AlignVerticalMask   = AlignTop | AlignBottom | AlignVCenter | AlignBaseline
)

var alignNames = [...]string{
	"Left",
	"Right",
	"HCenter",
	"Justify",
	"Top",
	"Bottom",
	"VCenter",
	"Baseline",
}

// WidgetInfo places a widget with a stretch factor and alignment.
type WidgetInfo struct {
	Widget  Widget
	Stretch int
	Align   Alignment
}

// LayoutInfo places a nested layout with a stretch factor.
type LayoutInfo struct {
	Layout  Layout
	Stretch int
}

// Spacing is a fixed, non-stretchable space.
type Spacing int

// Stretch is a stretchable space with the given stretch factor.
type Stretch int

type widgetItem struct {
	w Widget
}

type layoutItem struct {
	l Layout
}

// W returns an item that adds w with no stretch and no alignment.
func W(w Widget) Item {
	return widgetItem{w: w}
}

// L returns an item that adds the nested layout l with no stretch.
func L(l Layout) Item {
	return layoutItem{l: l}
}

func (i widgetItem) fill(f filler) { f.widget(i.w) }

func (i layoutItem) fill(f filler) { f.layout(i.l) }

func (i WidgetInfo) fill(f filler) { f.widgetInfo(i) }

func (i LayoutInfo) fill(f filler) { f.layoutInfo(i) }

func (s Spacing) fill(f filler) { f.spacing(s) }

func (s Stretch) fill(f filler) { f.stretch(s) }

func (w WidgetWrapper[W]) fill(f filler) { f.wrapper(w.widget, w.stretch, w.align) }

// Horizontal returns the horizontal flags of a.
func (a Alignment) Horizontal() Alignment {
	return a & AlignHorizontalMask
}

// Vertical returns the vertical flags of a.
func (a Alignment) Vertical() Alignment {
	return a & AlignVerticalMask
}

func (a Alignment) String() string {
	if a == 0 {
		return "None"
	}
	var names []string
	for i, n := range alignNames {
		if a&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	if rest := a &^ (AlignHorizontalMask | AlignVerticalMask); rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint16(rest)))
	}
	return strings.Join(names, "|")
}
