// SPDX-License-Identifier: Unlicense OR MIT

// Package layout implements horizontal and vertical box layouts that
// can be filled with package dsl.
package layout

import (
	"image"

	"gioui.org/compose/dsl"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Margins are the space between the edges of a box and its children.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Placer is implemented by widgets that want to know the geometry
// assigned to them.
type Placer interface {
	SetGeometry(r image.Rectangle)
}

// HBox lays out its children from left to right. The zero value is an
// empty box.
type HBox struct {
	box
}

// VBox lays out its children from top to bottom. The zero value is an
// empty box.
type VBox struct {
	box
}

// SizeHint returns the preferred size of the box: the sum of its
// children's sizes plus spacing and margins.
func (b *HBox) SizeHint() image.Point {
	return b.sizeHint(Horizontal)
}

// SetGeometry lays out the children inside r.
func (b *HBox) SetGeometry(r image.Rectangle) {
	b.setGeometry(Horizontal, r)
}

// SizeHint returns the preferred size of the box: the sum of its
// children's sizes plus spacing and margins.
func (b *VBox) SizeHint() image.Point {
	return b.sizeHint(Vertical)
}

// SetGeometry lays out the children inside r.
func (b *VBox) SetGeometry(r image.Rectangle) {
	b.setGeometry(Vertical, r)
}

var (
	_ dsl.Layout = (*HBox)(nil)
	_ dsl.Layout = (*VBox)(nil)
	_ dsl.Widget = (*HBox)(nil)
	_ dsl.Widget = (*VBox)(nil)
	_ Placer     = (*HBox)(nil)
	_ Placer     = (*VBox)(nil)
)

func (m Margins) size() image.Point {
	return image.Point{X: m.Left + m.Right, Y: m.Top + m.Bottom}
}

// inset shrinks r by m. The result is never smaller than empty.
func (m Margins) inset(r image.Rectangle) image.Rectangle {
	r.Min.X += m.Left
	r.Min.Y += m.Top
	r.Max.X -= m.Right
	r.Max.Y -= m.Bottom
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
