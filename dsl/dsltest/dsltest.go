// SPDX-License-Identifier: Unlicense OR MIT

// Package dsltest provides a recording dsl.Layout and a test widget.
package dsltest

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"gioui.org/compose/dsl"
)

// Op identifies a recorded Layout method.
type Op uint8

const (
	AddWidget Op = iota
	AddLayout
	AddSpacing
	AddStretch
	SetSpacing
	SetMargin
	SetContentsMargins
)

// Call is one recorded Layout method call. Only the fields used by
// Op are set.
type Call struct {
	Op      Op
	Widget  dsl.Widget
	Layout  dsl.Layout
	Stretch int
	Align   dsl.Alignment
	// Size is the argument of AddSpacing, SetSpacing and SetMargin.
	Size int
	// Margins holds the left, top, right and bottom arguments of
	// SetContentsMargins.
	Margins [4]int
}

// Recorder is a dsl.Layout that records every call made to it. The
// zero value is ready to use.
type Recorder struct {
	Name  string
	Calls []Call

	// Spacing and Margins track the configured state.
	Spacing int
	Margins [4]int
}

// Leaf is a widget with a fixed size hint. It remembers the last
// geometry assigned to it.
type Leaf struct {
	Name     string
	Hint     image.Point
	Geometry image.Rectangle
}

type callDoc struct {
	Op      string `yaml:"op"`
	Widget  string `yaml:"widget,omitempty"`
	Layout  string `yaml:"layout,omitempty"`
	Stretch int    `yaml:"stretch,omitempty"`
	Align   string `yaml:"align,omitempty"`
	Size    int    `yaml:"size,omitempty"`
	Margins []int  `yaml:"margins,flow,omitempty"`
}

// NewLeaf returns a Leaf with the given name and size hint.
func NewLeaf(name string, w, h int) *Leaf {
	return &Leaf{Name: name, Hint: image.Pt(w, h)}
}

// SizeHint returns l.Hint.
func (l *Leaf) SizeHint() image.Point {
	return l.Hint
}

// SetGeometry stores r in l.Geometry.
func (l *Leaf) SetGeometry(r image.Rectangle) {
	l.Geometry = r
}

// String returns the leaf name.
func (l *Leaf) String() string {
	return l.Name
}

// AddWidget records an AddWidget call.
func (r *Recorder) AddWidget(w dsl.Widget, stretch int, align dsl.Alignment) {
	r.Calls = append(r.Calls, Call{Op: AddWidget, Widget: w, Stretch: stretch, Align: align})
}

// AddLayout records an AddLayout call.
func (r *Recorder) AddLayout(l dsl.Layout, stretch int) {
	r.Calls = append(r.Calls, Call{Op: AddLayout, Layout: l, Stretch: stretch})
}

// AddSpacing records an AddSpacing call.
func (r *Recorder) AddSpacing(size int) {
	r.Calls = append(r.Calls, Call{Op: AddSpacing, Size: size})
}

// AddStretch records an AddStretch call.
func (r *Recorder) AddStretch(stretch int) {
	r.Calls = append(r.Calls, Call{Op: AddStretch, Stretch: stretch})
}

// SetSpacing records the call and updates r.Spacing.
func (r *Recorder) SetSpacing(spacing int) {
	r.Spacing = spacing
	r.Calls = append(r.Calls, Call{Op: SetSpacing, Size: spacing})
}

// SetMargin records the call and sets all of r.Margins to margin.
func (r *Recorder) SetMargin(margin int) {
	r.Margins = [4]int{margin, margin, margin, margin}
	r.Calls = append(r.Calls, Call{Op: SetMargin, Size: margin})
}

// SetContentsMargins records the call and updates r.Margins.
func (r *Recorder) SetContentsMargins(left, top, right, bottom int) {
	r.Margins = [4]int{left, top, right, bottom}
	r.Calls = append(r.Calls, Call{Op: SetContentsMargins, Margins: r.Margins})
}

// Adds returns a copy of the recorded calls that append items,
// leaving out configuration calls.
func (r *Recorder) Adds() []Call {
	var adds []Call
	for _, c := range r.Calls {
		switch c.Op {
		case AddWidget, AddLayout, AddSpacing, AddStretch:
			adds = append(adds, c)
		}
	}
	return adds
}

// Snapshot returns a copy of the recorded calls.
func (r *Recorder) Snapshot() []Call {
	return slices.Clone(r.Calls)
}

// Reset clears the recorded calls and configuration.
func (r *Recorder) Reset() {
	name := r.Name
	*r = Recorder{Name: name}
}

// String returns the recorder name, or "Recorder" if it has none.
func (r *Recorder) String() string {
	if r.Name == "" {
		return "Recorder"
	}
	return r.Name
}

// YAML renders the recorded calls as a YAML sequence, one mapping per
// call. Widgets and layouts are written by name.
func (r *Recorder) YAML() (string, error) {
	docs := make([]callDoc, 0, len(r.Calls))
	for _, c := range r.Calls {
		d := callDoc{Op: c.Op.String()}
		switch c.Op {
		case AddWidget:
			d.Widget = name(c.Widget)
			d.Stretch = c.Stretch
			if c.Align != 0 {
				d.Align = c.Align.String()
			}
		case AddLayout:
			d.Layout = name(c.Layout)
			d.Stretch = c.Stretch
		case AddStretch:
			d.Stretch = c.Stretch
		case AddSpacing, SetSpacing, SetMargin:
			d.Size = c.Size
		case SetContentsMargins:
			d.Margins = append([]int(nil), c.Margins[:]...)
		}
		docs = append(docs, d)
	}
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func name(v interface{}) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}

func (o Op) String() string {
	switch o {
	case AddWidget:
		return "AddWidget"
	case AddLayout:
		return "AddLayout"
	case AddSpacing:
		return "AddSpacing"
	case AddStretch:
		return "AddStretch"
	case SetSpacing:
		return "SetSpacing"
	case SetMargin:
		return "SetMargin"
	case SetContentsMargins:
		return "SetContentsMargins"
	default:
		panic("unreachable")
	}
}
