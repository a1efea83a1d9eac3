// SPDX-License-Identifier: Unlicense OR MIT

package dsl

// filler appends items to the layout it was created for. It has one
// method per item kind.
type filler struct {
	l Layout
}

func (f filler) widget(w Widget) {
	f.l.AddWidget(w, 0, 0)
}

func (f filler) layout(l Layout) {
	f.l.AddLayout(l, 0)
}

func (f filler) widgetInfo(i WidgetInfo) {
	f.l.AddWidget(i.Widget, i.Stretch, i.Align)
}

func (f filler) layoutInfo(i LayoutInfo) {
	f.l.AddLayout(i.Layout, i.Stretch)
}

func (f filler) spacing(s Spacing) {
	f.l.AddSpacing(int(s))
}

func (f filler) stretch(s Stretch) {
	f.l.AddStretch(int(s))
}

func (f filler) wrapper(w Widget, stretch int, align Alignment) {
	f.l.AddWidget(w, stretch, align)
}

// each calls fn for every element of items, first to last.
func each[T any](items []T, fn func(T)) {
	for i := range items {
		fn(items[i])
	}
}

// Add appends items to l in order and returns l.
func Add[L Layout](l L, items ...Item) L {
	f := filler{l: l}
	each(items, func(it Item) {
		it.fill(f)
	})
	return l
}

// Make allocates a new T, appends items to it and returns it. The
// caller owns the result.
//
//	col := dsl.Make[layout.VBox](dsl.W(title), dsl.Stretch(1))
func Make[T any, P interface {
	*T
	Layout
}](items ...Item) P {
	return Add(P(new(T)), items...)
}

// MakeEx is like Make, but returns the layout in a LayoutWrapper for
// further configuration.
func MakeEx[T any, P interface {
	*T
	Layout
}](items ...Item) LayoutWrapper[P] {
	return Configure(Make[T, P](items...))
}
