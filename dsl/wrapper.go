// SPDX-License-Identifier: Unlicense OR MIT

package dsl

// WidgetWrapper is a widget with placement set by chained calls:
//
//	dsl.Wrap(w).Stretch(1).Align(dsl.AlignCenter)
//
// The setters return a modified copy, so a wrapper may be kept and
// reused as a template.
type WidgetWrapper[W Widget] struct {
	widget  W
	stretch int
	align   Alignment
}

// LayoutWrapper configures a layout through chained calls. Each method
// applies the setting to the layout immediately.
type LayoutWrapper[L Layout] struct {
	layout L
}

// Wrap returns a WidgetWrapper for w with no stretch and no alignment.
func Wrap[W Widget](w W) WidgetWrapper[W] {
	return WidgetWrapper[W]{widget: w}
}

// Stretch sets the stretch factor.
func (w WidgetWrapper[W]) Stretch(s int) WidgetWrapper[W] {
	w.stretch = s
	return w
}

// Align sets the alignment.
func (w WidgetWrapper[W]) Align(a Alignment) WidgetWrapper[W] {
	w.align = a
	return w
}

// Widget returns the wrapped widget with its original type.
func (w WidgetWrapper[W]) Widget() W {
	return w.widget
}

// StretchFactor returns the stretch factor.
func (w WidgetWrapper[W]) StretchFactor() int {
	return w.stretch
}

// Alignment returns the alignment.
func (w WidgetWrapper[W]) Alignment() Alignment {
	return w.align
}

// Configure returns a LayoutWrapper for an existing layout.
func Configure[L Layout](l L) LayoutWrapper[L] {
	return LayoutWrapper[L]{layout: l}
}

// Spacing sets the spacing between items of the layout.
func (w LayoutWrapper[L]) Spacing(spacing int) LayoutWrapper[L] {
	w.layout.SetSpacing(spacing)
	return w
}

// Margin sets all four contents margins of the layout to margin.
func (w LayoutWrapper[L]) Margin(margin int) LayoutWrapper[L] {
	w.layout.SetMargin(margin)
	return w
}

// ContentsMargins sets the contents margins of the layout.
func (w LayoutWrapper[L]) ContentsMargins(left, top, right, bottom int) LayoutWrapper[L] {
	w.layout.SetContentsMargins(left, top, right, bottom)
	return w
}

// Layout returns the wrapped layout.
func (w LayoutWrapper[L]) Layout() L {
	return w.layout
}
