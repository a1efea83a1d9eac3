// SPDX-License-Identifier: Unlicense OR MIT

/*
Package dsl fills box layouts from a single, mixed list of items.

An item is one of a closed set of kinds: a widget, a nested layout, a
widget or layout with placement information, a fixed spacing, a stretch
or a fluently configured widget. Each kind is appended to the target
layout with exactly one Layout method, in the order the items are given:

	dsl.Add(row,
		dsl.W(label),
		dsl.Spacing(8),
		dsl.Wrap(edit).Stretch(1),
		dsl.Stretch(0),
		dsl.WidgetInfo{Widget: ok, Align: dsl.AlignRight},
	)

The set of kinds is sealed: Item has an unexported method, so a value
of any other type is rejected by the compiler.

Make allocates the layout as well, and MakeEx returns a LayoutWrapper
for configuring spacing and margins in the same expression:

	form := dsl.MakeEx[layout.VBox](
		dsl.L(row),
		dsl.Stretch(1),
	).Spacing(4).Margin(2).Layout()

Widgets and layouts passed to the builders are borrowed. They are
handed unchanged to the target layout and must outlive the call.
*/
package dsl
