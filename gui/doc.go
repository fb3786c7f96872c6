/*
Package gui provides the immediate-mode widget toolkit of the title maker,
designed as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame. Each widget call takes an id and a rectangle,
runs a small interaction state machine and returns its result directly.
Widgets are laid out by slicing rectangles off a layout stack, and drawn
through a Painter whose look is controlled by a stylesheet.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := gui.New(renderer)

	for !window.ShouldClose() {
	    input := window.PollInput()
	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 720}, dt)

	    side := ctx.CutLeft(300)
	    ctx.PushBounds(side)
	    if ctx.Button("add", "Add shape", ctx.CutTop(28)) {
	        // ...
	    }
	    ctx.PopBounds()

	    ui.End()
	    window.SwapBuffers()
	}

# Widget State Machine

Every widget runs Context.Widget. A widget under the mouse becomes hovered;
the first widget in call order under the mouse when a button goes down
becomes active and focused. Clicked is reported on the release frame when
the mouse is still over the active widget. While a popup is open other
widgets ignore input unless called with WithoutInputBlock.

Widgets inside a scrolled panel only react while the mouse is over the
panel's visible area.

# Stylesheets

Styles are named blocks of properties:

	button {
	    background: #3a3d44;
	    border-radius: 4;
	    padding: 6 6 2 2;
	}

	button_hover {
	    @button;
	    background: gradient(0, 0, 0, 1, #4a4e57, #3a3d44);
	}

"@name;" copies the properties of an earlier style. Values are numbers,
#rrggbb / #rrggbbaa colors, identifiers, strings, rgb/rgba/hsl/hsla
colors and registered functions such as gradient, which are evaluated
against the widget bounds at draw time. A sheet with an unknown property,
a wrongly typed value or an undefined parent fails to load as a whole.

Widgets look up their style by state suffix: "_hover", "_active" and
"_disabled".

# Keyboard

TextEdit and Number entry:

	Left / Right     Move the caret
	Home / End       Jump to start or end
	Backspace        Delete before the caret
	Delete           Delete at the caret
	Ctrl, then V     Paste from the clipboard
	Enter            Commit a Number entry

Panels scroll with the mouse wheel. Application hotkeys go through
ActionRegistry and never fire while text is being edited.

# Widgets

	Text, Button, IconButton, Checkbox
	TextEdit, Number
	ColorPicker
	ShowPopup / Popup, Tabs, RadioSelector
	BeginPanel / EndPanel
	Image
	DrawToasts

# Per-widget State

Text edits, number fields, color pickers, panels and popups keep state
between frames in FrameStores keyed by widget ID. Entries live as long as
the GUI unless WithStateEviction is set.
*/
package gui
