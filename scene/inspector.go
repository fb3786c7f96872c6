package scene

import (
	"slices"

	"github.com/chewxy/math32"

	"github.com/go-theft-auto/titlemaker/gui"
)

// Row heights used by the inspector panels.
const (
	labelHeight  = 19
	fieldHeight  = 26
	buttonHeight = 24
	pickerHeight = 160
	sectionGap   = 8
)

var fillButtons = []gui.RadioButton{
	{Icon: gui.IconWaterdrop, Text: "Solid Color"},
	{Icon: gui.IconWaterdrops, Text: "Gradient"},
}

func easingMenuItems() []gui.MenuItem {
	items := make([]gui.MenuItem, len(EasingMenu))
	for i, name := range EasingMenu {
		items[i] = gui.MenuItem{Text: name}
	}
	return items
}

var easingItems = easingMenuItems()

// OptionsPanel draws the property editor for the selected shape into the
// current layout area.
func OptionsPanel(ctx *gui.Context, doc *Document) {
	ctx.BeginPanel("options_panel", ctx.Peek())
	defer ctx.EndPanel()

	s := doc.Selected()
	if s == nil {
		ctx.Text("No selected element.", ctx.Peek())
		return
	}

	ctx.Text("Position", ctx.CutTop(labelHeight))
	cols := ctx.SliceHorizontal(32, 2)
	ctx.Number("pos_x", cols[0], &s.Bounds.X, -9999, 9999, 1, gui.WithFormat("%.1f"), gui.WithLabel("X"))
	ctx.Number("pos_y", cols[1], &s.Bounds.Y, -9999, 9999, 1, gui.WithFormat("%.1f"), gui.WithLabel("Y"))
	ctx.CutTop(sectionGap)

	ctx.Text("Size", ctx.CutTop(labelHeight))
	cols = ctx.SliceHorizontal(32, 2)
	ctx.Number("siz_x", cols[0], &s.Bounds.W, minShapeSize, 9999, 1, gui.WithFormat("%.1f"), gui.WithLabel("W"))
	ctx.Number("siz_y", cols[1], &s.Bounds.H, minShapeSize, 9999, 1, gui.WithFormat("%.1f"), gui.WithLabel("H"))
	ctx.CutTop(sectionGap)

	ctx.Text("Rotation", ctx.CutTop(labelHeight))
	deg := s.Rotation * 180 / math32.Pi
	if ctx.Number("rotation", ctx.CutTop(fieldHeight), &deg, -360, 360, 1, gui.WithFormat("%.0f deg")) {
		s.Rotation = deg * math32.Pi / 180
	}
	ctx.CutTop(sectionGap)

	if s.Kind == ShapeText {
		textOptions(ctx, s)
	} else {
		fillOptions(ctx, s)
	}
	ctx.CutTop(sectionGap)
}

func colorField(ctx *gui.Context, id string, c *gui.Color, height float32) {
	ctx.ColorPicker(id, ctx.CutTop(height), c)
	ctx.CutTop(2)
	ctx.Number(id+"_a", ctx.CutTop(fieldHeight), &c.A, 0, 1, 0.01, gui.WithLabel("A"))
}

func fillOptions(ctx *gui.Context, s *Shape) {
	ctx.Text("Background Mode", ctx.CutTop(labelHeight))
	sel := int(s.Fill)
	if ctx.RadioSelector("fill_mode", ctx.CutTop(fieldHeight), fillButtons, &sel) {
		s.Fill = FillMode(sel)
	}
	ctx.CutTop(sectionGap)

	if s.Fill == FillSolid {
		ctx.Text("Background Color", ctx.CutTop(labelHeight))
		colorField(ctx, "bg0_color", &s.Colors[0], pickerHeight)
		ctx.CutTop(sectionGap)
	} else {
		ctx.Text("Background", ctx.CutTop(labelHeight))
		colorField(ctx, "bg0_color", &s.Colors[0], 140)
		colorField(ctx, "bg1_color", &s.Colors[1], 140)
		ctx.CutTop(sectionGap)

		ctx.Text("Extents", ctx.CutTop(labelHeight))
		for i, suffix := range []string{"1", "2"} {
			cols := ctx.SliceHorizontal(fieldHeight, 2)
			ctx.Number("bg_ex"+suffix+"_x", cols[0], &s.Stops[i].X, -1, 1, 0.01, gui.WithLabel("X"+suffix))
			ctx.Number("bg_ex"+suffix+"_y", cols[1], &s.Stops[i].Y, -1, 1, 0.01, gui.WithLabel("Y"+suffix))
		}
		ctx.CutTop(sectionGap)
	}

	if s.Kind == ShapeRectangle {
		ctx.Text("Corner Radius", ctx.CutTop(labelHeight))
		ctx.Number("bd_radius", ctx.CutTop(fieldHeight), &s.BorderRadius, 0, 999, 1, gui.WithFormat("%.0f px"))
		ctx.CutTop(sectionGap)
	}

	ctx.Text("Border Color", ctx.CutTop(labelHeight))
	colorField(ctx, "bd_color", &s.BorderColor, pickerHeight)
	ctx.CutTop(sectionGap)

	ctx.Text("Border Width", ctx.CutTop(labelHeight))
	ctx.Number("bd_width", ctx.CutTop(fieldHeight), &s.BorderWidth, 0, 99, 0.1, gui.WithFormat("%.1f px"))
}

func textOptions(ctx *gui.Context, s *Shape) {
	ctx.Text("Color", ctx.CutTop(labelHeight))
	colorField(ctx, "bg0_color", &s.Colors[0], pickerHeight)
	ctx.CutTop(sectionGap)

	ctx.Text("Text", ctx.CutTop(labelHeight))
	ctx.TextEdit("txt_text", ctx.CutTop(fieldHeight), &s.Text, gui.WithPlaceholder("Say something..."))
	ctx.CutTop(5)

	ctx.Number("txt_font_size", ctx.CutTop(fieldHeight), &s.FontSize, 8, 172, 1,
		gui.WithFormat("%.0fpx"), gui.WithLabel("Font Size:"))
}

// AnimationPanel draws the enter and exit animation editors for the
// selected shape into the current layout area.
func AnimationPanel(ctx *gui.Context, doc *Document) {
	ctx.BeginPanel("animation_panel", ctx.Peek())
	defer ctx.EndPanel()

	s := doc.Selected()
	if s == nil {
		ctx.Text("No selected element.", ctx.Peek())
		return
	}

	animationSlot(ctx, s, SlotEnter, "On Enter Animation", "_onenter", "Play Enter")
	animationSlot(ctx, s, SlotExit, "On Exit Animation", "_onexit", "Play Exit")
}

func animationSlot(ctx *gui.Context, s *Shape, slot AnimationSlot, title, suffix, play string) {
	a := s.Animation(slot)
	kind := AnimationNone
	if a != nil {
		kind = a.Kind
	}

	ctx.Text(title, ctx.CutTop(labelHeight))
	if ctx.Button("ani_set"+suffix, kind.String(), ctx.CutTop(buttonHeight), gui.WithIcon(gui.IconList)) {
		ctx.ShowPopup("ani_type" + suffix)
	}
	ctx.CutTop(5)

	if a != nil {
		animationFields(ctx, a, suffix)
		ctx.CutTop(5)
		if ctx.Button("play"+suffix, play, ctx.CutTop(buttonHeight), gui.WithIcon(gui.IconPlay)) {
			if slot == SlotEnter {
				s.TriggerEnter()
			} else {
				s.TriggerExit()
			}
		}
	}
	ctx.CutTop(5)

	sel := int(kind)
	if ctx.Popup("ani_type"+suffix, AnimationKinds, &sel) {
		if k := AnimationKind(sel); k == AnimationNone {
			s.SetAnimation(slot, nil)
		} else if a == nil || a.Kind != k {
			s.SetAnimation(slot, NewAnimation(k))
		}
	}
}

func animationFields(ctx *gui.Context, a *Animation, suffix string) {
	ctx.Number("ani_duration"+suffix, ctx.CutTop(buttonHeight), &a.Duration, 0, 30, 0.01,
		gui.WithFormat("%.2fs"), gui.WithLabel("Duration:"))
	ctx.CutTop(5)
	ctx.Number("ani_delay"+suffix, ctx.CutTop(buttonHeight), &a.Delay, 0, 30, 0.01,
		gui.WithFormat("%.2fs"), gui.WithLabel("Delay:"))
	ctx.CutTop(5)

	easing := max(slices.Index(EasingMenu, a.Easing), 0)
	if ctx.Button("ani_easing_sel"+suffix, EasingMenu[easing], ctx.CutTop(buttonHeight), gui.WithIcon(gui.IconLineChart)) {
		ctx.ShowPopup("ani_easing" + suffix)
	}
	if ctx.Popup("ani_easing"+suffix, easingItems, &easing) {
		a.Easing = EasingMenu[easing]
	}
	ctx.CutTop(5)

	switch a.Kind {
	case AnimationReveal:
		dir := int(a.Direction)
		item := RevealDirections[dir%len(RevealDirections)]
		if ctx.Button("ani_reveal_direction"+suffix, item.Text, ctx.CutTop(buttonHeight), gui.WithIcon(item.Icon)) {
			ctx.ShowPopup("ani_reveal_direction_opts" + suffix)
		}
		if ctx.Popup("ani_reveal_direction_opts"+suffix, RevealDirections, &dir) {
			a.Direction = RevealDirection(dir)
		}
	case AnimationFade:
		ctx.Checkbox("ani_fade_zoom"+suffix, "Zoom", ctx.CutTop(buttonHeight), &a.Zoom)
	}
}
