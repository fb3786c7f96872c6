package gui

import (
	"errors"
	"fmt"
)

// IconSpaceWidth is the horizontal room reserved for an icon next to text.
const IconSpaceWidth float32 = 22

const (
	defaultFontSize  float32 = 14
	styleIconSize    float32 = 18
	iconTextSpacing  float32 = 5
	styleTextNudgeY  float32 = 1.5
	styleIconPadding float32 = 4
)

// Element is a style resolved against concrete bounds.
type Element struct {
	Background *Paint
	Text       *Paint
	Border     *Paint

	BorderWidth  float32
	FontSize     float32
	AlignX       Align // zero when the style leaves it unset
	AlignY       Align
	BorderRadius [4]float32 // tl, tr, br, bl
	Padding      [4]float32 // left, right, top, bottom

	// Bounds is the usable area inside the padding, relative to the
	// element's top-left corner.
	Bounds Rect
}

// TextColor returns the text paint as a single color, white when unset.
func (e Element) TextColor() Color {
	if e.Text == nil {
		return White
	}
	if e.Text.Kind == PaintSolid {
		return e.Text.Color
	}
	return e.Text.Inner
}

// Rounded reports whether any corner has a radius.
func (e Element) Rounded() bool {
	r := e.BorderRadius
	return r[0] > 0 || r[1] > 0 || r[2] > 0 || r[3] > 0
}

// propertyRule validates a pack at load time and applies it to an Element.
type propertyRule struct {
	validate func(s *StyleSheet, pack PropertyPack) error
	apply    func(s *StyleSheet, el *Element, pack PropertyPack)
}

var errKind = errors.New("wrong value kind")

func kinds(allowed ...ValueKind) func(*StyleSheet, PropertyPack) error {
	return func(s *StyleSheet, pack PropertyPack) error {
		if pack.Count() != 1 {
			return fmt.Errorf("expected 1 value, got %d", pack.Count())
		}
		for _, k := range allowed {
			if pack[0].Kind == k {
				if k == ValueFunction {
					_, err := s.funcs[pack[0].Text](pack[0].Args, Rect{W: 1, H: 1})
					return err
				}
				return nil
			}
		}
		return fmt.Errorf("%w: %s", errKind, pack[0].Kind)
	}
}

func numbers(counts ...int) func(*StyleSheet, PropertyPack) error {
	return func(_ *StyleSheet, pack PropertyPack) error {
		n := pack.Count()
		ok := false
		for _, c := range counts {
			if n == c {
				ok = true
			}
		}
		if !ok {
			return fmt.Errorf("expected %v values, got %d", counts, n)
		}
		for i := 0; i < n; i++ {
			if pack[i].Kind != ValueNumber {
				return fmt.Errorf("%w: value %d is a %s", errKind, i+1, pack[i].Kind)
			}
		}
		return nil
	}
}

func enum(values ...string) func(*StyleSheet, PropertyPack) error {
	check := kinds(ValueEnum)
	return func(s *StyleSheet, pack PropertyPack) error {
		if err := check(s, pack); err != nil {
			return err
		}
		for _, v := range values {
			if pack[0].Text == v {
				return nil
			}
		}
		return fmt.Errorf("%q is not one of %v", pack[0].Text, values)
	}
}

func paintOf(s *StyleSheet, v Value, bounds Rect) *Paint {
	switch v.Kind {
	case ValueColor:
		p := SolidPaint(v.Color)
		return &p
	case ValueFunction:
		fn, ok := s.funcs[v.Text]
		if !ok {
			return nil
		}
		p, err := fn(v.Args, bounds)
		if err != nil {
			guiLogger.Debug("style function failed", "func", v.Text, "error", err)
			return nil
		}
		return &p
	}
	return nil
}

// fill copies the pack into four slots, repeating a single value.
func fill(pack PropertyPack) [4]float32 {
	if pack.Count() == 1 {
		v := pack[0].Number
		return [4]float32{v, v, v, v}
	}
	return [4]float32{pack[0].Number, pack[1].Number, pack[2].Number, pack[3].Number}
}

var propertyRules = map[string]propertyRule{
	"color": {
		validate: kinds(ValueColor),
		apply: func(s *StyleSheet, el *Element, pack PropertyPack) {
			el.Text = paintOf(s, pack[0], el.Bounds)
		},
	},
	"background": {
		validate: kinds(ValueColor, ValueFunction),
		apply: func(s *StyleSheet, el *Element, pack PropertyPack) {
			el.Background = paintOf(s, pack[0], el.Bounds)
		},
	},
	"border-radius": {
		validate: numbers(1, 4),
		apply: func(_ *StyleSheet, el *Element, pack PropertyPack) {
			el.BorderRadius = fill(pack)
		},
	},
	"border-width": {
		validate: numbers(1),
		apply: func(_ *StyleSheet, el *Element, pack PropertyPack) {
			el.BorderWidth = pack[0].Number
		},
	},
	"border-color": {
		validate: kinds(ValueColor),
		apply: func(s *StyleSheet, el *Element, pack PropertyPack) {
			el.Border = paintOf(s, pack[0], el.Bounds)
		},
	},
	"font-size": {
		validate: numbers(1),
		apply: func(_ *StyleSheet, el *Element, pack PropertyPack) {
			el.FontSize = pack[0].Number
		},
	},
	"text-align": {
		validate: enum("left", "center", "right"),
		apply: func(_ *StyleSheet, el *Element, pack PropertyPack) {
			switch pack[0].Text {
			case "left":
				el.AlignX = AlignLeft
			case "center":
				el.AlignX = AlignCenter
			case "right":
				el.AlignX = AlignRight
			}
		},
	},
	"vertical-align": {
		validate: enum("top", "middle", "bottom"),
		apply: func(_ *StyleSheet, el *Element, pack PropertyPack) {
			switch pack[0].Text {
			case "top":
				el.AlignY = AlignTop
			case "middle":
				el.AlignY = AlignMiddle
			case "bottom":
				el.AlignY = AlignBottom
			}
		},
	},
	"padding": {
		validate: numbers(1, 4),
		apply: func(_ *StyleSheet, el *Element, pack PropertyPack) {
			el.Padding = fill(pack)
		},
	},
}

// boundsDependent reports whether resolving the style needs the bounds.
func boundsDependent(style Style) bool {
	for _, pack := range style {
		for _, v := range pack {
			if v.Kind == ValueFunction {
				return true
			}
		}
	}
	return false
}

// Element resolves the named style for bounds. It returns the element
// and bounds shrunk by the style's padding. Unknown styles resolve to a
// plain element so a typo never takes the UI down.
func (s *StyleSheet) Element(name string, bounds Rect) (Element, Rect) {
	local := Rect{W: bounds.W, H: bounds.H}
	el := Element{FontSize: defaultFontSize, Bounds: local}

	style, ok := s.styles[name]
	if !ok {
		return el, bounds
	}

	cacheable := s.cache != nil && !boundsDependent(style)
	if c, hit := s.cache[name]; cacheable && hit && c.version == s.version {
		el = c.element
	} else {
		// Functions see the full bounds; padding applies afterwards.
		for prop, pack := range style {
			if rule, ok := propertyRules[prop]; ok {
				rule.apply(s, &el, pack)
			}
		}
		if cacheable {
			s.cache[name] = cachedElement{version: s.version, element: el}
		}
	}
	el.Bounds = el.padded(local)
	return el, el.padded(bounds)
}

func (e Element) padded(r Rect) Rect {
	r.X += e.Padding[0]
	r.W -= e.Padding[0] + e.Padding[1]
	r.Y += e.Padding[2]
	r.H -= e.Padding[2] + e.Padding[3]
	return r
}

// FontSetup resolves the style and applies its text size and alignment
// to the painter. The caller draws text with Element.TextColor.
func (s *StyleSheet) FontSetup(p *Painter, name string, bounds Rect) (Element, Rect) {
	el, inner := s.Element(name, bounds)
	if align := el.AlignX | el.AlignY; align != 0 {
		p.SetTextAlign(align)
	}
	p.SetFontSize(el.FontSize)
	return el, inner
}

// CalculateBounds measures the width and height text plus icon would take
// in the named style, without drawing.
func (s *StyleSheet) CalculateBounds(p *Painter, name, text string, icon Icon) Vec2 {
	p.Save()
	defer p.Restore()

	s.FontSetup(p, name, Rect{W: 1000, H: 1000})
	size := p.TextBounds(text)
	if icon != NoIcon {
		p.SetTextAlign(AlignTop | AlignLeft)
		p.SetFontSize(styleIconSize)
		ib := p.TextBounds(icon.String())
		size.X += ib.X + iconTextSpacing
		size.Y = maxf(size.Y, ib.Y)
	}
	return size
}

// Draw paints the named style into bounds: background, border, optional
// icon and text. It returns the resolved element.
func (s *StyleSheet) Draw(p *Painter, name string, bounds Rect, text string, icon Icon) Element {
	el, _ := s.Element(name, bounds)
	inner := el.Bounds

	p.Save()
	defer p.Restore()
	p.Translate(bounds.X, bounds.Y)
	p.SetFontSize(el.FontSize)

	shape := Rect{W: bounds.W, H: bounds.H}
	if el.Background != nil {
		if el.Rounded() {
			p.FillRoundedRect(shape, el.BorderRadius, *el.Background)
		} else {
			p.FillRect(shape, *el.Background)
		}
	}
	if el.Border != nil {
		w := el.BorderWidth
		if w <= 0 {
			w = 1
		}
		if el.Rounded() {
			p.StrokeRoundedRect(shape, el.BorderRadius, w, *el.Border)
		} else {
			p.StrokeRect(shape, w, *el.Border)
		}
	}

	color := el.TextColor()
	var offX, offY, iconOffX float32
	if icon != NoIcon {
		total := s.CalculateBounds(p, name, text, icon)

		p.Save()
		p.SetFontSize(styleIconSize)
		glyph := icon.String()
		iconW := p.TextBounds(glyph).X
		switch el.AlignX {
		case AlignLeft:
			offX = iconW
		case AlignCenter:
			offX += iconW / 4
			iconOffX = inner.W/2 - total.X/2
		case AlignRight:
			iconOffX = inner.W - total.X - el.Padding[1]
		}
		offX += styleIconPadding
		p.SetTextAlign(AlignMiddle | AlignLeft)
		p.Text(inner.X+iconOffX, inner.H/2+styleTextNudgeY, glyph, color)
		p.Restore()
	}

	if text != "" {
		p.SetFontSize(el.FontSize)
		if align := el.AlignX | el.AlignY; align != 0 {
			p.SetTextAlign(align)
		}
		switch el.AlignY {
		case AlignMiddle:
			offY = inner.H/2 + styleTextNudgeY
		case AlignBottom:
			offY = inner.H
		}
		p.TextBox(inner.X+offX, inner.Y+offY, inner.W, text, color)
	}
	return el
}
