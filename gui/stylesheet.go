package gui

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Errors returned when loading a stylesheet. They are wrapped with the
// line and column of the offending token.
var (
	ErrStyleSyntax     = errors.New("stylesheet syntax error")
	ErrUnknownProperty = errors.New("unknown style property")
	ErrPropertyValue   = errors.New("invalid style property value")
	ErrUnknownFunction = errors.New("unknown style function")
	ErrUnknownParent   = errors.New("unknown parent style")
)

//go:embed default.sty
var defaultStyleSheet string

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueNumber
	ValueColor
	ValueString
	ValueEnum
	ValueFunction
)

func (k ValueKind) String() string {
	switch k {
	case ValueNumber:
		return "number"
	case ValueColor:
		return "color"
	case ValueString:
		return "string"
	case ValueEnum:
		return "enum"
	case ValueFunction:
		return "function"
	}
	return "none"
}

// Value is one typed value of a style property. Text holds the string,
// the enum identifier, or the function name; Args holds function
// parameters.
type Value struct {
	Kind   ValueKind
	Number float32
	Color  Color
	Text   string
	Args   []Value
}

// PropertyPack holds up to four values given to one property.
type PropertyPack [4]Value

// Count returns the number of non-empty slots.
func (p PropertyPack) Count() int {
	n := 0
	for _, v := range p {
		if v.Kind != ValueNone {
			n++
		}
	}
	return n
}

// Style maps property names to their values.
type Style map[string]PropertyPack

// StyleFunc computes a paint from function arguments and the element
// bounds (local, origin at the element's top-left).
type StyleFunc func(args []Value, bounds Rect) (Paint, error)

// StyleSheet holds named styles parsed from stylesheet text.
//
// Grammar:
//
//	sheet    := block*
//	block    := ident '{' (inherit | property)* '}'
//	inherit  := '@' ident ';'
//	property := ident ':' value{1,4} ';'
//	value    := number | '#' RRGGBB | rgb() | rgba() | hsl() | hsla()
//	          | string | ident | ident '(' params ')'
//
// '@name;' copies every property of an already defined style; later
// properties override it. Redefining a style replaces it.
type StyleSheet struct {
	styles  map[string]Style
	funcs   map[string]StyleFunc
	version uint64
	cache   map[string]cachedElement
}

type cachedElement struct {
	version uint64
	element Element
}

// NewStyleSheet returns an empty sheet with the built-in functions.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{
		styles: make(map[string]Style),
		funcs: map[string]StyleFunc{
			"gradient": styleGradient,
		},
	}
}

// ParseStyleSheet parses src into a new sheet.
func ParseStyleSheet(src string) (*StyleSheet, error) {
	s := NewStyleSheet()
	if err := s.Parse(src); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadStyleSheet reads and parses a stylesheet file.
func LoadStyleSheet(path string) (*StyleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	s, err := ParseStyleSheet(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DefaultStyleSheet returns a sheet parsed from the embedded default theme.
func DefaultStyleSheet() *StyleSheet {
	s, err := ParseStyleSheet(defaultStyleSheet)
	if err != nil {
		panic(fmt.Sprintf("gui: embedded stylesheet: %v", err))
	}
	return s
}

// RegisterFunction makes fn callable from property values as name(...).
// Register functions before parsing sheets that use them.
func (s *StyleSheet) RegisterFunction(name string, fn StyleFunc) {
	s.funcs[strings.ToLower(name)] = fn
}

// Parse adds the styles in src to the sheet. Either every block is
// accepted or, on error, the sheet is left unchanged.
func (s *StyleSheet) Parse(src string) error {
	p := newStyleParser(s, src)
	staged, err := p.parse()
	if err != nil {
		return err
	}
	for name, style := range staged {
		s.styles[name] = style
	}
	s.version++
	guiLogger.Debug("stylesheet parsed", "styles", len(staged), "version", s.version)
	return nil
}

// Style returns the named style.
func (s *StyleSheet) Style(name string) (Style, bool) {
	st, ok := s.styles[name]
	return st, ok
}

// Len returns the number of defined styles.
func (s *StyleSheet) Len() int { return len(s.styles) }

// Version increases every time Parse succeeds.
func (s *StyleSheet) Version() uint64 { return s.version }

// EnableCache memoises resolved elements per style name and sheet
// version. Styles whose values depend on bounds are never cached.
func (s *StyleSheet) EnableCache() {
	if s.cache == nil {
		s.cache = make(map[string]cachedElement)
	}
}

// styleGradient implements gradient(sx, sy, ex, ey, colorA, colorB) with
// endpoints given as fractions of the element size.
func styleGradient(args []Value, bounds Rect) (Paint, error) {
	if len(args) != 6 {
		return Paint{}, fmt.Errorf("gradient takes 6 arguments, got %d: %w", len(args), ErrPropertyValue)
	}
	for i := 0; i < 4; i++ {
		if args[i].Kind != ValueNumber {
			return Paint{}, fmt.Errorf("gradient argument %d must be a number: %w", i+1, ErrPropertyValue)
		}
	}
	for i := 4; i < 6; i++ {
		if args[i].Kind != ValueColor {
			return Paint{}, fmt.Errorf("gradient argument %d must be a color: %w", i+1, ErrPropertyValue)
		}
	}
	start := Vec2{X: args[0].Number * bounds.W, Y: args[1].Number * bounds.H}
	end := Vec2{X: args[2].Number * bounds.W, Y: args[3].Number * bounds.H}
	return LinearGradient(start, end, args[4].Color, args[5].Color), nil
}

// styleParser is a recursive-descent parser over css lexer tokens.
type styleParser struct {
	sheet *StyleSheet
	src   string
	in    *parse.Input
	lx    *css.Lexer

	tt    css.TokenType
	data  []byte
	start int
}

func newStyleParser(sheet *StyleSheet, src string) *styleParser {
	in := parse.NewInputString(src)
	p := &styleParser{sheet: sheet, src: src, in: in, lx: css.NewLexer(in)}
	p.next()
	return p
}

// next advances to the next significant token.
func (p *styleParser) next() {
	for {
		p.start = p.in.Offset()
		p.tt, p.data = p.lx.Next()
		if p.tt != css.WhitespaceToken && p.tt != css.CommentToken {
			return
		}
	}
}

func (p *styleParser) eof() bool {
	return p.tt == css.ErrorToken && p.lx.Err() == io.EOF
}

func (p *styleParser) errorf(sentinel error, format string, args ...any) error {
	line, col, _ := parse.Position(strings.NewReader(p.src), p.start)
	return fmt.Errorf("%d:%d: %s: %w", line, col, fmt.Sprintf(format, args...), sentinel)
}

func (p *styleParser) expect(tt css.TokenType, what string) error {
	if p.tt != tt {
		return p.errorf(ErrStyleSyntax, "expected %s, got %q", what, p.data)
	}
	p.next()
	return nil
}

func (p *styleParser) parse() (map[string]Style, error) {
	staged := make(map[string]Style)
	for !p.eof() {
		if p.tt != css.IdentToken {
			if p.tt == css.ErrorToken {
				return nil, p.errorf(ErrStyleSyntax, "%v", p.lx.Err())
			}
			return nil, p.errorf(ErrStyleSyntax, "expected style name, got %q", p.data)
		}
		name := string(p.data)
		p.next()
		if err := p.expect(css.LeftBraceToken, `"{"`); err != nil {
			return nil, err
		}
		style, err := p.block(staged)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		staged[name] = style
	}
	return staged, nil
}

func (p *styleParser) block(staged map[string]Style) (Style, error) {
	style := make(Style)
	for p.tt != css.RightBraceToken {
		switch p.tt {
		case css.AtKeywordToken:
			parent := string(p.data[1:])
			at := p.start
			p.next()
			if err := p.expect(css.SemicolonToken, `";"`); err != nil {
				return nil, err
			}
			inherited, ok := staged[parent]
			if !ok {
				inherited, ok = p.sheet.styles[parent]
			}
			if !ok {
				p.start = at
				return nil, p.errorf(ErrUnknownParent, "%q", parent)
			}
			for k, v := range inherited {
				style[k] = v
			}
		case css.IdentToken:
			prop := strings.ToLower(string(p.data))
			rule, ok := propertyRules[prop]
			if !ok {
				return nil, p.errorf(ErrUnknownProperty, "%q", prop)
			}
			p.next()
			if err := p.expect(css.ColonToken, `":"`); err != nil {
				return nil, err
			}
			start := p.start
			pack, err := p.pack()
			if err != nil {
				return nil, err
			}
			if err := rule.validate(p.sheet, pack); err != nil {
				p.start = start
				return nil, p.errorf(ErrPropertyValue, "%s: %v", prop, err)
			}
			if err := p.expect(css.SemicolonToken, `";"`); err != nil {
				return nil, err
			}
			style[prop] = pack
		case css.ErrorToken:
			return nil, p.errorf(ErrStyleSyntax, `unexpected end of input, expected "}"`)
		default:
			return nil, p.errorf(ErrStyleSyntax, "expected property name, got %q", p.data)
		}
	}
	p.next()
	return style, nil
}

// pack reads up to four values terminated by ';'.
func (p *styleParser) pack() (PropertyPack, error) {
	var pack PropertyPack
	i := 0
	for p.tt != css.SemicolonToken {
		if i == len(pack) {
			return pack, p.errorf(ErrStyleSyntax, "more than %d values", len(pack))
		}
		v, err := p.value(true)
		if err != nil {
			return pack, err
		}
		pack[i] = v
		i++
	}
	if i == 0 {
		return pack, p.errorf(ErrStyleSyntax, "missing value")
	}
	return pack, nil
}

// value reads a single value. Function calls are only allowed at the top
// level of a property, not inside function parameters.
func (p *styleParser) value(allowFunc bool) (Value, error) {
	switch p.tt {
	case css.NumberToken:
		return p.number(p.data)
	case css.DimensionToken:
		num := strings.TrimSuffix(string(p.data), "px")
		if num == string(p.data) {
			return Value{}, p.errorf(ErrStyleSyntax, "unsupported unit in %q", p.data)
		}
		return p.number([]byte(num))
	case css.HashToken:
		c, err := parseHexColor(string(p.data[1:]))
		if err != nil {
			return Value{}, p.errorf(ErrStyleSyntax, "%v", err)
		}
		p.next()
		return Value{Kind: ValueColor, Color: c}, nil
	case css.StringToken:
		raw := string(p.data)
		p.next()
		return Value{Kind: ValueString, Text: raw[1 : len(raw)-1]}, nil
	case css.IdentToken:
		id := strings.ToLower(string(p.data))
		p.next()
		return Value{Kind: ValueEnum, Text: id}, nil
	case css.FunctionToken:
		name := strings.ToLower(strings.TrimSuffix(string(p.data), "("))
		switch name {
		case "rgb", "rgba", "hsl", "hsla":
			return p.colorFunc(name)
		}
		if !allowFunc {
			return Value{}, p.errorf(ErrStyleSyntax, "nested function %q", name)
		}
		if _, ok := p.sheet.funcs[name]; !ok {
			return Value{}, p.errorf(ErrUnknownFunction, "%q", name)
		}
		p.next()
		args, err := p.args()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValueFunction, Text: name, Args: args}, nil
	}
	return Value{}, p.errorf(ErrStyleSyntax, "invalid value %q", p.data)
}

func (p *styleParser) number(text []byte) (Value, error) {
	f, err := strconv.ParseFloat(string(text), 32)
	if err != nil {
		return Value{}, p.errorf(ErrStyleSyntax, "invalid number %q", text)
	}
	p.next()
	return Value{Kind: ValueNumber, Number: float32(f)}, nil
}

// args reads comma separated parameters up to the closing parenthesis.
func (p *styleParser) args() ([]Value, error) {
	var args []Value
	for p.tt != css.RightParenthesisToken {
		if len(args) > 0 {
			if err := p.expect(css.CommaToken, `","`); err != nil {
				return nil, err
			}
		}
		v, err := p.value(false)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	p.next()
	return args, nil
}

func (p *styleParser) colorFunc(name string) (Value, error) {
	p.next()
	args, err := p.args()
	if err != nil {
		return Value{}, err
	}
	want := 3
	if strings.HasSuffix(name, "a") {
		want = 4
	}
	if len(args) != want {
		return Value{}, p.errorf(ErrStyleSyntax, "%s() takes %d numbers, got %d", name, want, len(args))
	}
	n := make([]float32, want)
	for i, a := range args {
		if a.Kind != ValueNumber {
			return Value{}, p.errorf(ErrStyleSyntax, "%s() argument %d must be a number", name, i+1)
		}
		n[i] = a.Number
	}
	alpha := float32(1)
	if want == 4 {
		alpha = n[3]
	}
	var c Color
	switch name {
	case "rgb", "rgba":
		c = Color{R: n[0] / 255, G: n[1] / 255, B: n[2] / 255, A: alpha}
	default:
		c = HSL(n[0], n[1], n[2], alpha)
	}
	return Value{Kind: ValueColor, Color: c}, nil
}

func parseHexColor(hex string) (Color, error) {
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color #%s must have 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color #%s", hex)
	}
	return RGB8(uint8(v>>16), uint8(v>>8), uint8(v), 1), nil
}
