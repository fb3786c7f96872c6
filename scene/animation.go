package scene

import "github.com/go-theft-auto/titlemaker/gui"

// AnimationKind selects the render effect an animation drives.
type AnimationKind uint8

const (
	AnimationNone AnimationKind = iota
	AnimationFade
	AnimationReveal
)

// AnimationKinds is the type menu shown in the inspector, indexed by kind.
var AnimationKinds = []gui.MenuItem{
	{Text: "None"},
	{Text: "Fade"},
	{Text: "Reveal"},
}

func (k AnimationKind) String() string {
	if int(k) < len(AnimationKinds) {
		return AnimationKinds[k].Text
	}
	return "Unknown"
}

// RevealDirection is the edge a reveal sweeps in from.
type RevealDirection uint8

const (
	FromLeft RevealDirection = iota
	FromRight
	FromTop
	FromBottom
)

// RevealDirections is the direction menu, indexed by direction.
var RevealDirections = []gui.MenuItem{
	{Icon: gui.IconArrowRight2, Text: "From Left"},
	{Icon: gui.IconArrowLeft2, Text: "From Right"},
	{Icon: gui.IconArrowDown2, Text: "From Top"},
	{Icon: gui.IconArrowUp2, Text: "From Bottom"},
}

func (d RevealDirection) String() string {
	if int(d) < len(RevealDirections) {
		return RevealDirections[d].Text
	}
	return "Unknown"
}

// AnimationState is the playback state of an Animation.
type AnimationState uint8

const (
	AnimIdle AnimationState = iota
	AnimDelaying
	AnimRunning
	AnimFinished
)

func (s AnimationState) String() string {
	switch s {
	case AnimDelaying:
		return "delaying"
	case AnimRunning:
		return "running"
	case AnimFinished:
		return "finished"
	}
	return "idle"
}

// DefaultDuration is the duration given to new animations, in seconds.
const DefaultDuration float32 = 1.5

// Animation is a timed render effect applied around a shape's draw call.
// The exported fields are its saved configuration; playback state lives
// in the unexported ones.
//
// Playback goes Idle -> Delaying -> Running -> Finished. Callers Reset
// back to Idle before playing again.
type Animation struct {
	Kind      AnimationKind   `toml:"kind" yaml:"kind"`
	Delay     float32         `toml:"delay" yaml:"delay"`
	Duration  float32         `toml:"duration" yaml:"duration"`
	Easing    string          `toml:"easing,omitempty" yaml:"easing,omitempty"`
	Direction RevealDirection `toml:"direction,omitempty" yaml:"direction,omitempty"`
	Zoom      bool            `toml:"zoom,omitempty" yaml:"zoom,omitempty"`

	state    AnimationState
	target   *Shape
	bounds   gui.Rect
	ease     Easing
	progress float32
}

// NewAnimation returns an idle animation of kind with the default duration.
func NewAnimation(kind AnimationKind) *Animation {
	return &Animation{Kind: kind, Duration: DefaultDuration}
}

// Play binds the animation to target and starts the delay. It does
// nothing while the animation is already delaying or running.
func (a *Animation) Play(target *Shape) {
	if a.state == AnimDelaying || a.state == AnimRunning {
		return
	}
	a.state = AnimDelaying
	a.target = target
	a.progress = 0
	a.ease = nil
	if a.Easing != "" {
		if fn, ok := EasingByName(a.Easing); ok {
			a.ease = fn
		} else {
			logger().Warn("unknown easing, using linear", "easing", a.Easing)
		}
	}
	a.setup()
}

// Update advances playback to globalTime, the seconds since Play, and
// applies the effect to p. forward false plays the effect backwards,
// as exit animations do. It returns the value handed to the effect.
//
// The update that ends the delay also runs the first step, so progress
// is never a frame behind the clock.
func (a *Animation) Update(p *gui.Painter, globalTime float32, forward bool) float32 {
	if a.state == AnimDelaying {
		if globalTime < a.Delay {
			v := float32(0)
			if !forward {
				v = 1
			}
			a.run(p, v)
			return v
		}
		a.state = AnimRunning
	}
	if a.state != AnimRunning {
		return a.progress
	}

	t := float32(1)
	if a.Duration > 0 {
		t = clamp01((globalTime - a.Delay) / a.Duration)
	}
	a.progress = t

	v := t
	if !forward {
		v = 1 - t
	}
	if a.ease != nil {
		v = a.ease(v)
	}
	a.run(p, v)

	if t >= 1 {
		a.state = AnimFinished
	}
	return v
}

// Finished reports whether the running phase has completed.
func (a *Animation) Finished() bool { return a.state == AnimFinished }

// State returns the playback state.
func (a *Animation) State() AnimationState { return a.state }

// Progress returns the linear progress of the last running update,
// before direction and easing are applied.
func (a *Animation) Progress() float32 { return a.progress }

// Reset returns the animation to Idle.
func (a *Animation) Reset() {
	a.state = AnimIdle
}

func (a *Animation) setup() {
	switch a.Kind {
	case AnimationReveal:
		if a.target != nil {
			a.bounds = a.target.Bounds
		}
	}
}

func (a *Animation) run(p *gui.Painter, t float32) {
	if p == nil {
		return
	}
	switch a.Kind {
	case AnimationFade:
		runFade(a, p, t)
	case AnimationReveal:
		runReveal(a, p, t)
	}
}

// revealRect returns the visible part of b at progress t.
func revealRect(b gui.Rect, dir RevealDirection, t float32) gui.Rect {
	switch dir {
	case FromRight:
		return gui.Rect{X: b.X + b.W*(1-t), Y: b.Y, W: b.W * t, H: b.H}
	case FromTop:
		return gui.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H * t}
	case FromBottom:
		return gui.Rect{X: b.X, Y: b.Y + b.H*(1-t), W: b.W, H: b.H * t}
	}
	return gui.Rect{X: b.X, Y: b.Y, W: b.W * t, H: b.H}
}

func runReveal(a *Animation, p *gui.Painter, t float32) {
	r := revealRect(a.bounds, a.Direction, t)
	p.IntersectScissor(r.X, r.Y, r.W, r.H)
}

// fadeZoom is how much larger a zooming fade starts.
const fadeZoom = 0.25

func runFade(a *Animation, p *gui.Painter, t float32) {
	p.SetGlobalAlpha(t)
	if !a.Zoom || a.target == nil {
		return
	}
	s := 1 + (1-t)*fadeZoom
	c := a.target.Bounds.Center()
	p.Translate(c.X, c.Y)
	p.Scale(s, s)
	p.Translate(-c.X, -c.Y)
}
