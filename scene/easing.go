package scene

import "github.com/chewxy/math32"

// Easing remaps linear animation progress. Inputs are in [0, 1]; elastic,
// back and bounce curves overshoot that range on output.
type Easing func(t float32) float32

const (
	// Penner is the overshoot amount used by the back and elastic curves.
	Penner float32 = 1.70158

	epsilon float32 = 1e-5
)

func Step(t float32) float32 {
	if t >= 0.5 {
		return 1
	}
	return 0
}

// SmoothStep is the Hermite curve between edges 0 and 1.
func SmoothStep(t float32) float32 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

func Linear(t float32) float32 { return t }

func InQuad(t float32) float32  { return t * t }
func OutQuad(t float32) float32 { return t * (2 - t) }
func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func InCubic(t float32) float32 { return t * t * t }
func OutCubic(t float32) float32 {
	t--
	return t*t*t + 1
}
func InOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	k := 2*t - 2
	return (t-1)*k*k + 1
}

func InQuart(t float32) float32 { return t * t * t * t }
func OutQuart(t float32) float32 {
	t--
	return 1 - t*t*t*t
}
func InOutQuart(t float32) float32 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	t--
	return 1 - 8*t*t*t*t
}

func InQuint(t float32) float32 { return t * t * t * t * t }
func OutQuint(t float32) float32 {
	t--
	return 1 + t*t*t*t*t
}
func InOutQuint(t float32) float32 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	t--
	return 1 + 16*t*t*t*t*t
}

func InSine(t float32) float32    { return 1 - math32.Cos(t*math32.Pi/2) }
func OutSine(t float32) float32   { return math32.Sin(t * math32.Pi / 2) }
func InOutSine(t float32) float32 { return -0.5 * (math32.Cos(math32.Pi*t) - 1) }

func InExpo(t float32) float32 {
	if t <= epsilon {
		return 0
	}
	return math32.Pow(2, 10*(t-1))
}

func OutExpo(t float32) float32 {
	if t >= 1-epsilon {
		return 1
	}
	return 1 - math32.Pow(2, -10*t)
}

func InOutExpo(t float32) float32 {
	switch {
	case t <= epsilon:
		return 0
	case t >= 1-epsilon:
		return 1
	}
	t *= 2
	if t < 1 {
		return 0.5 * math32.Pow(2, 10*(t-1))
	}
	return 0.5 * (2 - math32.Pow(2, -10*(t-1)))
}

func InCirc(t float32) float32 { return 1 - math32.Sqrt(1-t*t) }
func OutCirc(t float32) float32 {
	t--
	return math32.Sqrt(1 - t*t)
}
func InOutCirc(t float32) float32 {
	t *= 2
	if t < 1 {
		return -0.5 * (math32.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math32.Sqrt(1-t*t) + 1)
}

// elasticPhase is the phase shift for an amplitude of 1 and period p.
func elasticPhase(p float32) float32 {
	return p / (2 * math32.Pi) * math32.Asin(1)
}

func InElastic(t float32) float32 {
	if t <= epsilon {
		return 0
	}
	if t >= 1-epsilon {
		return 1
	}
	const p = 0.3
	s := elasticPhase(p)
	t--
	return -(math32.Pow(2, 10*t) * math32.Sin((t-s)*(2*math32.Pi)/p))
}

func OutElastic(t float32) float32 {
	if t <= epsilon {
		return 0
	}
	if t >= 1-epsilon {
		return 1
	}
	const p = 0.3
	s := elasticPhase(p)
	return math32.Pow(2, -10*t)*math32.Sin((t-s)*(2*math32.Pi)/p) + 1
}

func InOutElastic(t float32) float32 {
	if t <= epsilon {
		return 0
	}
	t *= 2
	if t >= 2-epsilon {
		return 1
	}
	const p = 0.3 * 1.5
	s := elasticPhase(p)
	t--
	if t < 0 {
		return -0.5 * (math32.Pow(2, 10*t) * math32.Sin((t-s)*(2*math32.Pi)/p))
	}
	return math32.Pow(2, -10*t)*math32.Sin((t-s)*(2*math32.Pi)/p)*0.5 + 1
}

func InBack(t float32) float32 { return t * t * ((Penner+1)*t - Penner) }
func OutBack(t float32) float32 {
	t--
	return t*t*((Penner+1)*t+Penner) + 1
}
func InOutBack(t float32) float32 {
	s := Penner * 1.525
	t *= 2
	if t < 1 {
		return 0.5 * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return 0.5 * (t*t*((s+1)*t+s) + 2)
}

func OutBounce(t float32) float32 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	}
	t -= 2.625 / d
	return n*t*t + 0.984375
}

func InBounce(t float32) float32 { return 1 - OutBounce(1-t) }
func InOutBounce(t float32) float32 {
	if t < 0.5 {
		return InBounce(t*2) * 0.5
	}
	return OutBounce(t*2-1)*0.5 + 0.5
}

// easingCatalog lists every curve under its canonical name.
var easingCatalog = []struct {
	name string
	fn   Easing
}{
	{"Step", Step},
	{"Smooth Step", SmoothStep},
	{"Linear", Linear},
	{"In Quad", InQuad},
	{"Out Quad", OutQuad},
	{"In/Out Quad", InOutQuad},
	{"In Cubic", InCubic},
	{"Out Cubic", OutCubic},
	{"In/Out Cubic", InOutCubic},
	{"In Quart", InQuart},
	{"Out Quart", OutQuart},
	{"In/Out Quart", InOutQuart},
	{"In Quint", InQuint},
	{"Out Quint", OutQuint},
	{"In/Out Quint", InOutQuint},
	{"In Sine", InSine},
	{"Out Sine", OutSine},
	{"In/Out Sine", InOutSine},
	{"In Expo", InExpo},
	{"Out Expo", OutExpo},
	{"In/Out Expo", InOutExpo},
	{"In Circ", InCirc},
	{"Out Circ", OutCirc},
	{"In/Out Circ", InOutCirc},
	{"In Elastic", InElastic},
	{"Out Elastic", OutElastic},
	{"In/Out Elastic", InOutElastic},
	{"In Back", InBack},
	{"Out Back", OutBack},
	{"In/Out Back", InOutBack},
	{"In Bounce", InBounce},
	{"Out Bounce", OutBounce},
	{"In/Out Bounce", InOutBounce},
}

// EasingMenu is the short list offered by the animation inspector.
// "Bounce" is an alias for "Out Bounce".
var EasingMenu = []string{
	"Linear",
	"In Cubic",
	"Out Cubic",
	"In/Out Cubic",
	"In Quad",
	"Out Quad",
	"In/Out Quad",
	"In Elastic",
	"Out Elastic",
	"Bounce",
}

// EasingByName looks a curve up by its catalog name. The empty name
// resolves to Linear.
func EasingByName(name string) (Easing, bool) {
	switch name {
	case "":
		return Linear, true
	case "Bounce":
		return OutBounce, true
	}
	for _, e := range easingCatalog {
		if e.name == name {
			return e.fn, true
		}
	}
	return nil, false
}

// EasingNames returns every catalog name in display order.
func EasingNames() []string {
	names := make([]string, len(easingCatalog))
	for i, e := range easingCatalog {
		names[i] = e.name
	}
	return names
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
