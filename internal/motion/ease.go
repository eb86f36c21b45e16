package motion

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// DefaultEase is used when no curve is configured.
const DefaultEase = "power3.out"

const (
	springFrames    = 60
	springFrequency = 10.0
	springDamping   = 0.6
	backOvershoot   = 1.70158
)

// EaseFunc maps linear progress in [0,1] to eased progress. f(0) = 0 and f(1) = 1.
type EaseFunc func(t float64) float64

//nolint:gochecknoglobals // Static registry of easing curves, built once.
var eases = buildEases()

// Ease returns the easing curve registered under name. Names are
// case-insensitive; a bare power name ("power2") means its .out variant.
func Ease(name string) (EaseFunc, bool) {
	f, ok := eases[normalize(name)]
	return f, ok
}

// KnownEase reports whether name selects a registered curve.
func KnownEase(name string) bool {
	_, ok := Ease(name)
	return ok
}

// MustEase returns the named curve or the default one.
func MustEase(name string) EaseFunc {
	if f, ok := Ease(name); ok {
		return f
	}
	return eases[DefaultEase]
}

// EaseNames lists the registered curve names in no particular order.
func EaseNames() []string {
	names := make([]string, 0, len(eases))
	for n := range eases {
		names = append(names, n)
	}
	return names
}

func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(n, "power") && !strings.Contains(n, ".") {
		n += ".out"
	}
	return n
}

func buildEases() map[string]EaseFunc {
	linear := func(t float64) float64 { return t }
	m := map[string]EaseFunc{
		"none":   linear,
		"linear": linear,
	}
	// power1 is quadratic, power4 is quintic.
	for i := 1; i <= 4; i++ {
		exp := float64(i + 1)
		prefix := "power" + string(rune('0'+i))
		m[prefix+".in"] = func(t float64) float64 { return math.Pow(t, exp) }
		m[prefix+".out"] = func(t float64) float64 { return 1 - math.Pow(1-t, exp) }
		m[prefix+".inout"] = func(t float64) float64 {
			if t < 0.5 {
				return math.Pow(2*t, exp) / 2
			}
			return 1 - math.Pow(2*(1-t), exp)/2
		}
	}
	m["sine.in"] = func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }
	m["sine.out"] = func(t float64) float64 { return math.Sin(t * math.Pi / 2) }
	m["sine.inout"] = func(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }
	m["expo.in"] = func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	}
	m["expo.out"] = func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	}
	m["expo.inout"] = func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2
		default:
			return (2 - math.Pow(2, -20*t+10)) / 2
		}
	}
	m["back.out"] = func(t float64) float64 {
		c3 := backOvershoot + 1
		return 1 + c3*math.Pow(t-1, 3) + backOvershoot*math.Pow(t-1, 2)
	}
	m["spring"] = springEase()
	return m
}

// springEase samples a damped harmonica spring travelling from 0 to 1 over
// springFrames steps and interpolates between samples.
func springEase() EaseFunc {
	s := harmonica.NewSpring(harmonica.FPS(springFrames), springFrequency, springDamping)
	samples := make([]float64, springFrames+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springFrames; i++ {
		pos, vel = s.Update(pos, vel, 1.0)
		samples[i] = pos
	}
	samples[springFrames] = 1
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		x := t * springFrames
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
