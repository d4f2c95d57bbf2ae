package game

import (
	"math"
	"reflect"
	"testing"

	"emojidj/internal/config"
)

func TestFrameDeterminism(t *testing.T) {
	for _, tm := range []float64{0, 0.5, 1.234, 100.7} {
		a := ComputeFrame(tm, true, 192, 200)
		b := ComputeFrame(tm, true, 192, 200)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("frames at t=%v differ between evaluations", tm)
		}
	}
}

func TestFrameFXOff(t *testing.T) {
	f := ComputeFrame(5.3, false, 192, 200)
	if f.BackgroundHue != 0 || f.Bob != 0 || f.EmojiHue != 0 {
		t.Fatalf("FX-off frame has motion: %+v", f)
	}
	if f.Scale != 1 {
		t.Fatalf("FX-off scale = %v, want 1", f.Scale)
	}
	if f.Particles != nil {
		t.Fatalf("FX-off frame has %d particles", len(f.Particles))
	}
}

func TestFrameBounds(t *testing.T) {
	for tm := 0.0; tm < 10; tm += 0.173 {
		f := ComputeFrame(tm, true, 192, 200)
		if math.Abs(f.BackgroundHue) > config.BackgroundHueAmp {
			t.Fatalf("t=%v: background hue %v out of range", tm, f.BackgroundHue)
		}
		if f.Scale < 1-config.ScaleAmp || f.Scale > 1+config.ScaleAmp {
			t.Fatalf("t=%v: scale %v out of range", tm, f.Scale)
		}
		if math.Abs(f.Bob) > 192*config.BobAmp {
			t.Fatalf("t=%v: bob %v out of range", tm, f.Bob)
		}
	}
}

func TestParticleRing(t *testing.T) {
	const baseRadius = 200.0
	f := ComputeFrame(2.0, true, 192, baseRadius)
	if len(f.Particles) != config.ParticleCount {
		t.Fatalf("particle count = %d, want %d", len(f.Particles), config.ParticleCount)
	}
	for i, p := range f.Particles {
		dist := math.Hypot(p.DX, p.DY)
		if dist < 0.6*baseRadius-1e-9 || dist > baseRadius+1e-9 {
			t.Errorf("particle %d: distance %v outside ring band", i, dist)
		}
		if p.Alpha < 0 || p.Alpha > 1 {
			t.Errorf("particle %d: alpha %v outside [0,1]", i, p.Alpha)
		}
		if p.Size < 1 || p.Size > 5 {
			t.Errorf("particle %d: size %v outside [1,5]", i, p.Size)
		}
	}
}

func TestHsvToRgb(t *testing.T) {
	check := func(h float64, wr, wg, wb uint8) {
		t.Helper()
		r, g, b := hsvToRgb(h, 1, 1)
		if r != wr || g != wg || b != wb {
			t.Errorf("hsvToRgb(%v,1,1) = (%d,%d,%d), want (%d,%d,%d)", h, r, g, b, wr, wg, wb)
		}
	}
	check(0, 255, 0, 0)
	check(120, 0, 255, 0)
	check(240, 0, 0, 255)

	// Negative hues wrap the same way as their positive equivalents.
	nr, ng, nb := hsvToRgb(-60, 1, 1)
	pr, pg, pb := hsvToRgb(300, 1, 1)
	if nr != pr || ng != pg || nb != pb {
		t.Errorf("hsvToRgb(-60) = (%d,%d,%d), hsvToRgb(300) = (%d,%d,%d)", nr, ng, nb, pr, pg, pb)
	}
}
