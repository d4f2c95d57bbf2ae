package game

import (
	"math"

	"emojidj/internal/config"
)

// Particle is one dot of the FX overlay. DX/DY are offsets from the disc
// center; Alpha is in [0,1].
type Particle struct {
	DX, DY float64
	Size   float64
	Alpha  float64
}

// Frame holds every animated parameter for one rendered frame. All fields
// are closed-form in (t, fxOn, size), so re-evaluating at the same time
// reproduces the frame bit for bit.
type Frame struct {
	BackgroundHue float64    // degrees
	Bob           float64    // px, vertical emoji offset
	Scale         float64
	EmojiHue      float64    // degrees
	Particles     []Particle // nil when FX is off
}

// ComputeFrame evaluates the animation at time t. size is the emoji size in
// pixels, baseRadius the particle ring radius. With FX off everything is
// static: no hue shift, no bob, unit scale, no particles.
func ComputeFrame(t float64, fxOn bool, size, baseRadius float64) Frame {
	f := Frame{Scale: 1}
	if !fxOn {
		return f
	}
	f.BackgroundHue = math.Sin(t*config.BackgroundHueFreq) * config.BackgroundHueAmp
	f.Bob = math.Sin(t*config.BobFreq) * (size * config.BobAmp)
	f.Scale = 1 + config.ScaleAmp*math.Sin(t*config.ScaleFreq)
	f.EmojiHue = math.Sin(t*config.EmojiHueFreq) * config.EmojiHueAmp
	f.Particles = make([]Particle, config.ParticleCount)
	for i := range f.Particles {
		f.Particles[i] = particleAt(i, t, baseRadius)
	}
	return f
}

// particleAt places particle i on the ring. The per-index seed staggers the
// phases so the ring shimmers instead of pulsing in lockstep; position, size
// and opacity all derive from (t, i) alone.
func particleAt(i int, t, baseRadius float64) Particle {
	seed := float64(i) * config.ParticlePhaseStep
	radius := baseRadius * (0.8 + 0.2*math.Sin(t*config.ParticleRingFreq+seed))
	angle := math.Mod(seed, 2*math.Pi)
	return Particle{
		DX:    math.Cos(angle) * radius,
		DY:    math.Sin(angle) * radius,
		Size:  3 + 2*math.Sin(t*config.ParticleSizeFreq+seed),
		Alpha: 0.5 + 0.5*math.Sin(t*config.ParticleAlphaFreq+seed),
	}
}
