package config

const (
	WindowWidth  = 480
	WindowHeight = 800

	// Tick is the simulated time step per update at ebiten's default 60 TPS.
	Tick = 1.0 / 60.0

	// Disc geometry, as fractions of the shorter viewport edge
	DiscRadiusRatio   = 0.32
	EmojiSizeRatio    = 0.40
	ParticleRingRatio = 0.42

	// Background hue wobble (FX on)
	BackgroundHueFreq = 20.0
	BackgroundHueAmp  = 40.0 // degrees

	// Emoji motion (FX on)
	BobFreq      = 4.0
	BobAmp       = 0.04 // fraction of emoji size
	ScaleFreq    = 3.0
	ScaleAmp     = 0.05
	EmojiHueFreq = 30.0
	EmojiHueAmp  = 10.0 // degrees

	// Particle overlay
	ParticleCount     = 48
	ParticlePhaseStep = 0.37 // per-index phase seed spacing
	ParticleRingFreq  = 0.7
	ParticleSizeFreq  = 1.3
	ParticleAlphaFreq = 0.9
)
