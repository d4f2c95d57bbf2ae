// Package game runs the touch deck: it feeds ebiten input into the mixer and
// draws the animated emoji disc from closed-form frame parameters.
package game

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"emojidj/internal/config"
	"emojidj/internal/deck"
	"emojidj/internal/mixer"
)

const emojiFontPx = 128

// Background gradient stops, top to bottom, as HSV. The frame's background
// hue shift rotates all three together.
var bgStops = [3][3]float64{
	{230, 0.65, 0.22},
	{280, 0.55, 0.34},
	{330, 0.60, 0.24},
}

type Game struct {
	mixer *mixer.Mixer
	time  float64

	faceEmoji *text.GoTextFace
	faceDeck  *text.GoTextFace

	// cached offscreen render of the selected emoji
	emojiImg  *ebiten.Image
	lastEmoji string

	// reused input scratch buffers
	touchIDs    []ebiten.TouchID
	releasedIDs []ebiten.TouchID
	prevKey     map[ebiten.Key]bool
}

func New() (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Game{
		mixer:     mixer.New(config.WindowWidth),
		faceEmoji: &text.GoTextFace{Source: src, Size: emojiFontPx},
		faceDeck:  &text.GoTextFace{Source: src, Size: 24},
		prevKey:   map[ebiten.Key]bool{},
	}, nil
}

func (g *Game) Update() error {
	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.justPressed(ebiten.KeySpace) {
		g.mixer.ToggleFX()
	}

	g.pollInput()
	g.time += config.Tick
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	st := g.mixer.State()

	minDim := math.Min(config.WindowWidth, config.WindowHeight)
	emojiSize := minDim * config.EmojiSizeRatio
	ringRadius := minDim * config.ParticleRingRatio
	f := ComputeFrame(g.time, st.FXOn, emojiSize, ringRadius)

	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight) / 2

	g.drawBackground(screen, f.BackgroundHue)
	g.drawDisc(screen, cx, cy, minDim*config.DiscRadiusRatio)
	g.drawEmoji(screen, deck.Select(st.Scratch, st.Crossfade), cx, cy, emojiSize, f)
	g.drawParticles(screen, cx, cy, f.Particles)
	g.drawDeckStrip(screen, st)
	g.drawHUD(screen, st)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// drawBackground paints a vertical gradient across the three stops, with the
// whole palette hue-rotated by hueShift degrees.
func (g *Game) drawBackground(screen *ebiten.Image, hueShift float64) {
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight-1)
		var a, b [3]float64
		t := ratio * 2
		if ratio < 0.5 {
			a, b = bgStops[0], bgStops[1]
		} else {
			a, b = bgStops[1], bgStops[2]
			t -= 1
		}
		t = clamp01(t)
		h := lerp(a[0], b[0], t) + hueShift
		s := lerp(a[1], b[1], t)
		v := lerp(a[2], b[2], t)
		r, gr, bl := hsvToRgb(h, s, v)
		vector.StrokeLine(screen, 0, float32(y)+0.5, config.WindowWidth, float32(y)+0.5, 1,
			color.RGBA{R: r, G: gr, B: bl, A: 255}, false)
	}
}

// drawDisc draws the static record under the emoji: platter, grooves and a
// spindle. Only the emoji itself animates.
func (g *Game) drawDisc(screen *ebiten.Image, cx, cy, radius float64) {
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius),
		color.RGBA{R: 18, G: 16, B: 24, A: 255}, true)
	groove := color.RGBA{R: 48, G: 44, B: 60, A: 255}
	for i := 1; i <= 3; i++ {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius*float64(i)/4), 1, groove, true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 6,
		color.RGBA{R: 200, G: 200, B: 210, A: 255}, true)
}

func (g *Game) drawEmoji(screen *ebiten.Image, sym string, cx, cy, size float64, f Frame) {
	img := g.emojiImage(sym)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	scale := size / float64(h) * f.Scale
	op := &colorm.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy+f.Bob)
	op.Filter = ebiten.FilterLinear

	var cm colorm.ColorM
	cm.RotateHue(f.EmojiHue * math.Pi / 180)
	colorm.DrawImage(screen, img, cm, op)
}

// emojiImage renders sym once into an offscreen image and caches it until
// the selection changes, so Draw only scales and tints.
func (g *Game) emojiImage(sym string) *ebiten.Image {
	if sym == g.lastEmoji && g.emojiImg != nil {
		return g.emojiImg
	}
	w, h := text.Measure(sym, g.faceEmoji, 0)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(int(math.Ceil(w)), int(math.Ceil(h)))
	text.Draw(img, sym, g.faceEmoji, &text.DrawOptions{})

	if g.emojiImg != nil {
		g.emojiImg.Deallocate()
	}
	g.emojiImg = img
	g.lastEmoji = sym
	return img
}

func (g *Game) drawParticles(screen *ebiten.Image, cx, cy float64, particles []Particle) {
	for i, p := range particles {
		hue := math.Mod(float64(i)*7.5+g.time*60, 360)
		r, gr, b := hsvToRgb(hue, 0.8, 1.0)
		c := color.RGBA{R: r, G: gr, B: b, A: uint8(255 * clamp01(p.Alpha))}
		vector.DrawFilledCircle(screen, float32(cx+p.DX), float32(cy+p.DY), float32(p.Size), c, false)
	}
}

// drawDeckStrip lays the active deck along the bottom edge and boxes the
// emoji the scratch position currently selects.
func (g *Game) drawDeckStrip(screen *ebiten.Image, st mixer.State) {
	d := deck.Pick(st.Crossfade)
	selected := deck.Index(st.Scratch)

	slot := float64(config.WindowWidth) / deck.Size
	y := float64(config.WindowHeight) - 56
	for i, sym := range d {
		x := slot * (float64(i) + 0.5)
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(x, y)
		if i != selected {
			op.ColorScale.ScaleAlpha(0.45)
		}
		text.Draw(screen, sym, g.faceDeck, op)
	}

	boxW := float32(slot * 0.8)
	boxX := float32(slot*(float64(selected)+0.5)) - boxW/2
	vector.StrokeRect(screen, boxX, float32(y)-4, boxW, 36, 2,
		color.RGBA{R: 255, G: 255, B: 255, A: 180}, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, st mixer.State) {
	fx := "off"
	if st.FXOn {
		fx = "on"
	}
	status := fmt.Sprintf("scratch %.2f | crossfade %.2f | fx %s | touches %d",
		st.Scratch, st.Crossfade, fx, g.mixer.ActiveTouches())
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, "1 finger: scratch, 2: crossfade, 3+: toggle FX (Space on desktop), Esc/Q: quit", 12, 28)
}
