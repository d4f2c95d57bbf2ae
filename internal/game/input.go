package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"emojidj/internal/mixer"
)

// mouseTouch is the synthetic touch id used for the left mouse button, so a
// desktop drag behaves like a single finger. Real ebiten touch ids are
// non-negative and can never collide with it.
const mouseTouch mixer.TouchID = -1

func (g *Game) pollInput() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.mixer.Handle(mixer.TouchID(id), mixer.PhaseMoved, float64(x), float64(y))
	}

	g.releasedIDs = inpututil.AppendJustReleasedTouchIDs(g.releasedIDs[:0])
	for _, id := range g.releasedIDs {
		g.mixer.Handle(mixer.TouchID(id), mixer.PhaseEnded, 0, 0)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.mixer.Handle(mouseTouch, mixer.PhaseMoved, float64(x), float64(y))
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.mixer.Handle(mouseTouch, mixer.PhaseEnded, 0, 0)
	}
}

// justPressed is keyboard edge detection against the previous update's state.
func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}
