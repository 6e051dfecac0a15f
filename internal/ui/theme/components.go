package theme

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/paroliere/internal/game"
)

const (
	BorderThickness = int32(10)

	// Left margin for left-aligned text.
	MarginX = 4 * BorderThickness
	// Vertical gap between stacked lines.
	LineGap = 3 * BorderThickness

	timerChannel = 240
)

// FrameColor is the colour of the window frame for a phase and, while
// running, the verdict on the last submitted word.
func FrameColor(phase game.Phase, last game.LastWord) rl.Color {
	switch phase {
	case game.PhaseRunning:
		switch last {
		case game.LastWordValid:
			return FrameValid
		case game.LastWordInvalid:
			return FrameInvalid
		}
		return FrameIdle
	case game.PhaseEnded, game.PhaseClose:
		return FrameValid
	default:
		return FrameIdle
	}
}

// TimerColor fades from green with the full round left to red at zero.
func TimerColor(secondsLeft, total int) rl.Color {
	if total <= 0 {
		return rl.NewColor(timerChannel, 0, 0, 255)
	}
	if secondsLeft < 0 {
		secondsLeft = 0
	}
	if secondsLeft > total {
		secondsLeft = total
	}
	g := uint8(timerChannel * secondsLeft / total)
	return rl.NewColor(timerChannel-g, g, 0, 255)
}

// DrawFrame fills the window with the frame colour and paints the board
// inside it.
func DrawFrame(screenW, screenH int32, clr rl.Color) {
	rl.DrawRectangle(0, 0, screenW, screenH, clr)
	rl.DrawRectangle(BorderThickness, BorderThickness, screenW-2*BorderThickness, screenH-2*BorderThickness, BG)
}

// Flow stacks lines of text down the board, top to bottom.
type Flow struct {
	width  int32
	height int32
	y      int32
	rule   int
}

func NewFlow(screenW, screenH int32) *Flow {
	return &Flow{width: screenW, height: screenH}
}

// Title starts a new screen with a large centred heading.
func (f *Flow) Title(text string) {
	f.rule = 1
	drawText(text, RoleBold, f.centreX(text, RoleBold), LineGap, TextTitle)
	f.y = RoleBold.Size() + 2*LineGap
}

func (f *Flow) Subtitle(text string) {
	f.centred(text, RoleRegular, TextTitle)
}

func (f *Flow) Line(text string) {
	drawText(text, RoleRegular, MarginX, f.y+LineGap, TextNormal)
	f.y += RoleRegular.Size() + LineGap
}

// LineColored draws a left-aligned line in clr.
func (f *Flow) LineColored(text string, role Role, clr rl.Color) {
	drawText(text, role, MarginX, f.y+LineGap, clr)
	f.y += role.Size() + LineGap
}

// Rule draws the next numbered rule.
func (f *Flow) Rule(text string) {
	num := fmt.Sprintf("%d)", f.rule)
	drawText(num, RoleRegular, MarginX, f.y+LineGap, TextNumber)
	w := measureText(num, RoleRegular)
	drawText(text, RoleLight, 6*BorderThickness+w, f.y+LineGap+BorderThickness, TextNormal)
	f.y += RoleLight.Size() + LineGap
	f.rule++
}

// Clock draws the remaining time in the display face.
func (f *Flow) Clock(text string, clr rl.Color) {
	f.centred(text, RoleDisplay, clr)
}

// Letters draws the pool as spaced tiles on one centred row.
func (f *Flow) Letters(letters string) {
	const tileGap = int32(12)
	size := RoleBold.Size()
	tile := size + BorderThickness
	n := int32(len(letters))
	if n == 0 {
		return
	}
	rowW := n*tile + (n-1)*tileGap
	x := (f.width - rowW) / 2
	y := f.y + LineGap
	for _, r := range letters {
		rect := rl.NewRectangle(float32(x), float32(y), float32(tile), float32(tile))
		rl.DrawRectangleRec(rect, PanelRaised)
		rl.DrawRectangleLinesEx(rect, 2, FrameIdle)
		s := string(r)
		w := measureText(s, RoleBold)
		drawText(s, RoleBold, x+(tile-w)/2, y+BorderThickness/2, TextTitle)
		x += tile + tileGap
	}
	f.y += tile + LineGap
}

// Centred draws text in the middle of the board, outside the flow.
func (f *Flow) Centred(text string) {
	drawText(text, RoleBold, f.centreX(text, RoleBold), (f.height-RoleBold.Size())/2, TextCentered)
}

// Bottom draws a centred footer line, outside the flow.
func (f *Flow) Bottom(text string) {
	drawText(text, RoleRegular, f.centreX(text, RoleRegular), f.height-RoleBold.Size()-LineGap, TextNumber)
}

// Hint draws a small muted line under the flow.
func (f *Flow) Hint(text string) {
	if text == "" {
		return
	}
	f.LineColored(text, RoleLight, TextMuted)
}

func (f *Flow) centred(text string, role Role, clr rl.Color) {
	drawText(text, role, f.centreX(text, role), f.y+LineGap, clr)
	f.y += role.Size() + LineGap
}

func (f *Flow) centreX(text string, role Role) int32 {
	return (f.width - measureText(text, role)) / 2
}
