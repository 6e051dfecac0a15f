package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// TextDrawFunc renders text with the face assigned to role.
type TextDrawFunc func(text string, role Role, x, y int32, clr rl.Color)

// TextMeasureFunc reports text width in pixels for the face of role.
type TextMeasureFunc func(text string, role Role) int32

var (
	textDrawFn TextDrawFunc = func(text string, role Role, x, y int32, clr rl.Color) {
		rl.DrawText(text, x, y, role.Size(), clr)
	}
	textMeasureFn TextMeasureFunc = func(text string, role Role) int32 {
		return int32(rl.MeasureText(text, role.Size()))
	}
)

// SetTextRenderer wires theme helpers to the GUI text system.
func SetTextRenderer(draw TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		textDrawFn = draw
	}
	if measure != nil {
		textMeasureFn = measure
	}
}

func drawText(text string, role Role, x, y int32, clr rl.Color) {
	textDrawFn(text, role, x, y, clr)
}

func measureText(text string, role Role) int32 {
	return textMeasureFn(text, role)
}
