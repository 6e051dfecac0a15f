package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Palette for the board: navy field, coloured frame, bright type.
var (
	BG            = rl.NewColor(0x00, 0x00, 0x96, 255) // #000096
	FrameIdle     = rl.NewColor(0x00, 0x00, 0xFF, 255) // #0000FF
	FrameValid    = rl.NewColor(0x00, 0xFF, 0x00, 255) // #00FF00
	FrameInvalid  = rl.NewColor(0xFF, 0x00, 0x00, 255) // #FF0000
	TextTitle     = rl.NewColor(0xFF, 0xFF, 0x00, 255) // #FFFF00
	TextNormal    = rl.NewColor(0x00, 0xFF, 0xFF, 255) // #00FFFF
	TextCentered  = rl.NewColor(0x00, 0xFF, 0x00, 255) // #00FF00
	TextNumber    = rl.NewColor(0xFF, 0xFF, 0x00, 255) // #FFFF00
	TextMuted     = rl.NewColor(0x9A, 0xA6, 0xE0, 255) // #9AA6E0
	PanelRaised   = rl.NewColor(0x10, 0x10, 0xB4, 255) // #1010B4
)
