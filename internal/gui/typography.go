package gui

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/paroliere/internal/config"
	uitheme "github.com/appengine-ltd/paroliere/internal/ui/theme"
)

type typographyState struct {
	fonts [len(uitheme.Faces)]rl.Font
}

var uiType typographyState

// initTypography loads one font per role. A missing or unreadable file is
// fatal; fonts loaded before the failure are released.
func initTypography(cfg *config.Config, log *zap.Logger) error {
	for _, role := range uitheme.Roles() {
		face := uitheme.Faces[role]
		path := cfg.FontPath(face.File)
		log.Info("loading font", zap.String("path", path), zap.Int32("size", face.Size))

		if _, err := os.Stat(path); err != nil {
			shutdownTypography()
			return fmt.Errorf("load font %s: %w", path, err)
		}
		font := rl.LoadFontEx(path, face.Size, nil, 0)
		if font.Texture.ID == 0 {
			shutdownTypography()
			return fmt.Errorf("load font %s: no glyph texture", path)
		}
		rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
		uiType.fonts[role] = font
	}
	uitheme.SetTextRenderer(drawText, measureText)
	return nil
}

func shutdownTypography() {
	for i, font := range uiType.fonts {
		if font.Texture.ID != 0 {
			rl.UnloadFont(font)
		}
		uiType.fonts[i] = rl.Font{}
	}
}

func fontFor(role uitheme.Role) (rl.Font, bool) {
	if role < 0 || int(role) >= len(uiType.fonts) {
		return rl.Font{}, false
	}
	font := uiType.fonts[role]
	return font, font.Texture.ID != 0
}

func drawText(text string, role uitheme.Role, x, y int32, clr rl.Color) {
	font, ok := fontFor(role)
	if !ok {
		rl.DrawText(text, x, y, role.Size(), clr)
		return
	}
	rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(role.Size()), 1, clr)
}

func measureText(text string, role uitheme.Role) int32 {
	font, ok := fontFor(role)
	if !ok {
		return int32(rl.MeasureText(text, role.Size()))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(font, text, float32(role.Size()), 1).X)))
}
