package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/tags"
)

// shakeOffset returns the current screen shake displacement.
func shakeOffset(e *ecs.ECS) (float32, float32) {
	entry, ok := components.ScreenShake.First(e.World)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	return float32(shake.OffsetX), float32(shake.OffsetY)
}

// DrawStage paints the backdrop, floor and arena bounds.
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e)
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)
	groundY := float32(cfg.Arena.GroundY)

	drawVerticalGradient(screen, cfg.BGTop, cfg.BGBottom)

	// Arena floor with stripes
	vector.DrawFilledRect(screen, ox, groundY+oy, width, height-groundY, cfg.FloorColor, false)
	for x := float32(0); x < width; x += 40 {
		vector.DrawFilledRect(screen, x+ox, groundY+40+oy, 28, 10, cfg.StripeColor, false)
	}

	// Bounds outline
	left := float32(cfg.Arena.LeftBound)
	right := float32(cfg.Arena.RightBound)
	vector.StrokeRect(screen, left+ox, 60+oy, right-left, groundY-100, 2, cfg.BoundsColor, false)
}

// DrawFighters renders both fighters as blocky silhouettes with a
// head, facing eyes and any active attack box.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e)

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		obj := components.Object.Get(entry)
		attack := components.Attack.Get(entry)
		flash := components.Flash.Get(entry)

		hb := Hurtbox(fighter, obj.Object)

		bodyColor := cfg.FighterColors[fighter.Index%2]
		if fighter.Blocking {
			bodyColor = cfg.BlockColor
		}
		if flash.Duration > 0 {
			bodyColor = tintColor(bodyColor, flash.R, flash.G, flash.B)
		}

		vector.DrawFilledRect(screen,
			float32(hb.X)+ox, float32(hb.Y)+oy,
			float32(hb.W), float32(hb.H),
			bodyColor, false)

		// Head sits on top of the hurtbox
		headR := float32(hb.W) / 4
		headX := float32(hb.CenterX()) + ox
		headY := float32(hb.Y) + 4 - headR + oy
		vector.DrawFilledCircle(screen, headX, headY, headR, color.RGBA{230, 230, 230, 255}, false)

		// Eye marks the facing direction
		eyeX := headX + float32(6*fighter.Facing)
		vector.DrawFilledCircle(screen, eyeX, headY-4, 3, color.RGBA{10, 10, 10, 255}, false)

		if box, active := AttackBox(fighter, attack, obj.Object); active {
			vector.DrawFilledRect(screen,
				float32(box.X)+ox, float32(box.Y)+oy,
				float32(box.W), float32(box.H),
				cfg.HitboxColor, false)
		}

		if cfg.Debug.DrawHitboxes {
			vector.StrokeRect(screen,
				float32(hb.X)+ox, float32(hb.Y)+oy,
				float32(hb.W), float32(hb.H),
				1, cfg.Green, false)
		}
	})
}

func tintColor(c color.RGBA, r, g, b float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * r),
		G: uint8(float32(c.G) * g),
		B: uint8(float32(c.B) * b),
		A: c.A,
	}
}

// drawVerticalGradient fills the screen with a top-to-bottom blend in
// coarse bands, cheap enough to redo every frame.
func drawVerticalGradient(screen *ebiten.Image, top, bottom color.RGBA) {
	height := screen.Bounds().Dy()
	width := float32(screen.Bounds().Dx())
	const bands = 28
	bandH := float32(height) / bands

	for i := 0; i < bands; i++ {
		t := float32(i) / float32(bands-1)
		c := color.RGBA{
			R: uint8(float32(top.R) + (float32(bottom.R)-float32(top.R))*t),
			G: uint8(float32(top.G) + (float32(bottom.G)-float32(top.G))*t),
			B: uint8(float32(top.B) + (float32(bottom.B)-float32(top.B))*t),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, width, bandH+1, c, false)
	}
}
