package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/fonts"
	"github.com/ringside/ringside/tags"
)

// UpdateHealthBars eases each HUD bar's trailing fill toward the real
// health fraction. Damage snaps the front fill instantly while the
// trail drains after it; healing (round reset) snaps both.
func UpdateHealthBars(e *ecs.ECS) {
	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.HealthBar.Get(entry)

		fighterEntry := fighterByIndex(e, bar.PlayerIndex)
		if fighterEntry == nil {
			return
		}
		health := components.Health.Get(fighterEntry)
		fraction := float32(health.Current) / float32(health.Max)

		if fraction > bar.Target {
			bar.Target = fraction
			bar.Trail = fraction
			bar.Tween = nil
			return
		}
		if fraction < bar.Target {
			bar.Target = fraction
			bar.Tween = gween.New(bar.Trail, fraction, cfg.HUD.DrainSpeed, ease.OutQuad)
		}

		if bar.Tween != nil {
			value, done := bar.Tween.Update(1.0 / 60.0)
			bar.Trail = value
			if done {
				bar.Tween = nil
			}
		}
	})
}

// DrawHUD renders both health bars, the round pips and the clock.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.HealthBar.Get(entry)
		fighterEntry := fighterByIndex(e, bar.PlayerIndex)
		if fighterEntry == nil {
			return
		}
		health := components.Health.Get(fighterEntry)
		drawHealthBar(screen, bar, health)
	})

	drawRoundPips(screen, match)
	drawRoundTimer(screen, match)
	drawControlsHelp(e, screen)
}

// drawControlsHelp prints each player's key summary along the bottom
// of the arena, plus the pause key.
func drawControlsHelp(e *ecs.ECS, screen *ebiten.Image) {
	helpFont := fonts.Small.Get()
	y := cfg.C.Height - 56

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		scheme := components.PlayerInput.Get(entry).ControlScheme
		line := controlsHelpLine(fighter.Index, scheme)
		text.Draw(screen, line, helpFont, 40, y+fighter.Index*18, cfg.LightGray)
	})

	text.Draw(screen, "Esc: pause", helpFont, 40, y+2*18, cfg.LightGray)
}

// controlsHelpLine renders one player's keyboard layout as a single
// help string, e.g. "P1: A/D move, W jump, S crouch, ...".
func controlsHelpLine(index int, scheme cfg.ControlSchemeID) string {
	if scheme < 0 || int(scheme) >= len(cfg.ControlSchemeBindings) {
		return fmt.Sprintf("P%d: gamepad", index+1)
	}
	bindings := cfg.ControlSchemeBindings[scheme]

	move := keyLabels(bindings[cfg.ActionMoveLeft]) + "/" + keyLabels(bindings[cfg.ActionMoveRight])
	return fmt.Sprintf("P%d: %s move, %s jump, %s crouch, %s punch, %s kick, %s block",
		index+1,
		move,
		keyLabels(bindings[cfg.ActionJump]),
		keyLabels(bindings[cfg.ActionCrouch]),
		keyLabels(bindings[cfg.ActionPunch]),
		keyLabels(bindings[cfg.ActionKick]),
		keyLabels(bindings[cfg.ActionBlock]))
}

// keyLabels joins a binding's keys as short labels ("KP1/1").
func keyLabels(keys []ebiten.Key) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		name := k.String()
		name = strings.TrimPrefix(name, "Arrow")
		name = strings.TrimPrefix(name, "Digit")
		labels = append(labels, name)
	}
	return strings.Join(labels, "/")
}

// drawHealthBar paints one bar. Player two's bar is right-aligned and
// drains toward the screen edge.
func drawHealthBar(screen *ebiten.Image, bar *components.HealthBarData, health *components.HealthData) {
	w := float32(cfg.HUD.HealthBarWidth)
	h := float32(cfg.HUD.HealthBarHeight)
	margin := float32(cfg.HUD.HealthBarMargin)
	y := float32(20)

	x := margin
	alignRight := bar.PlayerIndex == 1
	if alignRight {
		x = float32(cfg.C.Width) - margin - w
	}

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{40, 40, 40, 255}, false)

	fraction := float32(health.Current) / float32(health.Max)
	fillRect(screen, x, y, w*bar.Trail, h, w, cfg.Yellow, alignRight)
	fillRect(screen, x, y, w*fraction, h, w, cfg.FighterColors[bar.PlayerIndex%2], alignRight)
}

// fillRect draws a partial bar fill, anchored left or right.
func fillRect(screen *ebiten.Image, x, y, fill, h, full float32, c color.RGBA, alignRight bool) {
	if fill <= 0 {
		return
	}
	if alignRight {
		x += full - fill
	}
	vector.DrawFilledRect(screen, x, y, fill, h, c, false)
}

// drawRoundPips shows each player's round wins under their bar.
func drawRoundPips(screen *ebiten.Image, match *components.MatchData) {
	y := float32(20 + cfg.HUD.HealthBarHeight + 12)
	margin := float32(cfg.HUD.HealthBarMargin)
	needed := match.WinsNeeded()

	for i := 0; i < needed; i++ {
		step := float32(i) * 18

		c := cfg.Gray
		if match.Wins[0] > i {
			c = cfg.FighterColors[0]
		}
		vector.DrawFilledCircle(screen, margin+6+step, y, 6, c, false)

		c = cfg.Gray
		if match.Wins[1] > i {
			c = cfg.FighterColors[1]
		}
		vector.DrawFilledCircle(screen, float32(cfg.C.Width)-margin-6-step, y, 6, c, false)
	}
}

func drawRoundTimer(screen *ebiten.Image, match *components.MatchData) {
	fontFace := fonts.Timer.Get()
	timeStr := fmt.Sprintf("%d", match.SecondsLeft())

	textWidth := len(timeStr) * 20
	x := cfg.C.Width/2 - textWidth/2
	text.Draw(screen, timeStr, fontFace, x, 44, cfg.White)
}
