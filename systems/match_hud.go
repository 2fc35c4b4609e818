package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/fonts"
)

// DrawMatchHUD renders the round banners over the arena.
func DrawMatchHUD(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	switch match.State {
	case cfg.MatchStateIntro:
		if match.Round > 1 {
			drawBanner(screen, fmt.Sprintf("ROUND %d - READY... FIGHT!", match.Round))
		} else {
			drawBanner(screen, "READY... FIGHT!")
		}
	case cfg.MatchStateRoundOver:
		drawBanner(screen, roundBannerText(match))
	case cfg.MatchStateOver:
		drawBanner(screen, fmt.Sprintf("P%d WINS THE MATCH!", match.MatchWinner+1))
	}
}

func roundBannerText(match *components.MatchData) string {
	switch match.Outcome {
	case cfg.OutcomeKO:
		return fmt.Sprintf("KO!  P%d WINS THE ROUND", match.RoundWinner+1)
	case cfg.OutcomeTimeout:
		return fmt.Sprintf("TIME UP!  P%d WINS THE ROUND", match.RoundWinner+1)
	default:
		return "DRAW - ROUND REPLAYS"
	}
}

// drawBanner centers a message on a dark strip across the arena.
func drawBanner(screen *ebiten.Image, msg string) {
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)

	stripH := float32(70)
	stripY := height/2 - stripH/2
	vector.DrawFilledRect(screen, 0, stripY, width, stripH, cfg.BlackOverlay, false)

	fontFace := fonts.Banner.Get()
	textWidth := len(msg) * 24
	x := int(width)/2 - textWidth/2
	text.Draw(screen, msg, fontFace, x, int(stripY)+50, cfg.White)
}
