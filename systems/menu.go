package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/fonts"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createFightScene, createSetupScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuFight:
				sceneChanger.ChangeScene(createFightScene())
			case components.MainMenuSetup:
				sceneChanger.ChangeScene(createSetupScene())
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawVerticalGradient(screen, cfg.BGTop, cfg.BGBottom)

	titleFont := fonts.Banner.Get()
	title := "RINGSIDE"
	titleWidth := len(title) * 24
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, 140, cfg.White)

	menuFont := fonts.Menu.Get()
	const itemHeight, itemGap = 32.0, 14.0
	startY := 240.0

	for i, option := range menu.VisibleOptions {
		y := startY + float64(i)*(itemHeight+itemGap)

		textColor := cfg.DarkBlue
		if i == menu.SelectedIndex {
			textColor = cfg.LightBlue
		}

		label := getOptionLabel(option)
		textWidth := len(label) * 13
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, label, menuFont, x, int(y)+int(itemHeight), textColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-16, cfg.DarkBlue)
}

func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuFight:
		return "Fight"
	case components.MainMenuSetup:
		return "Match Setup"
	case components.MainMenuExit:
		return "Exit"
	}
	return ""
}

func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Quit"
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuFight,
				components.MainMenuSetup,
				components.MainMenuExit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
