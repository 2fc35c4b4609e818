package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ringside/ringside/components"
)

var bestOfChoices = []int{1, 3, 5, 7}
var roundTimeChoices = []int{30, 60, 99}

// SetupUI holds the ebitenui interface for the match setup screen
type SetupUI struct {
	UI    *ebitenui.UI
	Setup *components.SetupData

	// Callbacks
	OnStartMatch func()
	OnGoBack     func()

	// Widget references for updates
	bestOfLabel     *widget.Label
	roundTimeLabel  *widget.Label
	schemeLabel     *widget.Label
	fullscreenLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSetupUI creates the match setup UI around the Setup singleton
func NewSetupUI(setup *components.SetupData, onStartMatch, onGoBack func()) *SetupUI {
	sui := &SetupUI{
		Setup:        setup,
		OnStartMatch: onStartMatch,
		OnGoBack:     onGoBack,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SetupUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (sui *SetupUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("MATCH SETUP", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	sui.bestOfLabel = sui.addCycleRow(contentContainer, "Rounds:", sui.bestOfText(), func() {
		sui.Setup.BestOf = nextChoice(bestOfChoices, sui.Setup.BestOf)
		sui.UpdateUI()
	})
	sui.roundTimeLabel = sui.addCycleRow(contentContainer, "Round time:", sui.roundTimeText(), func() {
		sui.Setup.RoundSeconds = nextChoice(roundTimeChoices, sui.Setup.RoundSeconds)
		sui.UpdateUI()
	})
	sui.schemeLabel = sui.addCycleRow(contentContainer, "Keyboards:", sui.schemeText(), func() {
		sui.Setup.SwapSchemes = !sui.Setup.SwapSchemes
		sui.UpdateUI()
	})
	sui.fullscreenLabel = sui.addCycleRow(contentContainer, "Fullscreen:", sui.fullscreenText(), func() {
		sui.Setup.Fullscreen = !sui.Setup.Fullscreen
		sui.UpdateUI()
	})

	contentContainer.AddChild(sui.buildButtonsContainer())
	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// addCycleRow builds a "label: value [Change]" row and returns the
// value label so UpdateUI can refresh it.
func (sui *SetupUI) addCycleRow(parent *widget.Container, name, value string, onChange func()) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(name, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text(value, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(valueLabel)

	changeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Change", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onChange()
		}),
	)
	row.AddChild(changeButton)

	parent.AddChild(row)
	return valueLabel
}

func (sui *SetupUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 32)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnGoBack != nil {
				sui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	fightButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.Image(sui.fightButtonImage()),
		widget.ButtonOpts.Text("FIGHT", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStartMatch != nil {
				sui.OnStartMatch()
			}
		}),
	)
	container.AddChild(fightButton)

	return container
}

func (sui *SetupUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (sui *SetupUI) fightButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// UpdateUI refreshes all value labels from the Setup component
func (sui *SetupUI) UpdateUI() {
	sui.bestOfLabel.Label = sui.bestOfText()
	sui.roundTimeLabel.Label = sui.roundTimeText()
	sui.schemeLabel.Label = sui.schemeText()
	sui.fullscreenLabel.Label = sui.fullscreenText()
}

func (sui *SetupUI) bestOfText() string {
	return fmt.Sprintf("Best of %d", sui.Setup.BestOf)
}

func (sui *SetupUI) roundTimeText() string {
	return fmt.Sprintf("%d sec", sui.Setup.RoundSeconds)
}

func (sui *SetupUI) schemeText() string {
	if sui.Setup.SwapSchemes {
		return "P1 arrows / P2 WASD"
	}
	return "P1 WASD / P2 arrows"
}

func (sui *SetupUI) fullscreenText() string {
	if sui.Setup.Fullscreen {
		return "On"
	}
	return "Off"
}

// Update advances the ebitenui state. Call once per frame.
func (sui *SetupUI) Update() {
	sui.UI.Update()
}

// nextChoice returns the choice after current, wrapping around.
func nextChoice(choices []int, current int) int {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}
