package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SetupUI holds the ebitenui interface for the start screen match setup
type SetupUI struct {
	UI    *ebitenui.UI
	Setup *components.SetupData

	// Callbacks
	OnStartMatch func()

	// Widget references for updates
	modeButton      *widget.Button
	difficultyLabel *widget.Label
	diffButtons     [3]*widget.Button
	winTargetLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewSetupUI creates a new match setup UI with ebitenui
func NewSetupUI(setup *components.SetupData, onStartMatch func()) *SetupUI {
	sui := &SetupUI{
		Setup:        setup,
		OnStartMatch: onStartMatch,
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
		Size:   18,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (sui *SetupUI) buildUI() {
	// Root container with AnchorLayout; background stays transparent so the
	// menu backdrop shows through.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{48, 25, 80, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(14)),
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
			Idle: color.RGBA{255, 215, 0, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(sui.buildModeRow())
	contentContainer.AddChild(sui.buildDifficultyRow())
	contentContainer.AddChild(sui.buildWinTargetRow())
	contentContainer.AddChild(sui.buildStartRow())

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (sui *SetupUI) buildModeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	modeLabel := widget.NewLabel(
		widget.LabelOpts.Text("Mode:", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(modeLabel)

	sui.modeButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(modeName(sui.Setup.TwoPlayer), &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 100, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Setup.TwoPlayer = !sui.Setup.TwoPlayer
			sui.UpdateUI()
		}),
	)
	row.AddChild(sui.modeButton)

	hint := widget.NewLabel(
		widget.LabelOpts.Text("(M to toggle)", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	row.AddChild(hint)

	return row
}

func (sui *SetupUI) buildDifficultyRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	sui.difficultyLabel = widget.NewLabel(
		widget.LabelOpts.Text("Difficulty:", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(sui.difficultyLabel)

	names := []string{"EASY", "MEDIUM", "HARD"}
	for i, name := range names {
		level := i + 1 // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
			widget.ButtonOpts.Image(sui.buttonImage()),
			widget.ButtonOpts.Text(name, &sui.smallFace, &widget.ButtonTextColor{
				Idle:     color.RGBA{200, 200, 200, 255},
				Hover:    color.RGBA{255, 255, 200, 255},
				Pressed:  color.RGBA{150, 150, 150, 255},
				Disabled: color.RGBA{100, 100, 100, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				sui.Setup.Difficulty = level
				sui.UpdateUI()
			}),
		)
		sui.diffButtons[i] = button
		row.AddChild(button)
	}

	return row
}

func (sui *SetupUI) buildWinTargetRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("Win Score:", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(label)

	minusButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("-", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Setup.WinTarget = cfg.ClampWinTarget(sui.Setup.WinTarget - 1)
			sui.UpdateUI()
		}),
	)
	row.AddChild(minusButton)

	sui.winTargetLabel = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%d points", sui.Setup.WinTarget), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(sui.winTargetLabel)

	plusButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("+", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Setup.WinTarget = cfg.ClampWinTarget(sui.Setup.WinTarget + 1)
			sui.UpdateUI()
		}),
	)
	row.AddChild(plusButton)

	return row
}

func (sui *SetupUI) buildStartRow() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 30)),
		widget.ButtonOpts.Image(sui.startButtonImage()),
		widget.ButtonOpts.Text("START", &sui.normalFace, &widget.ButtonTextColor{
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
	container.AddChild(startButton)

	return container
}

func (sui *SetupUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 40, 100, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 60, 120, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 25, 80, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SetupUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI updates all UI elements to reflect the current setup selections
func (sui *SetupUI) UpdateUI() {
	if sui.modeButton != nil {
		if textWidget := sui.modeButton.Text(); textWidget != nil {
			textWidget.Label = modeName(sui.Setup.TwoPlayer)
		}
	}

	// Difficulty only applies against the AI paddle
	for i, button := range sui.diffButtons {
		if button == nil {
			continue
		}
		button.GetWidget().Disabled = sui.Setup.TwoPlayer
		if textWidget := button.Text(); textWidget != nil {
			name := []string{"EASY", "MEDIUM", "HARD"}[i]
			if i+1 == sui.Setup.Difficulty && !sui.Setup.TwoPlayer {
				textWidget.Label = "[" + name + "]"
			} else {
				textWidget.Label = name
			}
		}
	}

	if sui.winTargetLabel != nil {
		sui.winTargetLabel.Label = fmt.Sprintf("%d points", sui.Setup.WinTarget)
	}
}

func modeName(twoPlayer bool) string {
	if twoPlayer {
		return "2 Players"
	}
	return "1 Player vs AI"
}

// Update calls the UI's Update method
func (sui *SetupUI) Update() {
	sui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
