package ui

import (
	"image/color"

	"github.com/milk9111/tilepaint/common"
	"github.com/milk9111/tilepaint/engine"
)

const (
	defaultTextScale     = 1.0
	highDensityTextScale = 0.25
)

// Theme holds the widget colours.
type Theme struct {
	Text            color.Color
	Placeholder     color.Color
	ButtonIdle      color.Color
	ButtonHover     color.Color
	InputBackground color.Color
	PanelBackground color.Color
	TitleBar        color.Color
}

func DefaultTheme() Theme {
	return Theme{
		Text:            engine.RGB(1, 1, 1),
		Placeholder:     engine.RGB(0.6, 0.6, 0.6),
		ButtonIdle:      engine.RGB(0.275, 0.225, 0.420),
		ButtonHover:     engine.RGB(0.325, 0.275, 0.470),
		InputBackground: engine.RGB(0.275, 0.225, 0.420),
		PanelBackground: engine.RGB(0.35, 0.35, 0.35),
		TitleBar:        engine.RGB(0.275, 0.225, 0.420),
	}
}

// Context is the state shared by every widget during a frame.
type Context struct {
	Input       *engine.Snapshot
	Font        *engine.Font
	Renderer    engine.Renderer
	HighDensity bool
	Theme       Theme

	textInput bool
}

func NewContext(font *engine.Font, r engine.Renderer, highDensity bool) *Context {
	return &Context{
		Input:       engine.NewSnapshot(),
		Font:        font,
		Renderer:    r,
		HighDensity: highDensity,
		Theme:       DefaultTheme(),
	}
}

// BeginFrame installs this frame's input and clears the text-input request
// left by the previous frame.
func (c *Context) BeginFrame(s *engine.Snapshot) {
	if s == nil {
		s = engine.NewSnapshot()
	}
	c.Input = s
	c.textInput = false
}

// RequestTextInput is called by a focused input during Update.
func (c *Context) RequestTextInput() {
	c.textInput = true
}

// TextInputMode reports whether any widget wanted typed characters this
// frame.
func (c *Context) TextInputMode() bool {
	return c.textInput
}

// TextScale is the default scale for label and input text.
func (c *Context) TextScale() float64 {
	if c.HighDensity {
		return highDensityTextScale
	}
	return defaultTextScale
}

func (c *Context) textSize(s string, scale float64) common.Vec2 {
	if c.Font == nil || s == "" {
		return common.Vec2{}
	}
	return c.Font.TextSize(s, scale)
}

func (c *Context) fill(r common.Rect, col color.Color) {
	if c.Renderer == nil {
		return
	}
	c.Renderer.FillRect(r.Pos(), r.Size(), col)
}

func (c *Context) text(pos common.Vec2, s string, col color.Color, scale float64) {
	if c.Renderer == nil || s == "" {
		return
	}
	c.Renderer.DrawText(c.Font, pos, s, col, scale)
}
