// cmd/animation_showcase/animation_cell.go
// One grid cell: a single animation unit visualized as either a
// moving dot on a track (tween units) or a segmented frame strip
// (frames units).
package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/animable/pkg/anim"
	"github.com/decker502/animable/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	cellBackground = color.RGBA{R: 28, G: 32, B: 40, A: 255}
	cellBorder     = color.RGBA{R: 70, G: 78, B: 92, A: 255}
	trackColor     = color.RGBA{R: 52, G: 58, B: 70, A: 255}
	dotColor       = color.RGBA{R: 120, G: 200, B: 120, A: 255}
	frameOffColor  = color.RGBA{R: 52, G: 58, B: 70, A: 255}
	frameOnColor   = color.RGBA{R: 230, G: 180, B: 80, A: 255}
	pausedColor    = color.RGBA{R: 200, G: 160, B: 70, A: 255}
	stoppedColor   = color.RGBA{R: 160, G: 80, B: 80, A: 255}
)

// AnimationCell owns the Animable built from one unit definition plus
// the latest value/frame it produced.
type AnimationCell struct {
	unit     config.UnitConfig
	animable *anim.Animable

	// latest outputs, written by the animation callbacks
	value float64
	frame int
}

// NewAnimationCell builds the Animable for a unit and leaves it
// stopped; the caller adds it to a group and starts it.
func NewAnimationCell(unit config.UnitConfig) (*AnimationCell, error) {
	cell := &AnimationCell{unit: unit, frame: unit.StartFrame}

	animable, err := unit.NewAnimable(cell, config.Sink{
		Value: func(v float64) { cell.value = v },
		Frame: func(f int) { cell.frame = f },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build cell for unit %q: %w", unit.ID, err)
	}
	cell.animable = animable
	cell.value = unit.From
	return cell, nil
}

// Animable returns the cell's Animable for group membership and state
// control.
func (c *AnimationCell) Animable() *anim.Animable {
	return c.animable
}

// Name returns the unit's display name, falling back to its id.
func (c *AnimationCell) Name() string {
	if c.unit.Name != "" {
		return c.unit.Name
	}
	return c.unit.ID
}

// normalizedValue maps the tween value onto [0, 1] for drawing.
// Overshooting easings (back, elastic) may leave this range; the
// caller clamps for geometry but the label shows the raw value.
func (c *AnimationCell) normalizedValue() float64 {
	span := c.unit.To - c.unit.From
	if span == 0 {
		return 0
	}
	return (c.value - c.unit.From) / span
}

// Draw renders the cell at the given rectangle.
func (c *AnimationCell) Draw(screen *ebiten.Image, x, y, w, h int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), cellBackground, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, cellBorder, false)

	switch c.unit.Kind {
	case config.KindTween:
		c.drawTween(screen, x, y, w, h)
	case config.KindFrames:
		c.drawFrames(screen, x, y, w, h)
	}

	state := c.animable.State()
	label := fmt.Sprintf("%s [%s]", c.Name(), state)
	ebitenutil.DebugPrintAt(screen, label, x+6, y+4)

	stateDot := dotColor
	switch state {
	case anim.Paused:
		stateDot = pausedColor
	case anim.Stopped:
		stateDot = stoppedColor
	}
	vector.DrawFilledCircle(screen, float32(x+w-12), float32(y+12), 4, stateDot, true)
}

// drawTween draws a horizontal track with a dot at the eased value.
func (c *AnimationCell) drawTween(screen *ebiten.Image, x, y, w, h int) {
	trackY := float32(y + h/2)
	trackX := float32(x + 16)
	trackW := float32(w - 32)
	vector.StrokeLine(screen, trackX, trackY, trackX+trackW, trackY, 2, trackColor, true)

	progress := math.Min(1, math.Max(0, c.normalizedValue()))
	dotX := trackX + trackW*float32(progress)
	vector.DrawFilledCircle(screen, dotX, trackY, 7, dotColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("value %.3f", c.value), x+6, y+h-18)
}

// drawFrames draws one segment per frame with the current one lit.
func (c *AnimationCell) drawFrames(screen *ebiten.Image, x, y, w, h int) {
	count := c.unit.FrameCount
	if count <= 0 {
		return
	}
	gap := 2
	stripX := x + 16
	stripW := w - 32
	segW := (stripW - gap*(count-1)) / count
	if segW < 1 {
		segW = 1
	}
	stripY := y + h/2 - 8

	current := c.frame - c.unit.StartFrame
	for i := 0; i < count; i++ {
		clr := frameOffColor
		if i == current {
			clr = frameOnColor
		}
		segX := stripX + i*(segW+gap)
		vector.DrawFilledRect(screen, float32(segX), float32(stripY), float32(segW), 16, clr, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d", c.frame), x+6, y+h-18)
}
