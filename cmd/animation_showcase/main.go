// cmd/animation_showcase/main.go
// Animation showcase: a paged grid of animation units driven by one
// anim.Group per page.
//
// Usage:
//
//	go run ./cmd/animation_showcase --config=cmd/animation_showcase/config.yaml
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/animable/pkg/anim"
	"github.com/decker502/animable/pkg/config"
	"github.com/decker502/animable/pkg/playback"
	"github.com/decker502/animable/pkg/timeline"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

var (
	configPath = flag.String("config", "cmd/animation_showcase/config.yaml", "showcase configuration file")
	verbose    = flag.Bool("verbose", false, "enable verbose logging")
)

// Game implements ebiten.Game and owns the current page of cells.
type Game struct {
	showcase *ShowcaseConfig
	units    []config.UnitConfig
	settings *playback.SettingsManager

	layout *GridLayout
	group  *anim.Group

	// frame clock; scaledTime accumulates speed-adjusted time so the
	// group always sees a non-decreasing absolute time, even when the
	// speed multiplier changes mid-run
	clock      *timeline.Timeline
	scaledTime float64

	currentPage int
	totalPages  int
}

// NewGame loads the configuration and restores the persisted page.
func NewGame(showcase *ShowcaseConfig, manager *config.Manager, settings *playback.SettingsManager) (*Game, error) {
	units := manager.Units()
	if len(units) == 0 {
		return nil, fmt.Errorf("no animation units configured")
	}

	cellsPerPage := showcase.Grid.CellsPerPage()
	game := &Game{
		showcase:   showcase,
		units:      units,
		settings:   settings,
		group:      anim.NewGroup(),
		clock:      timeline.New(),
		totalPages: (len(units) + cellsPerPage - 1) / cellsPerPage,
	}
	log.Printf("[Showcase] %d animation units, %d per page, %d pages",
		len(units), cellsPerPage, game.totalPages)

	page := settings.GetSettings().LastPage
	if page >= game.totalPages {
		page = 0
	}
	if err := game.loadPage(page); err != nil {
		return nil, err
	}

	game.clock.Start()
	return game, nil
}

// loadPage replaces the current page: the old group members are
// detached and a fresh set of cells is built and started.
func (g *Game) loadPage(page int) error {
	if page < 0 || page >= g.totalPages {
		return fmt.Errorf("page %d out of range (total %d)", page+1, g.totalPages)
	}

	cellsPerPage := g.showcase.Grid.CellsPerPage()
	start := page * cellsPerPage
	end := start + cellsPerPage
	if end > len(g.units) {
		end = len(g.units)
	}

	g.group.Clear()
	cells := make([]*AnimationCell, 0, end-start)
	for _, unit := range g.units[start:end] {
		cell, err := NewAnimationCell(unit)
		if err != nil {
			log.Printf("[Showcase] skipping unit %q: %v", unit.ID, err)
			continue
		}
		cells = append(cells, cell)
		g.group.Add(cell.Animable())
		if !g.settings.GetSettings().Paused {
			cell.Animable().SetState(anim.Running)
		}
	}
	if len(cells) == 0 {
		return fmt.Errorf("page %d has no loadable units", page+1)
	}

	g.layout = NewGridLayout(g.showcase.Grid, cells)
	g.currentPage = page
	log.Printf("[Showcase] page %d/%d: %d units", page+1, g.totalPages, len(cells))

	g.settings.SetLastPage(page)
	g.saveSettings()
	return nil
}

// setAllStates applies a state to every cell on the page.
func (g *Game) setAllStates(state anim.State) {
	for _, cell := range g.layout.Cells() {
		cell.Animable().SetState(state)
	}
}

func (g *Game) saveSettings() {
	if err := g.settings.Save(); err != nil {
		log.Printf("[Showcase] failed to save settings: %v", err)
	}
}

// Update advances the frame clock, handles input, and steps the page
// group once.
func (g *Game) Update() error {
	g.clock.NextFrame()
	delta := g.clock.PreviousFrameDuration() * g.settings.GetSettings().Speed
	g.scaledTime += delta
	g.group.Step(g.scaledTime, delta)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		paused := !g.settings.GetSettings().Paused
		g.settings.SetPaused(paused)
		if paused {
			g.setAllStates(anim.Paused)
		} else {
			g.setAllStates(anim.Running)
		}
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.setAllStates(anim.Stopped)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.setAllStates(anim.Stopped)
		g.setAllStates(anim.Running)
		g.settings.SetPaused(false)
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.settings.SetShowHelp(!g.settings.GetSettings().ShowHelp)
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) && g.currentPage < g.totalPages-1 {
		if err := g.loadPage(g.currentPage + 1); err != nil {
			log.Printf("[Showcase] failed to load next page: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) && g.currentPage > 0 {
		if err := g.loadPage(g.currentPage - 1); err != nil {
			log.Printf("[Showcase] failed to load previous page: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.settings.SetSpeed(g.settings.GetSettings().Speed + 0.25)
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.settings.SetSpeed(g.settings.GetSettings().Speed - 0.25)
		g.saveSettings()
	}

	return nil
}

// Draw renders the page grid plus the status line and help overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 26, A: 255})
	g.layout.Draw(screen)

	status := fmt.Sprintf("page %d/%d | speed %.2fx | running %d/%d",
		g.currentPage+1, g.totalPages,
		g.settings.GetSettings().Speed,
		g.group.RunningCount(), g.group.Len())
	ebitenutil.DebugPrintAt(screen, status, g.showcase.Grid.Padding, 4)

	if g.settings.GetSettings().ShowHelp {
		help := "space: pause/resume  s: stop  r: restart\n" +
			"pgup/pgdn: page  -/=: speed  h: help"
		ebitenutil.DebugPrintAt(screen, help, g.showcase.Grid.Padding, g.showcase.Window.Height-36)
	}
}

// Layout reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.showcase.Window.Width, g.showcase.Window.Height
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	showcase, err := LoadShowcaseConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	manager, err := config.NewManager(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	settings := newSettingsManager()

	game, err := NewGame(showcase, manager, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(showcase.Window.Width, showcase.Window.Height)
	ebiten.SetWindowTitle(showcase.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newSettingsManager opens the gdata store, degrading to in-memory
// settings when the platform store is unavailable.
func newSettingsManager() *playback.SettingsManager {
	store, err := gdata.Open(gdata.Config{AppName: "animable_showcase"})
	if err != nil {
		log.Printf("[Showcase] warning: persistent settings unavailable: %v", err)
		store = nil
	}
	settings, err := playback.NewSettingsManager(store)
	if err != nil {
		log.Printf("[Showcase] warning: %v", err)
	}
	return settings
}
