package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/thicket/audio"
	"github.com/milk9111/thicket/ecs/render"
	"github.com/milk9111/thicket/ecs/system"
	"github.com/milk9111/thicket/prefabs"
	"github.com/milk9111/thicket/session"
	"go.uber.org/zap"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	Seed  string
	Watch bool
}

type Game struct {
	session  *session.Session
	renderer *render.Renderer
	hud      *HUD
	sound    *audio.Player
	watcher  *prefabs.Watcher
	paused   bool
	quit     bool
	log      *zap.Logger
}

func NewGame(opts Options, log *zap.Logger) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	sound, err := audio.NewPlayer(tuning.Audio, log)
	if err != nil {
		return nil, err
	}

	g := &Game{
		renderer: render.NewRenderer(render.NewRegistry(tuning.World)),
		sound:    sound,
		log:      log,
	}
	g.hud = NewHUD(g)

	g.session, err = session.New(tuning, session.Seed(opts.Seed), system.Collaborators{
		Input:    NewInput(baseWidth, baseHeight),
		Sound:    sound,
		Progress: g.hud,
	}, log)
	if err != nil {
		return nil, err
	}

	if opts.Watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Warn("prefabs: watch disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.SetPaused(!g.paused)
	}
	g.pollReloads()
	g.hud.Update()

	if g.paused {
		return nil
	}
	g.session.Step()
	return nil
}

func (g *Game) SetPaused(paused bool) {
	g.paused = paused
	g.hud.SetPaused(paused)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

// pollReloads applies every prefab change the watcher has seen since the
// last frame.
func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefabs: watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if err := g.session.Reload(name); err != nil {
		g.log.Warn("prefabs: reload failed", zap.String("file", name), zap.Error(err))
		return
	}
	if prefabs.IsScript(name) {
		return
	}
	t := g.session.Tuning
	g.renderer.SetRegistry(render.NewRegistry(t.World))
	if err := g.sound.Reload(t.Audio); err != nil {
		g.log.Warn("audio: reload failed", zap.Error(err))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.session.World, screen)
	g.hud.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
