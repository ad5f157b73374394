// Command headless runs the simulation without a window, for soak tests and
// balancing. It logs a population summary at a fixed interval.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/system"
	"github.com/milk9111/thicket/logger"
	"github.com/milk9111/thicket/prefabs"
	"github.com/milk9111/thicket/session"
	"go.uber.org/zap"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

func main() {
	seed := flag.String("seed", "", "world seed; empty picks a random one")
	duration := flag.Duration("duration", 10*time.Minute, "simulated time to run")
	every := flag.Duration("report", 30*time.Second, "simulated time between summaries")
	useBot := flag.Bool("bot", false, "drive the player with a simple bot instead of leaving it idle")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zl, err := logger.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		zl.Fatal("headless: load prefabs", zap.Error(err))
	}

	b := &bot{}
	var collab system.Collaborators
	if *useBot {
		collab.Input = b
	}
	s, err := session.New(tuning, session.Seed(*seed), collab, zl)
	if err != nil {
		zl.Fatal("headless: start", zap.Error(err))
	}
	b.world = s.World

	ticks := int(*duration / ecs.DefaultTick)
	report := int(*every / ecs.DefaultTick)
	if report <= 0 {
		report = ticks
	}

	start := time.Now()
	for i := 1; i <= ticks; i++ {
		s.Step()
		if i%report == 0 {
			zl.Info("headless: summary", zap.Object("world", s.Summary()))
		}
	}
	zl.Info("headless: done",
		zap.Int("ticks", ticks),
		zap.Duration("wall", time.Since(start)),
		zap.Object("world", s.Summary()),
	)
}

// bot walks the player in a slow circle, shoots at the nearest enemy and
// drops a turret every minute.
type bot struct {
	world *ecs.World
	tick  int
}

func (b *bot) Poll() system.RawInput {
	b.tick++
	angle := float64(b.tick) / 600
	raw := system.RawInput{
		MoveX:        math.Cos(angle),
		MoveY:        math.Sin(angle),
		PlaceTurret:  b.tick%3600 == 0,
		CursorX:      screenWidth / 2,
		CursorY:      screenHeight / 2,
		CursorInside: true,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}

	cam, ok := b.world.First(component.CameraTagComponent.Kind())
	if !ok {
		return raw
	}
	ct, _ := ecs.Get(b.world, cam, component.TransformComponent.Kind())
	c, _ := ecs.Get(b.world, cam, component.CameraComponent.Kind())
	if ct == nil || c == nil {
		return raw
	}

	best := math.Inf(1)
	ecs.ForEach2(b.world, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.EnemyTag, t *component.Transform) {
			d := t.DistanceTo(ct)
			if d >= best {
				return
			}
			best = d
			raw.CursorX = (t.X-ct.X)*c.Zoom + screenWidth/2
			raw.CursorY = (t.Y-ct.Y)*c.Zoom + screenHeight/2
		})
	raw.Shoot = best < 400
	return raw
}
