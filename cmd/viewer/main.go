package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"cube-world/internal/debug"
	"cube-world/internal/env"
	"cube-world/internal/graphics"
	"cube-world/internal/logger"
	"cube-world/internal/mapgen"
	"cube-world/internal/meshcache"
	"cube-world/internal/scene"
	"cube-world/internal/worldconfig"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	prefs, cfgErr := worldconfig.Load(env.ConfigPath(worldconfig.ConfigPath))

	log := logger.New(prefs.LogFile, os.Stderr)
	defer log.Close()
	if err := log.SetLevelName(prefs.LogLevel); err != nil {
		log.Warnf("log level: %v", err)
	}
	if cfgErr != nil {
		log.Warnf("using default config: %v", cfgErr)
	}
	if err := prefs.Validate(); err != nil {
		log.Warnf("invalid config, using defaults: %v", err)
		prefs = worldconfig.Default()
	}

	cache, err := meshcache.New(prefs.CacheEntries)
	if err != nil {
		log.Fatalf("world cache: %v", err)
	}
	defer cache.Close()

	v := &viewer{
		log:   log,
		cache: cache,
		scene: scene.New(),
		debug: debug.New(log.Lines),
	}
	v.scene.WireVisible = !prefs.WireframeHidden
	v.debug.ShowFPS = prefs.ShowFPS

	win := graphics.Window{
		Width:     prefs.WindowWidth,
		Height:    prefs.WindowHeight,
		Title:     "cube world",
		TargetFPS: 60,
	}
	v.show(prefs.Width, prefs.Depth)
	graphics.Run(win, v.update, v.draw)
}

type viewer struct {
	log   *logger.Logger
	cache *meshcache.Cache
	scene *scene.Scene
	debug *debug.Debug

	width, depth uint32
}

// show switches to the world of the given size, keeping the current one on error.
func (v *viewer) show(width, depth uint32) {
	w, err := v.cache.Get(width, depth)
	if err != nil {
		v.log.WithError(err).Warn("world not shown")
		return
	}
	v.width, v.depth = width, depth
	v.scene.SetWorld(w)
	v.scene.Frame(w.Stats().Bounds)
	v.debug.SetWorld(w)
	v.log.WithFields(logrus.Fields{"width": width, "depth": depth, "generated": v.cache.Generated()}).Info("world shown")
}

func (v *viewer) update() {
	switch {
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		w, d := shrink(v.width, v.depth)
		v.show(w, d)
	case rl.IsKeyPressed(rl.KeyRightBracket):
		w, d := grow(v.width, v.depth)
		v.show(w, d)
	}
	if rl.IsKeyPressed(rl.KeyG) {
		v.scene.ToggleWire()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		v.debug.ToggleFPS()
	}
	v.scene.Update()
}

func (v *viewer) draw() {
	v.scene.Draw()
	v.debug.Draw()
}

// grow adds one tile to each side, stopping before the world exceeds mapgen.MaxTiles.
func grow(width, depth uint32) (uint32, uint32) {
	if (uint64(width)+1)*(uint64(depth)+1) > mapgen.MaxTiles {
		return width, depth
	}
	return width + 1, depth + 1
}

// shrink removes one tile from each side that has more than one.
func shrink(width, depth uint32) (uint32, uint32) {
	if width > 1 {
		width--
	}
	if depth > 1 {
		depth--
	}
	return width, depth
}
