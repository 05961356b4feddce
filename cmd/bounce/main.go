package main

import (
	"context"
	"time"

	"bounce-demo/internal/app"
	"bounce-demo/internal/controls"
	"bounce-demo/internal/debug"
	"bounce-demo/internal/engineconfig"
	"bounce-demo/internal/env"
	"bounce-demo/internal/fonts"
	"bounce-demo/internal/graphics"
	"bounce-demo/internal/logger"
	"bounce-demo/internal/primitives"
	"bounce-demo/internal/scene"
	"bounce-demo/internal/screenshot"
	"bounce-demo/internal/terminal"
	"bounce-demo/internal/textures"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fontSize is the overlay text size. Fonts are rasterized at twice that.
const fontSize = 20

func main() {
	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Logf("Environment: %v", err)
	}
	a := app.New(log, engineconfig.EngineConfigPath)
	a.StartServices()

	prims := primitives.NewRegistry()
	scn := scene.New(prims)
	dbg := debug.New()
	dbg.ShowFPS, dbg.ShowMemAlloc, dbg.ShowHUD = a.Prefs.ShowFPS, a.Prefs.ShowMemAlloc, a.Prefs.ShowHUD
	term := terminal.New(log, a.Commands)
	capture := false
	var font rl.Font

	setup := func() {
		bunny := prims.Init()
		if !bunny {
			log.Log("Bunny model not found; bunny disabled")
		}
		a.State.SetBunnyAvailable(bunny)
		a.Display.BunnyAvailable = bunny

		paths, err := textures.List(textures.Dir)
		if err != nil {
			log.Logf("Textures: %v", err)
		}
		n, errs := prims.LoadTextures(paths)
		for _, err := range errs {
			log.Logf("Textures: %v", err)
		}
		a.Display.Textures = n
		log.Logf("Loaded %d textures", n)

		if path, err := fonts.Find(a.Prefs.Font); err == nil {
			font = rl.LoadFontEx(path, 2*fontSize, nil)
			dbg.SetFont(font)
			term.SetFont(font)
			log.Logf("Overlay font: %s", path)
		}
	}

	update := func(dt float32, width, height int32) bool {
		a.State.SetWindowSize(float32(width), float32(height))
		if rl.IsKeyPressed(rl.KeyEscape) {
			if !term.IsOpen() {
				return false
			}
			term.Close()
		} else if !term.Update() {
			for _, act := range pollActions() {
				r := a.Do(act)
				if r.Quit {
					return false
				}
				capture = capture || r.Screenshot
			}
		}
		a.Step(dt)
		return true
	}

	draw := func() {
		scn.Draw(a.State, a.Display)
		if capture {
			capture = false
			saveScreenshot(log)
		}
		dbg.Draw(controls.HUDLines(a.State, a.Display))
		term.Draw()
	}

	closeAll := func() {
		prims.Unload()
		if font.Texture.ID != 0 {
			rl.UnloadFont(font)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.Close(ctx); err != nil {
			log.Log(err.Error())
		}
	}

	graphics.Run(graphics.Window{Title: "Bouncing Objects", Width: 800, Height: 600, TargetFPS: 60}, graphics.Frame{
		Init:       setup,
		Update:     update,
		Background: func() rl.Color { return a.Display.BackgroundColor().RGBA8() },
		Draw:       draw,
		Close:      closeAll,
	})
}

// saveScreenshot grabs the scene without overlays and writes it under screenshot.Dir.
func saveScreenshot(log *logger.Logger) {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	path, err := screenshot.Save(screenshot.Dir, img.ToImage(), time.Now())
	if err != nil {
		log.Logf("Screenshot failed: %v", err)
		return
	}
	log.Logf("Screenshot saved: %s", path)
}
