package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"bounce-demo/internal/app"
	"bounce-demo/internal/controls"
	"bounce-demo/internal/engineconfig"
	"bounce-demo/internal/env"
	"bounce-demo/internal/logger"
	"bounce-demo/internal/tui"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

func main() {
	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Logf("Environment: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	screen.EnableMouse()

	a := app.New(log, engineconfig.EngineConfigPath)
	a.State.SetBunnyAvailable(true)
	a.Display.BunnyAvailable = true
	a.StartServices()

	run(screen, a)
	screen.Fini()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.Close(ctx); err != nil {
		log.Log(err.Error())
	}
}

// run draws a frame every frameInterval and applies input as it arrives, until quit.
func run(screen tcell.Screen, a *app.App) {
	r := tui.NewRenderer(screen)
	var in tui.Input

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			act := in.Action(ev)
			if act == controls.None {
				continue
			}
			res := a.Do(act)
			switch {
			case res.Quit:
				return
			case res.Screenshot:
				r.SetMessage("Screenshots are not available in the terminal")
				a.Log.Log(r.Message())
			case res.Help:
				r.SetMessage("Key reference written to the log")
			default:
				r.SetMessage(res.Message)
			}
		case now := <-ticker.C:
			a.Step(float32(now.Sub(last).Seconds()))
			last = now
			r.Draw(a.State, a.Display)
		}
	}
}
