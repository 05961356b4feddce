// Package app wires configuration, the simulation, the command registry and the
// optional audio and telemetry services together for the window and terminal hosts.
package app

import (
	"context"
	"errors"
	"fmt"

	"bounce-demo/internal/audio"
	"bounce-demo/internal/commands"
	"bounce-demo/internal/controls"
	"bounce-demo/internal/engineconfig"
	"bounce-demo/internal/env"
	"bounce-demo/internal/logger"
	"bounce-demo/internal/random"
	"bounce-demo/internal/sim"
	"bounce-demo/internal/simconfig"
	"bounce-demo/internal/telemetry"
)

// PublishEvery is how many frames pass between telemetry snapshots.
const PublishEvery = 4

// App is everything a host needs besides drawing and reading input.
type App struct {
	Log       *logger.Logger
	State     *sim.State
	Display   controls.Display
	Prefs     engineconfig.EnginePrefs
	Commands  *commands.Registry
	PrefsPath string

	// audioOn and addr are the preferences after environment overrides; they are not saved.
	audioOn bool
	addr    string

	hub    *telemetry.Hub
	server *telemetry.Server
	player *audio.Player
	frame  int
}

// New loads settings and preferences and builds the simulation. It never fails:
// problems are logged and the defaults are used instead.
// Environment variables (see package env) override the settings file and the preferences.
func New(log *logger.Logger, prefsPath string) *App {
	file := loadSettings(log)
	cfg, err := file.Sim()
	if err != nil {
		log.Logf("Invalid settings, using defaults: %v", err)
		cfg = sim.DefaultConfig()
	}
	seed, err := env.Uint(env.Seed, file.Seed)
	if err != nil {
		log.Log(err.Error())
	}

	prefs, _ := engineconfig.LoadFrom(prefsPath)
	audioOn, err := env.Bool(env.Audio, prefs.Audio)
	if err != nil {
		log.Log(err.Error())
	}

	a := &App{
		Log:       log,
		State:     sim.New(cfg, random.New(seed)),
		Display:   controls.DisplayFromPrefs(prefs),
		Prefs:     prefs,
		Commands:  commands.NewRegistry(),
		PrefsPath: prefsPath,
		audioOn:   audioOn,
		addr:      env.String(env.TelemetryAddr, prefs.Telemetry),
	}
	commands.RegisterSimCommands(a.Commands, a.State, &a.Display, log.Log)
	return a
}

func loadSettings(log *logger.Logger) simconfig.File {
	path := env.String(env.ConfigPath, simconfig.ConfigPath)
	file, err := simconfig.Load(path)
	if err != nil {
		log.Logf("Settings: %v (using defaults)", err)
	}
	file.Physics.Integration = env.String(env.Integration, file.Physics.Integration)
	return file
}

// StartServices starts audio and telemetry when the preferences ask for them.
// A service that fails to start is logged and left off.
func (a *App) StartServices() {
	if a.audioOn {
		p := audio.NewPlayer()
		if err := p.Init(); err != nil {
			a.Log.Logf("Audio disabled: %v", err)
		} else {
			a.player = p
		}
	}
	if a.addr != "" {
		if err := a.StartTelemetry(a.addr); err != nil {
			a.Log.Logf("Telemetry disabled: %v", err)
		}
	}
}

// StartTelemetry listens on addr and publishes snapshots from then on.
func (a *App) StartTelemetry(addr string) error {
	hub := telemetry.NewHub(a.Log.Logf)
	srv := telemetry.NewServer(addr, hub)
	if err := srv.Start(); err != nil {
		return err
	}
	a.hub, a.server = hub, srv
	a.Log.Logf("Telemetry listening on http://%s", srv.Addr())
	return nil
}

// Telemetry returns the running telemetry server, or nil.
func (a *App) Telemetry() *telemetry.Server { return a.server }

// Step advances the simulation by one frame of dt seconds and feeds the bounce
// events and snapshots to the running services.
func (a *App) Step(dt float32) {
	a.State.Tick(dt)
	a.frame++
	if a.player != nil {
		for _, b := range a.State.Bounces() {
			a.player.Bounce(b.Impact)
		}
	}
	if a.hub != nil && a.frame%PublishEvery == 0 {
		snap, err := a.State.Snapshot()
		if err == nil {
			err = a.hub.Publish(snap)
		}
		if err != nil {
			a.Log.Logf("Telemetry: %v", err)
		}
	}
}

// Do applies a control action, logs its message (and the key reference for Help)
// and returns the result so the host can handle Quit and Screenshot.
func (a *App) Do(act controls.Action) controls.Result {
	r := controls.Apply(act, a.State, &a.Display)
	if r.Message != "" {
		a.Log.Log(r.Message)
	}
	if r.Help {
		for _, line := range controls.HelpLines() {
			a.Log.Log(line)
		}
	}
	return r
}

// Close saves the display preferences and stops the services.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	a.Display.ApplyTo(&a.Prefs)
	if a.PrefsPath != "" {
		if err := engineconfig.SaveTo(a.PrefsPath, a.Prefs); err != nil {
			errs = append(errs, fmt.Errorf("save preferences: %w", err))
		}
	}
	if a.player != nil {
		a.player.Close()
		a.player = nil
	}
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop telemetry: %w", err))
		}
		a.server, a.hub = nil, nil
	}
	return errors.Join(errs...)
}
