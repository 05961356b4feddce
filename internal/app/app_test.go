package app

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bounce-demo/internal/controls"
	"bounce-demo/internal/engineconfig"
	"bounce-demo/internal/env"
	"bounce-demo/internal/logger"
	"bounce-demo/internal/physics"
)

// isolate clears the BOUNCE_* overrides and points the settings file into a temp dir.
func isolate(t *testing.T, settings string) (prefsPath string) {
	t.Helper()
	dir := t.TempDir()
	for _, k := range []string{env.Seed, env.Integration, env.TelemetryAddr, env.Audio} {
		t.Setenv(k, "")
	}
	cfgPath := filepath.Join(dir, "bounce.yaml")
	if settings != "" {
		if err := os.WriteFile(cfgPath, []byte(settings), 0644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv(env.ConfigPath, cfgPath)
	return filepath.Join(dir, "engine.json")
}

func TestNewReadsSettingsAndEnv(t *testing.T) {
	prefs := isolate(t, "physics:\n  gravity: 0.5\n")
	t.Setenv(env.Integration, "time-scaled")

	a := New(logger.NewAt(""), prefs)
	if a.State.Gravity() != 0.5 {
		t.Fatalf("gravity = %v, want 0.5 from the settings file", a.State.Gravity())
	}
	if a.State.Integration() != physics.TimeScaled {
		t.Fatalf("integration = %v, want time-scaled from the environment", a.State.Integration())
	}
}

func TestNewFallsBackOnBadSettings(t *testing.T) {
	prefs := isolate(t, "physics:\n  gravityy: 0.5\n")
	log := logger.NewAt("")

	a := New(log, prefs)
	if a.State.Gravity() != 0.35 {
		t.Fatalf("gravity = %v, want default", a.State.Gravity())
	}
	if len(log.Lines()) == 0 {
		t.Fatal("expected the settings error to be logged")
	}
}

func TestDoLogs(t *testing.T) {
	a := New(logger.NewAt(""), isolate(t, ""))

	r := a.Do(controls.GravityUp)
	if r.Message != "Gravity: 0.45" || a.Log.Last() != "Gravity: 0.45" {
		t.Fatalf("message = %q, last log = %q", r.Message, a.Log.Last())
	}

	before := len(a.Log.Lines())
	if r := a.Do(controls.Help); !r.Help {
		t.Fatal("Help result not flagged")
	}
	if got := len(a.Log.Lines()) - before; got != len(controls.HelpLines()) {
		t.Fatalf("help logged %d lines, want %d", got, len(controls.HelpLines()))
	}

	if r := a.Do(controls.Quit); !r.Quit {
		t.Fatal("Quit result not flagged")
	}
}

func TestCommandsAreWired(t *testing.T) {
	a := New(logger.NewAt(""), isolate(t, ""))
	if err := a.Commands.Execute([]string{"speed", "--set", "2"}); err != nil {
		t.Fatalf("speed: %v", err)
	}
	if a.State.Speed() != 2 {
		t.Fatalf("speed = %v", a.State.Speed())
	}
	if err := a.Commands.Execute([]string{"mode", "--multi"}); err != nil {
		t.Fatalf("mode: %v", err)
	}
	if !a.State.Multi() {
		t.Fatal("mode --multi did not switch mode")
	}
}

func TestTelemetryPublishes(t *testing.T) {
	a := New(logger.NewAt(""), isolate(t, ""))
	if err := a.StartTelemetry("127.0.0.1:0"); err != nil {
		t.Fatalf("StartTelemetry: %v", err)
	}
	for i := 0; i < PublishEvery; i++ {
		a.Step(1.0 / 60)
	}

	resp, err := http.Get("http://" + a.Telemetry().Addr() + "/api/v1/state")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("state status = %d after %d steps", resp.StatusCode, PublishEvery)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if a.Telemetry() != nil {
		t.Fatal("telemetry still set after Close")
	}
}

func TestCloseSavesDisplayPrefs(t *testing.T) {
	prefs := isolate(t, "")
	a := New(logger.NewAt(""), prefs)
	a.Do(controls.CycleTrajectory)
	a.Do(controls.CycleGrid)
	if err := a.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, _ := engineconfig.LoadFrom(prefs)
	if got.Trajectory != "line" || got.GridMode != "basic" {
		t.Fatalf("saved prefs = %+v", got)
	}

	b := New(logger.NewAt(""), prefs)
	if b.Display.Trajectory != controls.TrajectoryLine || b.Display.Grid != controls.GridBasic {
		t.Fatalf("reloaded display = %+v", b.Display)
	}
}

func TestEnvTelemetryNotSaved(t *testing.T) {
	prefs := isolate(t, "")
	t.Setenv(env.TelemetryAddr, "127.0.0.1:0")
	a := New(logger.NewAt(""), prefs)
	if err := a.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(prefs)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "127.0.0.1") {
		t.Fatalf("environment override was persisted: %s", data)
	}
}
