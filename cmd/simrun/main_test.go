package main

import (
	"context"
	"errors"
	"testing"

	"kickabout/internal/world"
)

func TestBuiltinScenariosPass(t *testing.T) {
	for _, s := range scenarios("") {
		t.Run(s.name, func(t *testing.T) {
			frames, err := run(context.Background(), s, 120, 30)
			if err != nil {
				t.Fatalf("Scenario failed: %v", err)
			}
			if len(frames) != 4 {
				t.Errorf("Expected 4 sampled frames, got %d", len(frames))
			}
		})
	}
}

func TestRunStopsOnFirstBadTick(t *testing.T) {
	s := filter(scenarios(""), "walk")[0]
	s.each = func(f world.Frame) error {
		if f.Tick == 5 {
			return errors.New("bad tick")
		}
		return nil
	}

	frames, err := run(context.Background(), s, 120, 1)
	if err == nil {
		t.Fatal("Expected the per-tick check to fail the run")
	}
	if len(frames) != 5 {
		t.Errorf("Expected the run to stop at tick 5, got %d frames", len(frames))
	}
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames, err := run(ctx, scenarios("")[0], 120, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("Expected no frames from a cancelled run, got %d", len(frames))
	}
}

func TestFilter(t *testing.T) {
	all := scenarios("")
	if got := filter(all, ""); len(got) != len(all) {
		t.Errorf("Empty filter should keep all %d scenarios, got %d", len(all), len(got))
	}
	got := filter(all, "kick, land")
	if len(got) != 2 || got[0].name != "land" || got[1].name != "kick" {
		t.Errorf("Expected land and kick in declaration order, got %v", got)
	}
	if got := filter(all, "nope"); len(got) != 0 {
		t.Errorf("Expected no match, got %d", len(got))
	}
}
