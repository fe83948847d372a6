// Headless runner that plays scripted input against a level and logs the
// resulting frames. Handy for checking a level file or a tuning change
// without opening a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"kickabout/internal/input"
	"kickabout/internal/world"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	name  string
	level func() (*world.Level, error)
	input func(tick int) input.Snapshot
	each  func(f world.Frame) error // checked after every tick
	check func(f world.Frame) error // checked after the last tick
}

type result struct {
	frames []world.Frame
	err    error
}

func main() {
	levelPath := flag.String("level", "", "level file for the roam scenario (built-in level when empty)")
	ticks := flag.Int("ticks", 120, "ticks to simulate per scenario")
	every := flag.Int("every", 30, "log a frame every N ticks")
	only := flag.String("only", "", "comma separated scenario names to run")
	flag.Parse()

	if *ticks <= 0 || *every <= 0 {
		log.Fatal("ticks and every must be positive")
	}

	scenarios := filter(scenarios(*levelPath), *only)
	if len(scenarios) == 0 {
		log.Fatalf("No scenario matches %q", *only)
	}

	// Every scenario owns its world, so they can run side by side. The first
	// failure cancels the rest.
	results := make([]result, len(scenarios))
	g, ctx := errgroup.WithContext(context.Background())
	for i, s := range scenarios {
		g.Go(func() error {
			frames, err := run(ctx, s, *ticks, *every)
			results[i] = result{frames: frames, err: err}
			if err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("Stopping early: %v", err)
	}

	failed := 0
	for i, s := range scenarios {
		fmt.Printf("== %s\n", s.name)
		for _, f := range results[i].frames {
			fmt.Println(formatFrame(f))
		}
		if err := results[i].err; err != nil {
			fmt.Printf("   FAIL: %v\n", err)
			failed++
		} else {
			fmt.Println("   ok")
		}
	}

	if failed > 0 {
		log.Printf("%d of %d scenarios failed", failed, len(scenarios))
		os.Exit(1)
	}
}

func run(ctx context.Context, s scenario, ticks, every int) ([]world.Frame, error) {
	level, err := s.level()
	if err != nil {
		return nil, err
	}
	w, err := world.New(level)
	if err != nil {
		return nil, err
	}

	var frames []world.Frame
	var f world.Frame
	for tick := 0; tick < ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		f = w.Step(s.input(tick), world.NominalTimestep)
		if (tick+1)%every == 0 {
			frames = append(frames, f)
		}
		if s.each != nil {
			if err := s.each(f); err != nil {
				return frames, err
			}
		}
	}

	if s.check != nil {
		return frames, s.check(f)
	}
	return frames, nil
}

func filter(all []scenario, only string) []scenario {
	if only == "" {
		return all
	}
	want := make(map[string]bool)
	for _, name := range strings.Split(only, ",") {
		want[strings.TrimSpace(name)] = true
	}

	var picked []scenario
	for _, s := range all {
		if want[s.name] {
			picked = append(picked, s)
		}
	}
	return picked
}

func formatFrame(f world.Frame) string {
	p := f.CharacterPosition
	b := f.BallPosition
	return fmt.Sprintf("   t=%4d char=(%6.2f %5.2f %6.2f) yaw=%5.2f grounded=%-5v ball=(%6.2f %5.2f %6.2f) collected=%d",
		f.Tick, p.X, p.Y, p.Z, f.CharacterYaw, f.Grounded, b.X, b.Y, b.Z, f.Collected)
}
