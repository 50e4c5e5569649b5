package main

import (
	"context"

	"github.com/katalvlaran/gridwalk/almanac"
	"github.com/katalvlaran/gridwalk/beam"
	"github.com/katalvlaran/gridwalk/config"
	"github.com/katalvlaran/gridwalk/cycle"
	"github.com/katalvlaran/gridwalk/garden"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/ctxlog"
	"github.com/katalvlaran/gridwalk/mirror"
	"github.com/katalvlaran/gridwalk/network"
	"github.com/katalvlaran/gridwalk/pipemaze"
	"github.com/katalvlaran/gridwalk/race"
	"github.com/katalvlaran/gridwalk/tilt"
	"github.com/katalvlaran/gridwalk/traverse"
)

func init() {
	register("pipe-farthest", pipeFarthest)
	register("pipe-enclosed", pipeEnclosed)
	register("beam", beamTopLeft)
	register("beam-max", beamMax)
	register("beam-walled", beamWalled)
	register("tilt", tiltNorth)
	register("tilt-spin", tiltSpin)
	register("garden", gardenReachable)
	register("mirror", mirrorSummary)
	register("mirror-smudge", mirrorSmudged)
	register("race", raceMargin)
	register("race-joined", raceJoined)
	register("network", networkSteps)
	register("network-ghost", networkGhost)
	register("almanac", almanacLowest)
	register("almanac-ranges", almanacRanges)
}

func pipeFarthest(ctx context.Context, _ config.Config, input string) (int64, error) {
	m, err := pipemaze.Parse(ctx, input)
	if err != nil {
		return 0, err
	}
	return int64(m.Farthest()), nil
}

func pipeEnclosed(ctx context.Context, _ config.Config, input string) (int64, error) {
	m, err := pipemaze.Parse(ctx, input)
	if err != nil {
		return 0, err
	}
	n, err := m.Enclosed()
	return int64(n), err
}

func beamTopLeft(ctx context.Context, _ config.Config, input string) (int64, error) {
	g, err := beam.Parse(input)
	if err != nil {
		return 0, err
	}
	n, err := beam.Energized(g, beam.TopLeft, traverse.WithContext(ctx))
	return int64(n), err
}

func beamWalled(ctx context.Context, _ config.Config, input string) (int64, error) {
	g, err := beam.ParseWalled(input)
	if err != nil {
		return 0, err
	}
	n, err := beam.Energized(g, beam.TopLeft, traverse.WithContext(ctx))
	return int64(n), err
}

func beamMax(ctx context.Context, _ config.Config, input string) (int64, error) {
	g, err := beam.Parse(input)
	if err != nil {
		return 0, err
	}
	n, at, err := beam.MaxEnergized(g, traverse.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Debug("beam: best entry", "state", at.String())
	return int64(n), nil
}

func tiltNorth(_ context.Context, _ config.Config, input string) (int64, error) {
	g, err := tilt.Parse(input)
	if err != nil {
		return 0, err
	}
	return int64(tilt.Load(tilt.Tilt(g, grid.Up))), nil
}

func tiltSpin(ctx context.Context, cfg config.Config, input string) (int64, error) {
	g, err := tilt.Parse(input)
	if err != nil {
		return 0, err
	}
	n, err := tilt.LoadAfter(ctx, g, cfg.TiltSpins, cycle.WithMinOccurrences(cfg.CycleMinOccurrences))
	return int64(n), err
}

func gardenReachable(_ context.Context, cfg config.Config, input string) (int64, error) {
	g, err := garden.Parse(input)
	if err != nil {
		return 0, err
	}
	n, err := garden.Reachable(g, cfg.GardenSteps)
	return int64(n), err
}

func mirrorSummary(_ context.Context, _ config.Config, input string) (int64, error) {
	patterns, err := mirror.ParsePatterns(input)
	if err != nil {
		return 0, err
	}
	n, err := mirror.Summarize(patterns, mirror.Reflection)
	return int64(n), err
}

func mirrorSmudged(_ context.Context, _ config.Config, input string) (int64, error) {
	patterns, err := mirror.ParsePatterns(input)
	if err != nil {
		return 0, err
	}
	n, err := mirror.Summarize(patterns, mirror.SmudgedReflection)
	return int64(n), err
}

func raceMargin(_ context.Context, _ config.Config, input string) (int64, error) {
	races, err := race.Parse(input)
	if err != nil {
		return 0, err
	}
	return race.Margin(races), nil
}

// raceJoined reports 0 when the single race cannot be won.
func raceJoined(ctx context.Context, _ config.Config, input string) (int64, error) {
	r, err := race.ParseJoined(input)
	if err != nil {
		return 0, err
	}
	w, ok := race.WinningHolds(r)
	if !ok {
		ctxlog.FromContext(ctx).Warn("race: no winning hold time", "time", r.Time, "record", r.Record)
		return 0, nil
	}
	return w.Count(), nil
}

func networkSteps(_ context.Context, _ config.Config, input string) (int64, error) {
	n, err := network.Parse(input)
	if err != nil {
		return 0, err
	}
	steps, err := n.Steps("AAA", network.IsEnd)
	return int64(steps), err
}

func networkGhost(_ context.Context, _ config.Config, input string) (int64, error) {
	n, err := network.Parse(input)
	if err != nil {
		return 0, err
	}
	steps, err := n.GhostSteps()
	return int64(steps), err
}

func almanacLowest(_ context.Context, _ config.Config, input string) (int64, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	return a.LowestLocation()
}

func almanacRanges(ctx context.Context, cfg config.Config, input string) (int64, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	return a.LowestInRanges(ctx, almanac.WithWorkers(cfg.Workers), almanac.WithChunkSize(cfg.ChunkSize))
}
