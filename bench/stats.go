// SPDX-License-Identifier: Unlicense OR MIT

package bench

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Result is the aggregate of one scenario.
type Result struct {
	Scenario Scenario
	// Samples is the number of queries issued, warmup included.
	Samples int
	// Measured is the number of samples left after trimming.
	Measured int
	Pixels   int

	// Total is the summed GPU time of the measured samples.
	Total time.Duration
	// PerDraw is the time of one full-screen triangle, truncated to
	// whole nanoseconds.
	PerDraw time.Duration
	// PerMegapixel is PerDraw scaled to one million pixels.
	PerMegapixel time.Duration
	// PerPixel is PerDraw divided by the pixel count, in nanoseconds.
	PerPixel float64

	// Spread of the measured samples, per sample.
	Min, Median, P95, Max time.Duration
	StdDev                time.Duration
}

// Summarize trims warmup samples from both ends of samples, which
// must be in submission order, and derives the per-draw and per-pixel
// times of the remainder.
func Summarize(sc Scenario, samples []time.Duration, warmup, pixels int) (Result, error) {
	if warmup < 0 {
		return Result{}, errors.Errorf("negative warmup %d", warmup)
	}
	if sc.Draws <= 0 {
		return Result{}, errors.Errorf("scenario %q: draw count must be positive, got %d", sc.ID, sc.Draws)
	}
	if pixels <= 0 {
		return Result{}, errors.Errorf("pixel count must be positive, got %d", pixels)
	}
	if len(samples) <= 2*warmup {
		return Result{}, errors.Errorf("scenario %q: %d samples leave nothing after trimming %d warmup samples at each end", sc.ID, len(samples), warmup)
	}
	window := samples[warmup : len(samples)-warmup]
	r := Result{
		Scenario: sc,
		Samples:  len(samples),
		Measured: len(window),
		Pixels:   pixels,
	}
	for _, d := range window {
		r.Total += d
	}
	draws := time.Duration(len(window) * sc.Draws)
	r.PerDraw = r.Total / draws
	r.PerMegapixel = r.PerDraw * 1000 * 1000 / time.Duration(pixels)
	r.PerPixel = float64(r.Total) / float64(draws) / float64(pixels)

	sorted := slices.Clone(window)
	slices.Sort(sorted)
	r.Min = sorted[0]
	r.Max = sorted[len(sorted)-1]
	r.Median = percentile(sorted, 50)
	r.P95 = percentile(sorted, 95)

	xs := make([]float64, len(window))
	for i, d := range window {
		xs[i] = float64(d)
	}
	if len(xs) > 1 {
		_, std := stat.MeanStdDev(xs, nil)
		r.StdDev = time.Duration(math.Round(std))
	}
	return r, nil
}

// percentile uses the nearest-rank method on sorted samples.
func percentile(sorted []time.Duration, p float64) time.Duration {
	idx := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
