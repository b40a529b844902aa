// SPDX-License-Identifier: Unlicense OR MIT

package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Info describes the machine a run was measured on.
type Info struct {
	// OS is the bare operating system name of the table row.
	OS string
	// OSRelease is the kernel or build release, printed apart from
	// the table.
	OSRelease string
	Renderer  string
	Version   string
	Vendor    string
	GLSL      string
	// Width and Height are the framebuffer size in pixels.
	Width, Height int
	Scale         float32
}

func (i Info) Pixels() int {
	return i.Width * i.Height
}

func PrintInfo(w io.Writer, i Info) {
	fmt.Fprintf(w, "Renderer: %q\n", i.Renderer)
	fmt.Fprintf(w, "Version: %q\n", i.Version)
	fmt.Fprintf(w, "Screen: %dx%d resolution with %s hiDPI factor\n", i.Width, i.Height, formatScale(i.Scale))
	if i.OSRelease != "" {
		fmt.Fprintf(w, "OS: %s %s\n", i.OS, i.OSRelease)
	}
}

func PrintResult(w io.Writer, r Result) {
	fmt.Fprintf(w, "Tested '%s' with %d samples of %d instances\n", r.Scenario.Name, r.Samples, r.Scenario.Draws)
	fmt.Fprintf(w, "\tfull-screen time: %.2f ms\n", millis(r.PerDraw))
	fmt.Fprintf(w, "\tmega-pixel time: %d mcs\n", micros(r.PerMegapixel))
	fmt.Fprintf(w, "\tper sample: min %v, median %v, p95 %v, max %v, stddev %v\n",
		r.Min, r.Median, r.P95, r.Max, r.StdDev)
}

// TableRow formats a single row of the fill-rate results table:
//
//	| OS | version | renderer | resolution | hiDPI | color full-screen | clear | color | depth reject |
//
// Scenarios that did not run are printed as "-".
func TableRow(i Info, results []Result) string {
	byID := make(map[string]Result, len(results))
	for _, r := range results {
		byID[r.Scenario.ID] = r
	}
	fullscreen := "-"
	if r, ok := byID[ScenarioColor]; ok {
		fullscreen = fmt.Sprintf("%.2f ms", millis(r.PerDraw))
	}
	mp := func(id string) string {
		r, ok := byID[id]
		if !ok {
			return "-"
		}
		return fmt.Sprintf("%d mcs", micros(r.PerMegapixel))
	}
	cols := []string{
		i.OS,
		strconv.Quote(i.Version),
		strconv.Quote(i.Renderer),
		fmt.Sprintf("%dx%d", i.Width, i.Height),
		formatScale(i.Scale),
		fullscreen,
		mp(ScenarioClear),
		mp(ScenarioColor),
		mp(ScenarioReject),
	}
	return "| " + strings.Join(cols, " | ") + " |"
}

func PrintTable(w io.Writer, i Info, results []Result) {
	fmt.Fprintln(w, "Table entry:")
	fmt.Fprintln(w, TableRow(i, results))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func micros(d time.Duration) int64 {
	return int64(d / time.Microsecond)
}

func formatScale(s float32) string {
	return strconv.FormatFloat(float64(s), 'f', -1, 32)
}
