// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/picfuzzy/chart"
	"github.com/katalvlaran/picfuzzy/distance"
	"github.com/katalvlaran/picfuzzy/pfs"
	"github.com/katalvlaran/picfuzzy/report"
	"github.com/katalvlaran/picfuzzy/scenario"
)

// handler runs a parsed command, writing its result to w.
type handler func(w io.Writer) error

// command registers itself on the application and returns its handler.
type command func(*kingpin.Application) (*kingpin.CmdClause, handler)

var commands = []command{demoCommand, compareCommand, showCommand, plotCommand, classifyCommand}

// demoPairCount is the number of leading demo pairs shown as the comparison
// table; the remaining pairs are the paper examples.
const demoPairCount = 3

var heading = color.New(color.Bold, color.FgCyan)

func demoCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("demo", "run the built-in worked examples")

	return cmd, runDemo
}

func compareCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("compare", "compare every pair of a scenario under all measures")
	file := cmd.Arg("file", "scenario YAML file").Required().ExistingFile()
	format := cmd.Flag("format", "output format").Default("table").Enum("table", "csv")
	precision := cmd.Flag("precision", "decimals to print").Default("6").Int()

	return cmd, func(w io.Writer) error { return runCompare(w, *file, *format, *precision) }
}

func showCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("show", "print one set of a scenario")
	file := cmd.Arg("file", "scenario YAML file").Required().ExistingFile()
	name := cmd.Arg("set", "set name").Required().String()

	return cmd, func(w io.Writer) error { return runShow(w, *file, *name) }
}

func plotCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("plot", "render one set as a grouped bar chart (PNG)")
	file := cmd.Arg("file", "scenario YAML file").Required().ExistingFile()
	name := cmd.Arg("set", "set name").Required().String()
	out := cmd.Flag("out", "output PNG file").Short('o').Default("chart.png").String()
	title := cmd.Flag("title", "chart title (defaults to the set name)").String()
	width := cmd.Flag("width", "image width in pixels").Default("800").Int()
	height := cmd.Flag("height", "image height in pixels").Default("480").Int()

	return cmd, func(w io.Writer) error {
		return runPlot(w, *file, *name, *out, *title, *width, *height)
	}
}

func classifyCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("classify", "assign a sample set to the nearest pattern")
	file := cmd.Arg("file", "scenario YAML file").Required().ExistingFile()
	sample := cmd.Arg("sample", "name of the sample set").Required().String()
	patterns := cmd.Arg("patterns", "pattern set names (default: every other set of the same length)").Strings()
	measure := cmd.Flag("measure", "distance measure").Default("pfhd").Enum("pfhd", "hamming", "euclidean")

	return cmd, func(w io.Writer) error { return runClassify(w, *file, *sample, *patterns, *measure) }
}

func runDemo(w io.Writer) error {
	sc, err := scenario.Demo()
	if err != nil {
		return err
	}
	pairs := sc.Pairs()
	logrus.WithFields(logrus.Fields{"sets": len(sc.Names()), "pairs": len(pairs)}).Debug("loaded demo scenario")

	heading.Fprintln(w, "=== PICTURE FUZZY HELLINGER DISTANCE CALCULATOR ===")
	fmt.Fprintln(w)
	for _, name := range []string{"P1", "P2"} {
		s, err := sc.Set(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\n%s\n", name, s)
	}

	heading.Fprintln(w, "Distances between P1 and P2:")
	p1, p2 := pairs[0].A, pairs[0].B
	for _, m := range distance.Measures() {
		d, err := m.Func()(p1, p2)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s Distance: %.6f\n", m, d)
	}
	fmt.Fprintln(w)

	heading.Fprintln(w, "Comparison of several pairs:")
	rows, err := report.Compare(pairs[:demoPairCount])
	if err != nil {
		return err
	}
	if err := report.WriteTable(w, rows, report.DefaultPrecision); err != nil {
		return err
	}
	fmt.Fprintln(w)

	heading.Fprintln(w, "Paper examples 4.3 and 4.4:")
	for _, p := range pairs[demoPairCount:] {
		d, err := distance.PFHD(p.A, p.B)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "PFHD Distance %s: %.6f\n", p.Name, d)
	}

	return nil
}

func runCompare(w io.Writer, file, format string, precision int) error {
	sc, err := load(file)
	if err != nil {
		return err
	}
	rows, err := report.Compare(sc.Pairs())
	if err != nil {
		return err
	}
	if precision < 0 {
		return fmt.Errorf("precision must be non-negative, got %d", precision)
	}

	if format == "csv" {
		return report.WriteCSV(w, rows, precision)
	}

	return report.WriteTable(w, rows, precision)
}

func runShow(w io.Writer, file, name string) error {
	s, err := loadSet(file, name)
	if err != nil {
		return err
	}
	heading.Fprintln(w, name)
	_, err = fmt.Fprint(w, s)

	return err
}

func runPlot(w io.Writer, file, name, out, title string, width, height int) error {
	s, err := loadSet(file, name)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	if title == "" {
		title = name
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := chart.WritePNG(f, s, chart.WithTitle(title), chart.WithSize(width, height)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"set": name, "file": out}).Debug("chart written")
	fmt.Fprintf(w, "wrote %s\n", out)

	return nil
}

func runClassify(w io.Writer, file, sampleName string, patternNames []string, measureName string) error {
	sc, err := load(file)
	if err != nil {
		return err
	}
	measure, err := distance.ParseMeasure(measureName)
	if err != nil {
		return err
	}
	sampleName = scenario.Normalize(sampleName)
	sample, err := sc.Set(sampleName)
	if err != nil {
		return err
	}

	if len(patternNames) == 0 {
		patternNames = defaultPatterns(sc, sampleName, sample.Len())
		if len(patternNames) == 0 {
			return fmt.Errorf("%w: no other set has %d elements", distance.ErrNoPatterns, sample.Len())
		}
		logrus.WithField("patterns", patternNames).Debug("using every set of matching length")
	}
	patterns := make([]*pfs.Set, 0, len(patternNames))
	for _, n := range patternNames {
		p, err := sc.Set(n)
		if err != nil {
			return err
		}
		if p.Len() != sample.Len() {
			return fmt.Errorf("pattern %q: %w: %d != %d", n, distance.ErrLengthMismatch, p.Len(), sample.Len())
		}
		patterns = append(patterns, p)
	}

	idx, d, err := distance.Nearest(sample, patterns, measure.Func())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s is nearest to %s (%s = %.6f)\n", sampleName, patternNames[idx], measure, d)

	return nil
}

// defaultPatterns lists every set other than the sample with n elements.
func defaultPatterns(sc *scenario.Scenario, sampleName string, n int) []string {
	var names []string
	for _, name := range sc.Names() {
		if name == sampleName {
			continue
		}
		if s, err := sc.Set(name); err == nil && s.Len() == n {
			names = append(names, name)
		}
	}

	return names
}

func load(file string) (*scenario.Scenario, error) {
	sc, err := scenario.LoadFile(file)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"file": file, "sets": len(sc.Names())}).Debug("loaded scenario")

	return sc, nil
}

func loadSet(file, name string) (*pfs.Set, error) {
	sc, err := load(file)
	if err != nil {
		return nil, err
	}

	return sc.Set(name)
}
