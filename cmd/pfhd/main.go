// SPDX-License-Identifier: MIT

// Command pfhd computes Picture Fuzzy Hellinger, Hamming and Euclidean
// distances between Picture Fuzzy Sets described in YAML scenario files.
//
//	pfhd demo
//	pfhd compare sets.yaml --format=csv
//	pfhd show sets.yaml P1
//	pfhd plot sets.yaml P1 --out=p1.png
//	pfhd classify sets.yaml sample --measure=hamming P1 P2 P3
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("pfhd", "Distance measures between Picture Fuzzy Sets.")
	app.HelpFlag.Short('h')
	verbose := app.Flag("verbose", "enable debug logging").Short('v').Bool()
	noColor := app.Flag("no-color", "disable coloured output").Bool()

	handlers := map[string]handler{}
	for _, register := range commands {
		cmd, h := register(app)
		handlers[cmd.FullCommand()] = h
	}

	selected := kingpin.MustParse(app.Parse(os.Args[1:]))
	configureOutput(*verbose, *noColor)

	if err := handlers[selected](os.Stdout); err != nil {
		logrus.WithField("command", selected).Error(err)
		os.Exit(1)
	}
}

// configureOutput sets up logging and colour for the process.
func configureOutput(verbose, noColor bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}
