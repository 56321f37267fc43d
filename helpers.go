package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/coordinator"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/rpc"
	"mandelbrot/task"
	"mandelbrot/worker"
)

const usage = "Usage: %s [flags] FILE PIXELS UPPERLEFT LOWERRIGHT LOWCOL HIGHCOL\n" +
	"Example: %s mandel.png 1000x750 -1.20,0.35 -1,0.20 0,0,0 255,255,255\n" +
	"         %s -settings zoom.json\n" +
	"         %s -serve :10000\n\nFlags:\n"

func parseArguments() []string {
	flag.StringVar(&blendSpace, "blend", "rgb", "Color space the gradient blends in: rgb, lab, hcl or luv")
	flag.BoolVar(&debug, "debug", false, "Log every band and frame")
	flag.UintVar(&maxIterations, "iterations", uint(mandelbrot.DefaultMaxIterations), "Iterations to run before a point is presumed to be in the set")
	flag.StringVar(&remoteAddress, "remote", "", "Render on the server at this address instead of locally")
	flag.StringVar(&serveAddress, "serve", "", "Serve render requests at this address until interrupted")
	flag.StringVar(&settingsFile, "settings", "", "Json file describing the run, replaces the positional arguments")
	flag.StringVar(&strategy, "strategy", "ceil", "How rows are split between workers: ceil or slack")
	flag.IntVar(&superSampling, "supersample", 1, "Render at this multiple of the resolution and scale down")
	flag.StringVar(&transport, "transport", rpc.TCP, "Transport for -serve and -remote: tcp or http")
	flag.IntVar(&workerCount, "workers", 0, "Number of bands rendered in parallel, defaults to the number of CPUs")

	flag.Usage = func() {
		name := os.Args[0]
		fmt.Fprintf(flag.CommandLine.Output(), usage, name, name, name, name)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if serveAddress != "" || settingsFile != "" {
		if len(args) != 0 {
			flag.Usage()
			os.Exit(1)
		}
		return args
	}
	if len(args) != 6 {
		flag.Usage()
		os.Exit(1)
	}
	return args
}

// buildSettings turns the settings file or the positional arguments into coordinator settings.
// Flags given on the command line override the file.
func buildSettings(logger *bslogger.Logger, args []string) coordinator.Settings {
	var settings coordinator.Settings
	if settingsFile != "" {
		var err error
		settings, err = coordinator.NewSettings(settingsFile)
		misc.CheckError(err, logger, misc.Fatal)
	} else {
		settings = parsePositional(logger, args)
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	ws := &settings.WorkerSettings
	if settingsFile == "" || explicit["blend"] {
		space, err := mandelbrot.ParseBlendSpace(blendSpace)
		misc.CheckError(err, logger, misc.Fatal)
		ws.MandelbrotSettings.BlendSpace = space
	}
	if settingsFile == "" || explicit["iterations"] {
		limit, err := iterationLimit(maxIterations)
		misc.CheckError(err, logger, misc.Fatal)
		ws.MandelbrotSettings.MaxIterations = limit
	}
	if settingsFile == "" || explicit["strategy"] {
		s, err := task.ParseStrategy(strategy)
		misc.CheckError(err, logger, misc.Fatal)
		ws.Strategy = s
	}
	if settingsFile == "" || explicit["workers"] {
		ws.WorkerCount = workerCount
	}
	if settingsFile == "" || explicit["supersample"] {
		settings.SuperSampling = superSampling
	}
	if explicit["remote"] {
		settings.RemoteAddress = remoteAddress
	}
	if explicit["transport"] {
		settings.RemoteTransport = transport
	}
	if explicit["debug"] {
		ws.Debug = debug
	}

	misc.CheckError(settings.Verify(), logger, misc.Fatal)
	return settings
}

// iterationLimit narrows the -iterations flag to the iteration counter's width.
func iterationLimit(n uint) (uint32, error) {
	if uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("iterations %d exceeds the maximum of %d", n, uint32(math.MaxUint32))
	}
	return uint32(n), nil
}

func parsePositional(logger *bslogger.Logger, args []string) coordinator.Settings {
	width, height, ok := misc.ParseBounds(args[1])
	if !ok {
		logger.Fatalf("Error parsing image dimensions %q, expected WIDTHxHEIGHT", args[1])
	}
	upperLeft := parsePoint(logger, args[2], "upper left corner")
	lowerRight := parsePoint(logger, args[3], "lower right corner")
	low := parseColor(logger, args[4], "low color")
	high := parseColor(logger, args[5], "high color")

	return coordinator.Settings{
		Bounds:     mandelbrot.Bounds{Width: width, Height: height},
		OutputFile: args[0],
		Rectangle:  mandelbrot.Rectangle{UpperLeft: upperLeft, LowerRight: lowerRight},
		WorkerSettings: worker.Settings{
			MandelbrotSettings: mandelbrot.Settings{HighColor: high, LowColor: low},
		},
	}
}

func parsePoint(logger *bslogger.Logger, s string, name string) mandelbrot.Point {
	re, im, ok := misc.ParseComplex(s)
	if !ok {
		logger.Fatalf("Error parsing %s %q, expected RE,IM", name, s)
	}
	return mandelbrot.Point{Re: re, Im: im}
}

func parseColor(logger *bslogger.Logger, s string, name string) mandelbrot.Color {
	c, ok := misc.ParseColor(s)
	if !ok {
		logger.Fatalf("Error parsing %s %q, expected R,G,B or #rrggbb", name, s)
	}
	return fromRGBA(c)
}

func fromRGBA(c color.RGBA) mandelbrot.Color {
	return mandelbrot.Color{R: c.R, G: c.G, B: c.B}
}
