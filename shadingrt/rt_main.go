package main

import (
	"flag"
	"os"

	"github.com/gekko3d/directlight"
	"github.com/gekko3d/directlight/shadingrt/rt/app"
)

func main() {
	configPath := flag.String("config", "", "JSON settings file (defaults when empty)")
	outPath := flag.String("out", "chart.png", "Output PNG path")
	debug := flag.Bool("debug", false, "Enable debug logging and stage timings")
	flag.Parse()

	logger := directlight.NewDefaultLogger("shadingrt", *debug)

	settings := app.DefaultSettings()
	if *configPath != "" {
		s, err := app.LoadSettings(*configPath)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		settings = s
	}

	prof := app.NewProfiler()
	chart, err := app.RenderChart(settings, logger, prof)
	if err != nil {
		logger.Errorf("render failed: %v", err)
		os.Exit(1)
	}
	if err := chart.WritePNG(*outPath); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	logger.Infof("wrote %s (%dx%d)", *outPath, chart.Image.Bounds().Dx(), chart.Image.Bounds().Dy())
	if logger.DebugEnabled() {
		logger.Debugf("\n%s", prof.String())
	}
}
