// Command regiondump renders the minimap right-click region of a frozen
// client layout to a PNG, for checking the overlap lists by eye.
//
//	regiondump -scale 4 -o fixed.png layout.json
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/minimaparea"
)

func main() {
	var (
		scale  int
		output string
	)
	flag.IntVar(&scale, "scale", 4, "Pixel scale of the output image")
	flag.StringVar(&output, "o", "region.png", "Output PNG path")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: regiondump [options] <layout.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	l, err := loadLayout(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load layout")
	}

	mode := minimaparea.CurrentMode(l)
	region, base, ok := minimaparea.Compute(mode, l.Widget)
	if !ok {
		log.Fatal().Stringer("mode", mode).Msg("Minimap widget is missing or hidden in this layout")
	}

	f, err := os.Create(output)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create output")
	}
	defer f.Close()

	if err := png.Encode(f, renderMask(region, scale)); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode PNG")
	}

	log.Info().
		Stringer("mode", mode).
		Stringer("base", base).
		Int("holes", len(region.Holes())).
		Str("output", output).
		Msg("Region written")
}
