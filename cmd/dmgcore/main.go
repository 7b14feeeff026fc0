package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gz, .xz, .zip or .7z)")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	frames := flag.Int("frames", 60, "The number of frames to run for")
	out := flag.String("out", "", "Save the last frame to this file (.png or .bmp)")
	scale := flag.Int("scale", 1, "The scale factor of the saved frame")
	paletteName := flag.String("palette", "greyscale", "The palette to render with. Can be greyscale, green, red or yellow")
	hold := flag.String("hold", "", "Comma separated buttons to hold down, e.g. start,a")
	debug := flag.Bool("debug", false, "Enable debug logging")
	skipValidation := flag.Bool("skip-validation", false, "Accept cartridges with an invalid header")
	flag.Parse()

	logger := log.NewWithWriter(os.Stderr, *debug)

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatal(err.Error())
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Fatal(err.Error())
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	scheme, ok := palette.ByName(*paletteName)
	if !ok {
		logger.Fatal(fmt.Sprintf("unknown palette %q", *paletteName))
	}
	opts = append(opts, gameboy.WithPalette(scheme))
	if *skipValidation {
		opts = append(opts, gameboy.SkipHeaderValidation())
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if *hold != "" {
		for _, name := range strings.Split(*hold, ",") {
			button, ok := joypad.ButtonByName(strings.TrimSpace(strings.ToLower(name)))
			if !ok {
				logger.Fatal(fmt.Sprintf("unknown button %q", name))
			}
			gb.Press(button)
		}
	}

	var frame []uint32
	for i := 0; i < *frames; i++ {
		frame, err = gb.Frame()
		if err != nil {
			logger.Errorf("stopped after %d frames: %s", i+1, err)
			break
		}
	}

	fmt.Printf("%016x\n", utils.FrameHash(frame))

	if *out != "" && frame != nil {
		img := utils.ScaleImage(utils.FrameToImage(frame, ppu.ScreenWidth), *scale)
		if err := utils.SaveImage(img, *out); err != nil {
			logger.Fatal(err.Error())
		}
		logger.Infof("saved frame to %s", *out)
	}
}
