package main

import (
	"flag"
	"fmt"
	"image/gif"
	"log"
	"os"
	"runtime"

	"driftfield/internal/app"
	"driftfield/internal/capture"
	"driftfield/internal/core"
	"driftfield/internal/field"
	"driftfield/internal/stage"
)

func main() {
	log.SetPrefix("driftfield: ")
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 480, 270
	cfg.Bind(flag.CommandLine)

	opts := capture.DefaultOptions()
	flag.IntVar(&opts.Frames, "frames", opts.Frames, "GIF frames to write")
	flag.IntVar(&opts.Every, "every", opts.Every, "stage frames per GIF frame")
	flag.IntVar(&opts.Delay, "delay", opts.Delay, "GIF frame delay in 1/100 s")
	out := flag.String("out", "driftfield.gif", "output GIF path")
	sweep := flag.Bool("sweep", false, "run every preset headless instead of recording")
	seeds := flag.Int("seeds", 4, "seeds per preset in sweep mode")
	ticks := flag.Int("ticks", 600, "ticks per run in sweep mode")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs in sweep mode")
	flag.Parse()

	settings, err := cfg.Settings()
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	if *sweep {
		list := make([]int64, *seeds)
		for i := range list {
			list[i] = settings.Field.Seed + int64(i)
		}
		rows, err := capture.Sweep(field.PresetNames(), list, *ticks, *workers)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(capture.Table(fmt.Sprintf("sweep: %d ticks per run", *ticks), rows))
		return
	}

	st := stage.New(settings, core.Size{W: cfg.Width, H: cfg.Height})
	anim, sum := capture.Record(st, opts)
	if err := writeGIF(*out, anim); err != nil {
		log.Fatal(err)
	}
	fmt.Println(capture.Table("wrote "+*out, []capture.Summary{sum}))
	fmt.Print(capture.Parameters(st.Field.Parameters()))
}

func writeGIF(path string, anim *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
