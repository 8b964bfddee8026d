package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"neon-rain/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 240, "host frames to run before capturing")
	out := flag.String("out", "rain.png", "output PNG path")
	scale := flag.Float64("scale", 1, "output scale factor")
	flag.CommandLine.Usage = app.Usage(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "rain: ", log.LstdFlags)
	img, r, err := app.Snapshot(cfg, *frames, *scale, logger)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("encode %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	st := r.Stats()
	fmt.Printf("%s: %dx%d, %d columns, %d qualifying frames, state %s\n",
		*out, img.Bounds().Dx(), img.Bounds().Dy(), r.Columns(), st.Frames, r.State())
}
