package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kbinani/screenshot"

	"kanjigen/pkg/batch"
	"kanjigen/pkg/render"
)

// defaultInputs are tried in level order when no input file is given.
var defaultInputs = []string{
	"kanji_n1.csv",
	"kanji_n2.csv",
	"kanji_n3.csv",
	"kanji_n4.csv",
	"kanji_n5.csv",
}

func main() {
	width := flag.Int("width", 1920, "output image width in pixels")
	height := flag.Int("height", 1080, "output image height in pixels")
	display := flag.Bool("display", false, "use the active display's resolution instead of -width/-height")
	flag.Usage = usage
	flag.Parse()

	if *display {
		if screenshot.NumActiveDisplays() == 0 {
			fmt.Fprintln(os.Stderr, "no active display found, using explicit dimensions")
		} else {
			bounds := screenshot.GetDisplayBounds(0)
			*width, *height = bounds.Dx(), bounds.Dy()
			fmt.Printf("detected display resolution %dx%d\n", *width, *height)
		}
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		for _, name := range defaultInputs {
			if _, err := os.Stat(name); err == nil {
				inputs = append(inputs, name)
			}
		}
	}
	if len(inputs) == 0 {
		usage()
		os.Exit(1)
	}

	r := render.NewRenderer(render.DefaultConfig())
	exitCode := 0
	for _, input := range inputs {
		fmt.Printf("processing %s...\n", input)
		res, err := batch.Run(input, *width, *height, r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error processing %s: %v\n", input, err)
			exitCode = 1
			continue
		}
		fmt.Printf("created %d images, %d failed, output directory %s\n",
			res.Succeeded, res.Failed, res.OutputDir)
	}
	os.Exit(exitCode)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [kanji_csv_file...]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Renders one wallpaper PNG per kanji entry. Without arguments the")
	fmt.Fprintf(os.Stderr, "default files %v are processed when present.\n\n", defaultInputs)
	fmt.Fprintln(os.Stderr, "Expected CSV format:")
	fmt.Fprintln(os.Stderr, "  kanji,meaning,readings,compounds")
	fmt.Fprintln(os.Stderr, `  腕,"arm, ability, talent",ワン; うで,"右腕 (うわん) = right arm; 手腕 (しゅわん) = ability"`)
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}
