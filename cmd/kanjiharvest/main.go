package main

import (
	"flag"
	"fmt"
	"os"

	"kanjigen/pkg/dataset"
	"kanjigen/pkg/harvest"
)

func main() {
	level := flag.Int("n", 2, "JLPT level to scrape (1-5)")
	visible := flag.Bool("visible", false, "show the browser window instead of running headless")
	flag.Parse()

	if *level < 1 || *level > 5 {
		fmt.Fprintf(os.Stderr, "invalid level %d: must be 1-5\n", *level)
		os.Exit(1)
	}

	cfg := harvest.Config{Level: *level, Headless: !*visible}
	entries, err := harvest.Harvest(cfg, func(format string, args ...any) {
		fmt.Printf(format, args...)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "harvest failed: %v\n", err)
		os.Exit(1)
	}

	records := make([]dataset.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Record())
	}
	if err := dataset.Save(cfg.OutputFile(), records); err != nil {
		fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("scraped %d kanji to %s\n", len(records), cfg.OutputFile())
}
