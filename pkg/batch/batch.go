// Package batch drives the render pipeline over one input file: naming,
// sequencing and success/failure accounting.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kanjigen/pkg/dataset"
	"kanjigen/pkg/kanji"
	"kanjigen/pkg/render"
)

const dirPrefix = "JLPT"

// Result summarizes one batch run.
type Result struct {
	Succeeded int
	Failed    int
	OutputDir string
}

// OutputLabel derives the output directory and file-name label from the
// input file's base name. For "kanji_n2.csv" the substring after the first
// underscore is upper-cased, remaining underscores become hyphens, and the
// fixed prefix is applied: directory "JLPT-N2", label "JLPT_N2". Without
// an underscore the whole base name is used.
func OutputLabel(inputPath string) (dir, label string) {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	suffix := strings.ToUpper(base)
	if _, after, ok := strings.Cut(base, "_"); ok {
		suffix = strings.ReplaceAll(strings.ToUpper(after), "_", "-")
	}

	dir = dirPrefix + "-" + suffix
	label = dirPrefix + "_" + strings.ReplaceAll(suffix, "-", "_")
	return dir, label
}

// Run parses every record in the input file and renders one PNG per entry
// into the derived output directory, numbering files from 00001 in input
// order. A failed render is counted and skipped; it still consumes its
// sequence number, so the numbers of later entries stay aligned with
// their position in the batch.
func Run(inputPath string, width, height int, r *render.Renderer) (Result, error) {
	dir, label := OutputLabel(inputPath)
	res := Result{OutputDir: dir}

	records, err := dataset.Load(inputPath)
	if err != nil {
		return res, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}

	for i, rec := range records {
		entry := kanji.Parse(rec)
		name := fmt.Sprintf("%s_%05d.png", label, i+1)
		path := filepath.Join(dir, name)
		if err := r.RenderFile(entry, width, height, path); err != nil {
			fmt.Fprintf(os.Stderr, "failed %s (%s): %v\n", name, entry.Character, err)
			res.Failed++
			continue
		}
		res.Succeeded++
	}
	return res, nil
}
