// Package harvest scrapes kanji study data from jlptstudy.net with a
// headless browser. It is a best-effort data producer: entries whose DOM
// pieces are missing are skipped, never retried, and a structural change
// on the site yields fewer records rather than an error.
package harvest

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"kanjigen/pkg/dataset"
	"kanjigen/pkg/kanji"
)

// Selectors for the study site's kanji list page. Any change to the site's
// structure shows up here first.
const (
	selBox         = "#kanji-body .kanji-box"
	selData        = "#kanji-body #kanji-data"
	selChar        = "#kanji-body #kanji-data .data-header .char"
	selMeaning     = "#kanji-body #kanji-data .data-header .meaning"
	selReading     = "#kanji-body .reading"
	selCompound    = "#kanji-body .compound"
	selWord        = ".char"
	selKana        = ".kana"
	selTranslation = ".translation"
)

// settleDelay gives the detail panel time to populate after a click.
const settleDelay = 500 * time.Millisecond

// Entry is one scraped kanji record, still structured. Record flattens it
// to the CSV wire shape the renderer parses back.
type Entry struct {
	Kanji     string
	Meaning   string
	Readings  []string
	Compounds []kanji.Compound
}

// Record flattens the entry into one CSV row: readings joined with "; ",
// compounds serialized as "word (reading) = gloss" joined with "; ".
func (e Entry) Record() dataset.Record {
	parts := make([]string, 0, len(e.Compounds))
	for _, c := range e.Compounds {
		parts = append(parts, fmt.Sprintf("%s (%s) = %s", c.Word, c.Reading, c.Gloss))
	}
	return dataset.Record{
		Kanji:     e.Kanji,
		Meaning:   e.Meaning,
		Readings:  strings.Join(e.Readings, "; "),
		Compounds: strings.Join(parts, "; "),
	}
}

// Config selects the JLPT level and browser mode.
type Config struct {
	Level    int  // 1..5
	Headless bool // false opens a visible browser window
	URL      string
}

// PageURL returns the kanji-list page for the configured level.
func (c Config) PageURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("https://www.jlptstudy.net/N%d/?kanji-list", c.Level)
}

// OutputFile is the conventional dataset name for the configured level.
func (c Config) OutputFile() string {
	return fmt.Sprintf("kanji_n%d.csv", c.Level)
}

// Harvest opens the level's kanji list, clicks through every entry box and
// extracts the detail panel's fields. It fails only when the browser or
// the page itself cannot be opened; per-entry problems skip that entry.
// Progress lines go to the given printf-style logf (nil for silence).
func Harvest(cfg Config, logf func(format string, args ...any)) ([]Entry, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	u, err := launcher.New().Headless(cfg.Headless).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: cfg.PageURL()})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.PageURL(), err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.PageURL(), err)
	}

	boxes, err := page.Elements(selBox)
	if err != nil {
		return nil, fmt.Errorf("find kanji boxes: %w", err)
	}
	logf("found %d kanji boxes\n", len(boxes))

	var entries []Entry
	for i, box := range boxes {
		entry, ok := scrapeOne(page, box)
		if !ok {
			logf("skipped kanji %d/%d\n", i+1, len(boxes))
			continue
		}
		entries = append(entries, entry)
		if (i+1)%10 == 0 {
			logf("completed %d/%d kanji\n", i+1, len(boxes))
		}
	}
	return entries, nil
}

// scrapeOne clicks a list box and reads the detail panel. Any missing
// element makes the whole entry a skip; there is no partial-record
// completion.
func scrapeOne(page *rod.Page, box *rod.Element) (Entry, bool) {
	if err := box.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return Entry{}, false
	}
	time.Sleep(settleDelay)

	if has, _, err := page.Has(selData); err != nil || !has {
		return Entry{}, false
	}

	char, ok := elementText(page, selChar)
	if !ok || char == "" {
		return Entry{}, false
	}
	meaning, ok := elementText(page, selMeaning)
	if !ok {
		return Entry{}, false
	}

	entry := Entry{Kanji: char, Meaning: meaning}

	readings, err := page.Elements(selReading)
	if err == nil {
		for _, r := range readings {
			if text, err := r.Text(); err == nil {
				if text = strings.TrimSpace(text); text != "" {
					entry.Readings = append(entry.Readings, text)
				}
			}
		}
	}

	compounds, err := page.Elements(selCompound)
	if err == nil {
		for _, c := range compounds {
			word, okW := childText(c, selWord)
			kana, okK := childText(c, selKana)
			gloss, okG := childText(c, selTranslation)
			if okW && okK && okG && word != "" && kana != "" && gloss != "" {
				entry.Compounds = append(entry.Compounds, kanji.Compound{
					Word: word, Reading: kana, Gloss: gloss,
				})
			}
		}
	}
	return entry, true
}

func elementText(page *rod.Page, selector string) (string, bool) {
	has, el, err := page.Has(selector)
	if err != nil || !has {
		return "", false
	}
	text, err := el.Text()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(text), true
}

func childText(el *rod.Element, selector string) (string, bool) {
	has, child, err := el.Has(selector)
	if err != nil || !has {
		return "", false
	}
	text, err := child.Text()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(text), true
}
