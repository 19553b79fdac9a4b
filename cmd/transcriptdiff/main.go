// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// transcriptdiff shows how a cleaned up transcript differs from the verbatim transcription.
//
// Usage:
//
//	transcriptdiff [flags] -raw FILE -cleaned FILE
//	transcriptdiff [flags] -entry FILE.json
//
// Deleted words are struck through, inserted words are highlighted. With -context, only segments
// with changes are shown, together with the given number of unchanged segments around them.
// -view unified prints a unified diff with one line per segment instead.
//
// With -select START:END, the text a user selected in the rendered diff of a segment is printed
// instead, without any of the deleted words. START and END are byte offsets into the unstyled and
// unwrapped text of the segment: all words of the inline view in order, without colors, [-/{+
// markers or line breaks. Offsets outside of that text are clamped.
//
// Settings can also be stored in $XDG_CONFIG_HOME/transcriptdiff/config.yaml:
//
//	view: split
//	color: always
//	colors:
//	  deleted: [9, 31]
//	  inserted: [1, 32]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	udiff "github.com/aymanbagabas/go-udiff"
	"golang.org/x/term"
	"znkr.io/transcriptdiff"
	"znkr.io/transcriptdiff/internal/config"
	"znkr.io/transcriptdiff/internal/debuglog"
	"znkr.io/transcriptdiff/internal/hunks"
	"znkr.io/transcriptdiff/internal/transcript"
	"znkr.io/transcriptdiff/render"
)

var errNoSelection = errors.New("no valid selection")

type flags struct {
	raw, cleaned, entry string

	view     string
	width    int
	color    string
	context  int
	maxCells int

	segment   int
	selection string
	reverted  bool
	noDiff    bool

	configPath string
	noConfig   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var f flags
	fs := flag.NewFlagSet("transcriptdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.raw, "raw", "", "file with the verbatim transcript")
	fs.StringVar(&f.cleaned, "cleaned", "", "file with the cleaned up transcript")
	fs.StringVar(&f.entry, "entry", "", "JSON file with a transcript entry or a core API response")
	fs.StringVar(&f.view, flagNameView, "inline", "display mode: inline, split or unified")
	fs.IntVar(&f.width, flagNameWidth, 0, "output width in terminal cells, 0 to use the terminal width")
	fs.StringVar(&f.color, flagNameColor, "auto", "use colors: auto, always or never")
	fs.IntVar(&f.context, flagNameContext, -1, "if >= 0, only show changed segments with this many unchanged segments around them")
	fs.IntVar(&f.maxCells, flagNameMaxCells, config.Default.MaxCells, "size limit of the alignment table before falling back to Myers' algorithm")
	fs.IntVar(&f.segment, "segment", 0, "segment to apply -select to")
	fs.StringVar(&f.selection, "select", "", "print the text selected in the byte range START:END of a segment")
	fs.BoolVar(&f.reverted, "reverted", false, "the segment is displayed as raw text (with -select)")
	fs.BoolVar(&f.noDiff, "no-diff", false, "the segment is displayed as cleaned text without diff (with -select)")
	fs.StringVar(&f.configPath, "config", "", "path to YAML config file")
	fs.BoolVar(&f.noConfig, "no-config", false, "disable config file loading")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected command line arguments: %v", fs.Args())
	}

	explicitlySet := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) {
		explicitlySet[fl.Name] = true
	})

	cfg, err := loadConfig(xdg.ConfigHome, f.configPath, f.noConfig)
	if err != nil {
		return err
	}
	cfg.apply(&f, explicitlySet)
	if err := validateView(f.view); err != nil {
		return err
	}
	if err := validateColor(f.color); err != nil {
		return err
	}

	entry, err := load(&f)
	if err != nil {
		return err
	}
	debuglog.Printf("loaded entry %q with %d segments", entry.ID, len(entry.Segments))

	if f.selection != "" {
		return printSelection(stdout, &f, entry)
	}
	if f.view == "unified" {
		return printUnified(stdout, entry)
	}

	isTTY, termWidth := terminal(stdout)
	var opts []transcriptdiff.Option
	switch {
	case f.width > 0:
		opts = append(opts, render.Width(f.width))
	case termWidth > 0:
		opts = append(opts, render.Width(termWidth))
	}
	if f.color == "never" || f.color == "auto" && !isTTY {
		opts = append(opts, render.Plain())
	} else if colors := cfg.colors(); colors != nil {
		opts = append(opts, colors)
	}
	return printDiff(stdout, &f, entry, opts)
}

// load reads the segments to compare, either from a single entry or from a pair of text files.
func load(f *flags) (transcript.Entry, error) {
	switch {
	case f.entry != "" && (f.raw != "" || f.cleaned != ""):
		return transcript.Entry{}, errors.New("-entry can't be combined with -raw or -cleaned")
	case f.entry != "":
		return transcript.Load(f.entry)
	case f.raw == "" || f.cleaned == "":
		return transcript.Entry{}, errors.New("either -entry or both -raw and -cleaned are required")
	}

	raw, err := os.ReadFile(f.raw)
	if err != nil {
		return transcript.Entry{}, fmt.Errorf("reading raw transcript: %w", err)
	}
	cleaned, err := os.ReadFile(f.cleaned)
	if err != nil {
		return transcript.Entry{}, fmt.Errorf("reading cleaned transcript: %w", err)
	}
	return transcript.Entry{
		Segments: []transcript.Segment{{
			ID:      "seg-0",
			Speaker: -1,
			Raw:     strings.TrimSuffix(string(raw), "\n"),
			Cleaned: strings.TrimSuffix(string(cleaned), "\n"),
		}},
	}, nil
}

func printDiff(w io.Writer, f *flags, entry transcript.Entry, opts []transcriptdiff.Option) error {
	tokens := make([][]transcriptdiff.Token, len(entry.Segments))
	changed := make([]bool, len(entry.Segments))
	for i, seg := range entry.Segments {
		tokens[i] = transcriptdiff.Compute(seg.Raw, seg.Cleaned, transcriptdiff.MaxCells(f.maxCells))
		for _, tok := range tokens[i] {
			if tok.Type != transcriptdiff.Unchanged {
				changed[i] = true
				break
			}
		}
	}

	hs := hunks.Find(changed, f.context)
	if debuglog.Enabled() {
		var ids []string
		for i, c := range changed {
			if c {
				ids = append(ids, entry.Segments[i].ID)
			}
		}
		debuglog.Printf("showing %d hunks with context %d, changed segments: %s", len(hs), f.context, strings.Join(ids, ", "))
	}
	headers := f.entry != ""
	for n, h := range hs {
		if n > 0 {
			fmt.Fprintln(w, "...")
		}
		for i := h.Start; i < h.End; i++ {
			seg := entry.Segments[i]
			if headers {
				fmt.Fprintf(w, "[#%d %s-%s]\n", i, seconds(seg.Start), seconds(seg.End))
			}
			switch f.view {
			case "split":
				for _, line := range render.SideBySide(seg.Raw, tokens[i], opts...) {
					fmt.Fprintln(w, line)
				}
			default:
				fmt.Fprintln(w, render.Inline(tokens[i], opts...))
			}
		}
	}
	return nil
}

// printUnified writes a unified diff with one line per segment, for tools that review patches.
func printUnified(w io.Writer, entry transcript.Entry) error {
	var raw, cleaned strings.Builder
	for _, seg := range entry.Segments {
		raw.WriteString(transcriptdiff.Normalize(seg.Raw) + "\n")
		cleaned.WriteString(transcriptdiff.Normalize(seg.Cleaned) + "\n")
	}
	_, err := io.WriteString(w, udiff.Unified("raw", "cleaned", raw.String(), cleaned.String()))
	return err
}

func printSelection(w io.Writer, f *flags, entry transcript.Entry) error {
	if f.segment < 0 || f.segment >= len(entry.Segments) {
		return fmt.Errorf("segment %d out of range, the transcript has %d segments", f.segment, len(entry.Segments))
	}
	start, end, err := parseRange(f.selection)
	if err != nil {
		return err
	}

	seg := entry.Segments[f.segment]
	tokens := transcriptdiff.Group(transcriptdiff.Compute(seg.Raw, seg.Cleaned, transcriptdiff.MaxCells(f.maxCells)))
	v := transcriptdiff.NewView(tokens)

	// The text the selection was made in depends on how the segment is displayed.
	displayed := v.Text
	switch {
	case f.reverted:
		displayed = seg.Raw
	case f.noDiff:
		displayed = seg.Cleaned
	}
	sel := transcriptdiff.NewSelection(displayed, start, end)

	text, ok := transcriptdiff.FilterSelection(v, sel, !f.noDiff, f.reverted)
	if !ok {
		return errNoSelection
	}
	fmt.Fprintln(w, text)
	return nil
}

func parseRange(s string) (start, end int, err error) {
	a, b, ok := strings.Cut(s, ":")
	if ok {
		start, err = strconv.Atoi(a)
	}
	if ok && err == nil {
		end, err = strconv.Atoi(b)
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("invalid selection %q, want START:END", s)
	}
	return start, end, nil
}

func seconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// terminal reports whether w is a terminal and, if it is, its width.
func terminal(w io.Writer) (isTTY bool, width int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		debuglog.Printf("getting terminal size: %v", err)
		return true, 0
	}
	return true, width
}
