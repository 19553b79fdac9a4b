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

// Package transcript loads transcript segments from the JSON documents of the transcription
// service.
//
// Two document shapes are understood. A core API response holds the raw transcription in
// "transcription.segments" and the cleaned segments in "cleanup.cleaned_segments", paired by
// position. An entry holds the raw segments in "primary_transcription.segments" and refers to them
// from every cleaned segment with "raw_segment_id"; manual edits in "cleanup.cleanup_data_edited"
// take precedence over the generated cleanup.
package transcript

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON")
	ErrUnknownFormat = errors.New("neither an entry nor a core API response")
)

// Entry is a transcript split into segments.
type Entry struct {
	ID       string
	Segments []Segment
}

// Segment is a part of a transcript, usually a single utterance of one speaker.
type Segment struct {
	ID         string
	Start, End float64 // Seconds from the start of the recording.
	Speaker    int     // -1 if unknown.
	Raw        string  // Verbatim transcription.
	Cleaned    string  // Cleaned up text, empty if the segment was dropped by the cleanup.
}

// Load reads a transcript from a file.
func Load(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("reading transcript: %w", err)
	}
	e, err := Parse(data)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return e, nil
}

// Parse reads a transcript from a JSON document.
func Parse(data []byte) (Entry, error) {
	if !gjson.ValidBytes(data) {
		return Entry{}, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	switch {
	case doc.Get("primary_transcription").IsObject():
		return parseEntry(doc), nil
	case doc.Get("transcription").IsObject():
		return parseCore(doc), nil
	default:
		return Entry{}, ErrUnknownFormat
	}
}

func parseCore(doc gjson.Result) Entry {
	raw := doc.Get("transcription.segments").Array()
	cleaned := doc.Get("cleanup.cleaned_segments").Array()
	segs := make([]Segment, len(raw))
	for i, r := range raw {
		segs[i] = segment(r, fmt.Sprintf("seg-%d", i))
		if i < len(cleaned) {
			segs[i].Cleaned = cleaned[i].Get("text").String()
		}
	}
	return Entry{ID: doc.Get("transcription.id").String(), Segments: segs}
}

func parseEntry(doc gjson.Result) Entry {
	raw := doc.Get("primary_transcription.segments").Array()
	segs := make([]Segment, len(raw))
	for i, r := range raw {
		id := r.Get("id").String()
		if id == "" {
			id = fmt.Sprintf("seg-%d", i)
		}
		segs[i] = segment(r, id)
	}

	cleaned := doc.Get("cleanup.cleaned_segments")
	if edited := doc.Get("cleanup.cleanup_data_edited"); edited.IsArray() {
		cleaned = edited
	}
	texts := make(map[string][]string)
	for i, c := range cleaned.Array() {
		id := c.Get("raw_segment_id").String()
		if id == "" && i < len(segs) {
			id = segs[i].ID
		}
		texts[id] = append(texts[id], c.Get("text").String())
	}
	for i := range segs {
		segs[i].Cleaned = strings.Join(texts[segs[i].ID], " ")
	}
	return Entry{ID: doc.Get("id").String(), Segments: segs}
}

func segment(r gjson.Result, id string) Segment {
	speaker := -1
	if sp := r.Get("speaker"); sp.Type == gjson.Number {
		speaker = int(sp.Int())
	}
	return Segment{
		ID:      id,
		Start:   r.Get("start").Float(),
		End:     r.Get("end").Float(),
		Speaker: speaker,
		Raw:     r.Get("text").String(),
	}
}
