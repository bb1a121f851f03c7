package report

import (
	"time"

	"thorbench/internal/accuracy"
)

// Meta describes where a report came from.
type Meta struct {
	RunID     string
	Benchmark string
	Title     string
	Decimals  int
	Now       time.Time
}

// Entry is one rendered group of a report.
type Entry struct {
	Dimension string            `json:"dimension,omitempty"`
	Value     string            `json:"value,omitempty"`
	Correct   int               `json:"correct"`
	Total     int               `json:"total"`
	Accuracy  accuracy.Accuracy `json:"accuracy"`
	Display   string            `json:"display"`
}

// Section groups the entries of one dimension.
type Section struct {
	Dimension accuracy.Dimension
	Title     string
	Entries   []Entry
}

// Document is the serializable form of an accuracy report.
type Document struct {
	RunID       string    `json:"run_id"`
	Benchmark   string    `json:"benchmark,omitempty"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Decimals    int       `json:"decimals"`
	Overall     Entry     `json:"overall"`
	Groups      []Entry   `json:"groups"`
}

// DefaultTitle heads reports that are not tied to a benchmark.
const DefaultTitle = "Accuracy Report"

// Build flattens an accuracy report into a document in report order.
func Build(r accuracy.Report, meta Meta) Document {
	title := meta.Title
	if title == "" {
		title = DefaultTitle
	}
	now := meta.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	doc := Document{
		RunID:       meta.RunID,
		Benchmark:   meta.Benchmark,
		Title:       title,
		GeneratedAt: now,
		Decimals:    meta.Decimals,
		Overall:     newEntry("", "", r.Overall(), meta.Decimals),
		Groups:      make([]Entry, 0, r.Len()),
	}
	for _, dim := range r.Dimensions() {
		for _, group := range r.Groups(dim) {
			doc.Groups = append(doc.Groups, newEntry(string(dim), group.Key.Value, group.Tally, meta.Decimals))
		}
	}
	return doc
}

// Sections returns the document's groups split by dimension, skipping
// dimensions without groups.
func (doc Document) Sections() []Section {
	sections := make([]Section, 0, len(accuracy.Dimensions))
	for _, dim := range accuracy.Dimensions {
		var entries []Entry
		for _, entry := range doc.Groups {
			if entry.Dimension == string(dim) {
				entries = append(entries, entry)
			}
		}
		if len(entries) == 0 {
			continue
		}
		sections = append(sections, Section{Dimension: dim, Title: dim.Title(), Entries: entries})
	}
	return sections
}

// Label returns the display label for an entry value.
func (e Entry) Label() string {
	if e.Dimension == string(accuracy.DimFrameCount) {
		return e.Value + " frames"
	}
	return e.Value
}

// Counts renders correct/total.
func (e Entry) Counts() string {
	return accuracy.Tally{Correct: e.Correct, Total: e.Total}.String()
}

func newEntry(dim, value string, tally accuracy.Tally, decimals int) Entry {
	acc := tally.Accuracy()
	return Entry{
		Dimension: dim,
		Value:     value,
		Correct:   tally.Correct,
		Total:     tally.Total,
		Accuracy:  acc,
		Display:   acc.Format(decimals),
	}
}
