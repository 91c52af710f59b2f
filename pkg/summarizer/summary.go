// Package summarizer provides summary generation for export results.
package summarizer

import "time"

// Summary contains all data collected during a batch export session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Export settings
	Settings Settings

	// Per-image results, in processing order
	Items []Item

	// Aggregate totals
	Totals Totals
}

// Settings contains the export configuration applied to the batch.
type Settings struct {
	Preset       string
	TargetWidth  int
	TargetHeight int
	Mode         string
	Format       string
	Quality      int
	Frame        string
	ZoomPercent  int
}

// Item contains the result of exporting a single source image.
type Item struct {
	Source   string
	Output   string
	Width    int
	Height   int
	FileSize int64

	// Error message when the export failed; empty on success.
	Error string
}

// Succeeded reports whether the item exported without error.
func (i Item) Succeeded() bool {
	return i.Error == ""
}

// Totals contains aggregate counts for the batch.
type Totals struct {
	Processed  int
	Failed     int
	TotalBytes int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets the export settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddItem appends a per-image result and updates the totals.
func (b *Builder) AddItem(item Item) *Builder {
	b.summary.Items = append(b.summary.Items, item)
	b.summary.Totals.Processed++
	if item.Succeeded() {
		b.summary.Totals.TotalBytes += item.FileSize
	} else {
		b.summary.Totals.Failed++
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
