package summarizer

import (
	"fmt"
	"strings"
)

// TextFormatter formats a Summary as plain console text.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format converts a Summary to plain text.
func (f *TextFormatter) Format(summary *Summary) string {
	var sb strings.Builder

	for _, item := range summary.Items {
		if item.Succeeded() {
			sb.WriteString(fmt.Sprintf("%s -> %s (%dx%d, %s)\n",
				item.Source, item.Output, item.Width, item.Height, formatBytes(item.FileSize)))
		} else {
			sb.WriteString(fmt.Sprintf("%s -> FAILED: %s\n", item.Source, item.Error))
		}
	}

	sb.WriteString(fmt.Sprintf("%d processed, %d failed, %s total\n",
		summary.Totals.Processed, summary.Totals.Failed, formatBytes(summary.Totals.TotalBytes)))

	return sb.String()
}
