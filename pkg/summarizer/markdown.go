package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts a Summary to Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Export Summary\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05 MST")))

	// Settings section
	sb.WriteString("## Settings\n\n")
	sb.WriteString("| Setting | Value |\n")
	sb.WriteString("|---------|-------|\n")
	if summary.Settings.Preset != "" {
		sb.WriteString(fmt.Sprintf("| Preset | %s |\n", summary.Settings.Preset))
	}
	sb.WriteString(fmt.Sprintf("| Target Size | %dx%d |\n", summary.Settings.TargetWidth, summary.Settings.TargetHeight))
	sb.WriteString(fmt.Sprintf("| Mode | %s |\n", summary.Settings.Mode))
	sb.WriteString(fmt.Sprintf("| Format | %s |\n", summary.Settings.Format))
	sb.WriteString(fmt.Sprintf("| Quality | %d |\n", summary.Settings.Quality))
	sb.WriteString(fmt.Sprintf("| Frame | %s |\n", summary.Settings.Frame))
	sb.WriteString(fmt.Sprintf("| Zoom | %d%% |\n", summary.Settings.ZoomPercent))
	sb.WriteString("\n")

	// Results section
	sb.WriteString("## Results\n\n")
	sb.WriteString("| Source | Output | Size | File Size | Status |\n")
	sb.WriteString("|--------|--------|------|-----------|--------|\n")
	for _, item := range summary.Items {
		if item.Succeeded() {
			sb.WriteString(fmt.Sprintf("| %s | %s | %dx%d | %s | OK |\n",
				item.Source, item.Output, item.Width, item.Height, formatBytes(item.FileSize)))
		} else {
			sb.WriteString(fmt.Sprintf("| %s | - | - | - | %s |\n", item.Source, item.Error))
		}
	}
	sb.WriteString("\n")

	// Totals section
	sb.WriteString("## Totals\n\n")
	sb.WriteString(fmt.Sprintf("- Processed: %d\n", summary.Totals.Processed))
	sb.WriteString(fmt.Sprintf("- Failed: %d\n", summary.Totals.Failed))
	sb.WriteString(fmt.Sprintf("- Total Output: %s\n", formatBytes(summary.Totals.TotalBytes)))

	return sb.String()
}

// formatBytes formats a byte count in human-readable form.
func formatBytes(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * 1024
	)
	switch {
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
